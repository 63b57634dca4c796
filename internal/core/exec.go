package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// maxErrorOutput bounds how much command output is kept in an error message.
const maxErrorOutput = 200

// CommandError reports a command that could not start or exited non-zero.
type CommandError struct {
	// Command is the argv joined with spaces, as shown in verbose output.
	Command string

	// ExitCode is -1 when the process never ran.
	ExitCode int

	// Output is whatever the command wrote before failing.
	Output string

	// Missing is set when the target path did not exist.
	Missing bool

	Err error
}

func (e *CommandError) Error() string {
	out := truncateOutput(strings.TrimSpace(e.Output))
	switch {
	case e.ExitCode < 0:
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	case out != "":
		return fmt.Sprintf("%s failed (exit code %d): %s", e.Command, e.ExitCode, out)
	default:
		return fmt.Sprintf("%s failed (exit code %d)", e.Command, e.ExitCode)
	}
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, fs.ErrNotExist) match a failure on a missing path.
func (e *CommandError) Is(target error) bool {
	return e.Missing && target == fs.ErrNotExist
}

// CommandLine renders argv the way verbose output prints it.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// ExecProbe queries disk usage with du(1).
type ExecProbe struct {
	// Du is the du binary; empty means "du" from PATH.
	Du string
}

// HumanSize runs `du -hs path` and returns its combined output.
func (p ExecProbe) HumanSize(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, p.du(), "-hs", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), commandError(p.HumanSizeCommand(path), path, out, err)
	}
	return string(out), nil
}

// KilobyteSize runs `du -sk path` and returns its standard output only, so
// warnings about unreadable subdirectories do not hide the total.
func (p ExecProbe) KilobyteSize(ctx context.Context, path string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.du(), "-sk", path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.String(), commandError(CommandLine(p.du(), "-sk", path), path, stderr.Bytes(), err)
	}
	return stdout.String(), nil
}

// HumanSizeCommand is the command line HumanSize runs for path.
func (p ExecProbe) HumanSizeCommand(path string) string {
	return CommandLine(p.du(), "-hs", path)
}

func (p ExecProbe) du() string {
	if p.Du != "" {
		return p.Du
	}
	return "du"
}

// ExecRemover deletes paths with rm(1).
type ExecRemover struct {
	// Rm is the rm binary; empty means "rm" from PATH.
	Rm string
}

// Remove runs `rm -rf path` and returns its combined output.
func (r ExecRemover) Remove(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, r.rm(), "-rf", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), commandError(r.RemoveCommand(path), path, out, err)
	}
	return string(out), nil
}

// RemoveCommand is the command line Remove runs for path.
func (r ExecRemover) RemoveCommand(path string) string {
	return CommandLine(r.rm(), "-rf", path)
}

func (r ExecRemover) rm() string {
	if r.Rm != "" {
		return r.Rm
	}
	return "rm"
}

// commandError wraps an exec failure with the exit code and output, and
// marks it as a missing-path failure when the target is gone.
func commandError(command, path string, output []byte, err error) error {
	ce := &CommandError{
		Command:  command,
		ExitCode: -1,
		Output:   string(output),
		Err:      err,
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		ce.ExitCode = exitErr.ExitCode()
	}

	if _, statErr := os.Lstat(path); errors.Is(statErr, fs.ErrNotExist) {
		ce.Missing = true
	}
	return ce
}

// truncateOutput cuts s at a valid UTF-8 boundary.
func truncateOutput(s string) string {
	if len(s) <= maxErrorOutput {
		return s
	}
	s = s[:maxErrorOutput]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s + "..."
}
