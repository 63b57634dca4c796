//go:generate mockgen -destination=./mocks/clean.go . SizeProbe,Remover,Confirmer,SpaceReporter

// Package clean lists and deletes the Xcode cache folders.
package clean

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/fastclean/internal/config"
	"github.com/lakshaymaurya-felt/fastclean/internal/core"
	"github.com/lakshaymaurya-felt/fastclean/internal/ui"
)

// SizeProbe queries disk usage for a path.
type SizeProbe interface {
	// HumanSize returns human-readable usage text, as `du -hs` prints it.
	HumanSize(ctx context.Context, path string) (string, error)
	// KilobyteSize returns usage in kilobytes, as `du -sk` prints it.
	KilobyteSize(ctx context.Context, path string) (string, error)
}

// Remover recursively deletes a path.
type Remover interface {
	Remove(ctx context.Context, path string) (string, error)
}

// Confirmer asks the user to approve a deletion.
type Confirmer interface {
	Confirm() (bool, error)
}

// SpaceReporter reports free space on the volume holding a path.
type SpaceReporter interface {
	FreeSpace(ctx context.Context, path string) (uint64, error)
}

// HumanSizeDescriber is implemented by probes that can show the command
// HumanSize runs.
type HumanSizeDescriber interface {
	HumanSizeCommand(path string) string
}

// RemoveDescriber is implemented by removers that can show the command
// Remove runs.
type RemoveDescriber interface {
	RemoveCommand(path string) string
}

// Cleaner runs the list and delete operations against its collaborators.
type Cleaner struct {
	Probe   SizeProbe
	Remover Remover
	Confirm Confirmer

	// Space is optional; without it no free-space line is printed.
	Space SpaceReporter

	// Home replaces "~" in catalog paths.
	Home string

	Out *ui.Printer
	Log *zap.Logger
}

// NewCleaner returns a Cleaner printing to w with a plain theme. Callers
// replace fields as needed.
func NewCleaner(probe SizeProbe, remover Remover, confirm Confirmer, home string, w io.Writer) *Cleaner {
	return &Cleaner{
		Probe:   probe,
		Remover: remover,
		Confirm: confirm,
		Home:    home,
		Out:     ui.NewPrinter(w, ui.NewTheme(w, false)),
		Log:     zap.NewNop(),
	}
}

// ResolvePaths expands a folder's path patterns against the cleaner's home.
func (c *Cleaner) ResolvePaths(folder config.CacheFolder) []string {
	return config.ExpandPaths(folder.Paths(), c.Home)
}

// reportFreeSpace prints the free space on the home volume, if known.
func (c *Cleaner) reportFreeSpace(ctx context.Context) {
	if c.Space == nil {
		return
	}
	free, err := c.Space.FreeSpace(ctx, c.Home)
	if err != nil {
		c.Log.Debug("free space unavailable", zap.String("path", c.Home), zap.Error(err))
		return
	}
	c.Out.Header("Free space: %s", core.FormatSize(int64(free)))
}

// humanSizeCommand is the line echoed before a size query in verbose mode.
func (c *Cleaner) humanSizeCommand(path string) string {
	if d, ok := c.Probe.(HumanSizeDescriber); ok {
		return d.HumanSizeCommand(path)
	}
	return core.ExecProbe{}.HumanSizeCommand(path)
}

// removeCommand is the line echoed before a removal in verbose mode.
func (c *Cleaner) removeCommand(path string) string {
	if d, ok := c.Remover.(RemoveDescriber); ok {
		return d.RemoveCommand(path)
	}
	return core.ExecRemover{}.RemoveCommand(path)
}
