package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/fastclean/internal/clean"
	"github.com/lakshaymaurya-felt/fastclean/internal/config"
	"github.com/lakshaymaurya-felt/fastclean/internal/core"
	"github.com/lakshaymaurya-felt/fastclean/internal/logging"
	"github.com/lakshaymaurya-felt/fastclean/internal/ui"
)

// BuildInfo is the version information stamped into the binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Deps are the collaborators the commands talk to. Zero fields fall back to
// du(1), rm(1), gopsutil and the current user's home directory.
type Deps struct {
	Probe    clean.SizeProbe
	Remover  clean.Remover
	Space    clean.SpaceReporter
	HomeDir  func() (string, error)
	Platform func(ctx context.Context) (core.Platform, error)
}

func (d Deps) withDefaults() Deps {
	if d.Probe == nil {
		d.Probe = core.ExecProbe{}
	}
	if d.Remover == nil {
		d.Remover = core.ExecRemover{}
	}
	if d.Space == nil {
		d.Space = core.VolumeSpace{}
	}
	if d.HomeDir == nil {
		d.HomeDir = os.UserHomeDir
	}
	if d.Platform == nil {
		d.Platform = core.DetectPlatform
	}
	return d
}

// app is the state shared by one command tree.
type app struct {
	info BuildInfo
	deps Deps

	// Global flags
	configPath string
	debug      bool
	noColor    bool

	settings *config.Settings
	log      *zap.Logger
}

// NewRootCmd builds the fast-clean command tree.
func NewRootCmd(info BuildInfo, deps Deps) *cobra.Command {
	a := &app{
		info:     info,
		deps:     deps.withDefaults(),
		settings: config.DefaultSettings(),
		log:      zap.NewNop(),
	}

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Reclaim disk space from Xcode caches",
		Long: `fast-clean - Reclaim disk space from Xcode caches.

Lists and deletes archives, simulator devices, device support files,
derived data, SwiftUI preview simulators and simulator dyld caches.`,
		Version:           info.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	// A bare --version, without cobra's default -v shorthand.
	cmd.Flags().Bool("version", false, "Print the version and exit")
	// -h/--help must be known booleans before cobra resolves the subcommand,
	// or a following flag's value is taken for a command name.
	cmd.InitDefaultHelpFlag()

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Settings file (default: <user config dir>/fast-clean/config.yaml)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Show detailed operation logs")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(
		a.newCacheCmd(),
		newCompletionCmd(),
	)

	return cmd
}

// Execute runs the command tree with the real collaborators.
func Execute(ctx context.Context, info BuildInfo) error {
	return NewRootCmd(info, Deps{}).ExecuteContext(ctx)
}

// setup loads settings and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path := a.configPath
	if path == "" {
		p, err := config.DefaultSettingsPath()
		if err != nil {
			a.log.Debug("no user config dir, using default settings", zap.Error(err))
		}
		path = p
	}

	if path != "" {
		settings, err := config.LoadSettings(path)
		if err != nil {
			return err
		}
		a.settings = settings
	}

	level := a.settings.LogLevel
	if a.debug {
		level = "debug"
	}
	a.log = logging.New(logging.Config{Level: level, Format: a.settings.LogFormat}, cmd.ErrOrStderr())
	a.log.Debug("settings loaded",
		zap.String("path", path),
		zap.String("version", a.info.Version),
		zap.String("commit", a.info.Commit),
		zap.String("date", a.info.Date),
	)
	return nil
}

// theme returns the styles for w, honoring --no-color and the color setting.
func (a *app) theme(w io.Writer) *ui.Theme {
	mode := a.settings.Color
	if a.noColor {
		mode = config.ColorNever
	}
	return ui.NewTheme(w, ui.ColorEnabled(mode, w))
}

func (a *app) home() (string, error) {
	home, err := a.deps.HomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return home, nil
}

// newCleaner wires the list/delete operations to cmd's streams.
func (a *app) newCleaner(cmd *cobra.Command) (*clean.Cleaner, error) {
	home, err := a.home()
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	c := clean.NewCleaner(a.deps.Probe, a.deps.Remover, clean.NewLineConfirmer(cmd.InOrStdin()), home, out)
	c.Space = a.deps.Space
	c.Out = ui.NewPrinter(out, a.theme(out))
	c.Log = a.log
	return c, nil
}

// reportPlatform prints the detected platform and warns off macOS, where
// none of the cache paths exist.
func (a *app) reportPlatform(ctx context.Context, p *ui.Printer) {
	platform, err := a.deps.Platform(ctx)
	if err != nil {
		a.log.Debug("platform detection failed", zap.Error(err))
		return
	}
	p.Line("Platform: %s", platform)
	if !platform.IsDarwin() {
		a.log.Warn("cache paths are macOS locations", zap.String("os", platform.OS))
	}
}
