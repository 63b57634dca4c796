package browse

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/fastclean/internal/clean"
	"github.com/lakshaymaurya-felt/fastclean/internal/ui"
)

// Options configures the browser.
type Options struct {
	Probe   clean.SizeProbe
	Remover clean.Remover

	// Home replaces "~" in catalog paths.
	Home string

	Theme *ui.Theme
	In    io.Reader
	Out   io.Writer
}

// Run starts the interactive browser, or prints the static table when Out
// is not a terminal.
func Run(ctx context.Context, opts Options) error {
	if !ui.IsTerminal(opts.Out) {
		PrintStatic(ctx, opts.Out, opts)
		return nil
	}

	p := tea.NewProgram(NewModel(ctx, opts),
		tea.WithInput(opts.In),
		tea.WithOutput(opts.Out),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
