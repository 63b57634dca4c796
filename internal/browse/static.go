package browse

import (
	"context"
	"io"

	"github.com/lakshaymaurya-felt/fastclean/internal/config"
	"github.com/lakshaymaurya-felt/fastclean/internal/core"
	"github.com/lakshaymaurya-felt/fastclean/internal/ui"
)

// PrintStatic prints a plain table of every concrete cache folder with its
// size. Used when the output is not a terminal and the interactive browser
// cannot render. Folders are sized one after another.
func PrintStatic(ctx context.Context, w io.Writer, opts Options) {
	p := ui.NewPrinter(w, opts.Theme)

	p.Header("Xcode caches")
	p.Line("%s", ui.Rule(60))

	var total int64
	for i, f := range config.All.Concrete() {
		msg := probeRow(ctx, opts.Probe, i, config.ExpandPaths(f.Paths(), opts.Home))().(sizeMsg)
		total += msg.bytes
		p.Line("%-*s %10s  %s", nameWidth, f, core.FormatSize(msg.bytes), f.Description())
	}

	p.Line("%s", ui.Rule(60))
	p.Line("Total: %s", core.FormatSize(total))
}
