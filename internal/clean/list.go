package clean

import (
	"context"
	"errors"
	"io/fs"

	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/fastclean/internal/config"
	"github.com/lakshaymaurya-felt/fastclean/internal/ui"
)

// ListOptions controls List.
type ListOptions struct {
	Verbose bool
}

// ListEntry is the usage reported for one path.
type ListEntry struct {
	Folder config.CacheFolder
	Path   string
	Output string
	Err    error
}

// Missing reports whether the path did not exist.
func (e ListEntry) Missing() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}

// List prints the usage of every path of folder, grouped under a header per
// concrete folder. It never removes anything and never fails: a path whose
// query fails has the utility's output printed and the next path follows.
func (c *Cleaner) List(ctx context.Context, folder config.CacheFolder, opts ListOptions) []ListEntry {
	c.Out.Header("list cache files:")
	c.Out.Header("%s", ui.Rule(24))

	var entries []ListEntry
	for _, f := range folder.Concrete() {
		c.Out.Header("%s", f)
		for _, path := range c.ResolvePaths(f) {
			c.Out.Verbose(opts.Verbose, "%s", c.humanSizeCommand(path))

			out, err := c.Probe.HumanSize(ctx, path)
			c.Out.Raw(out)

			entry := ListEntry{Folder: f, Path: path, Output: out, Err: err}
			switch {
			case entry.Missing():
				c.Log.Debug("cache path not found", zap.String("path", path))
			case err != nil:
				c.Log.Warn("size query failed", zap.String("path", path), zap.Error(err))
			}
			entries = append(entries, entry)
		}
	}

	c.reportFreeSpace(ctx)
	return entries
}
