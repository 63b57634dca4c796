package clean

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/fastclean/internal/config"
	"github.com/lakshaymaurya-felt/fastclean/internal/core"
	"github.com/lakshaymaurya-felt/fastclean/internal/ui"
)

// DeleteOptions controls Delete.
type DeleteOptions struct {
	// Force skips the confirmation prompt.
	Force   bool
	Verbose bool
}

// RemoveOutcome is the result of removing one path.
type RemoveOutcome struct {
	Path   string
	Output string
	Err    error
}

// DeleteResult summarizes a Delete run.
type DeleteResult struct {
	Paths      []string
	TotalBytes int64
	Cancelled  bool
	Removed    []RemoveOutcome
}

// Failed returns the outcomes whose removal reported an error.
func (r *DeleteResult) Failed() []RemoveOutcome {
	var failed []RemoveOutcome
	for _, o := range r.Removed {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Delete sizes every path of folder, asks for confirmation unless forced,
// then removes the paths in order. For All the paths are the flat union
// with no per-folder headers. A failing path never stops the ones after it.
func (c *Cleaner) Delete(ctx context.Context, folder config.CacheFolder, opts DeleteOptions) *DeleteResult {
	c.Out.Header("Preparing to delete cache files:")
	c.Out.Header("%s", ui.Rule(30))

	result := &DeleteResult{Paths: c.ResolvePaths(folder)}
	result.TotalBytes = c.totalSize(ctx, result.Paths)

	c.Out.Header("Total size to be freed: %s", core.FormatSize(result.TotalBytes))

	if !opts.Force {
		c.Out.Header("Are you sure you want to delete these files? [y/N]")
		ok, err := c.Confirm.Confirm()
		if err != nil {
			c.Log.Warn("reading confirmation failed", zap.Error(err))
		}
		if !ok {
			c.Out.Header("Deletion cancelled")
			result.Cancelled = true
			return result
		}
	}

	for _, path := range result.Paths {
		c.Out.Header("Deleting: %s", path)
		c.Out.Verbose(opts.Verbose, "Executing: %s", c.removeCommand(path))

		out, err := c.Remover.Remove(ctx, path)
		if out != "" {
			c.Out.Verbose(opts.Verbose, "Output: %s", strings.TrimRight(out, "\n"))
		}
		if err != nil {
			c.Log.Warn("removal failed", zap.String("path", path), zap.Error(err))
			if out == "" {
				c.Out.Verbose(opts.Verbose, "Output: %v", err)
			}
		}
		result.Removed = append(result.Removed, RemoveOutcome{Path: path, Output: out, Err: err})
	}

	c.Out.Header("Deletion complete")
	c.reportFreeSpace(ctx)
	return result
}

// totalSize sums the kilobyte usage of paths in bytes. Paths whose usage
// cannot be parsed count as zero.
func (c *Cleaner) totalSize(ctx context.Context, paths []string) int64 {
	var total int64
	for _, path := range paths {
		out, err := c.Probe.KilobyteSize(ctx, path)
		if err != nil {
			c.Log.Debug("size query failed", zap.String("path", path), zap.Error(err))
		}
		kb, ok := ParseKilobytes(out)
		if !ok {
			c.Log.Debug("unparsable size, counting as zero", zap.String("path", path), zap.String("output", out))
			continue
		}
		total += kb * 1024
	}
	return total
}

// ParseKilobytes reads the leading integer field of du -sk output.
func ParseKilobytes(out string) (int64, bool) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return 0, false
	}
	kb, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || kb < 0 {
		return 0, false
	}
	return kb, true
}
