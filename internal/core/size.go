package core

import (
	humanize "github.com/dustin/go-humanize"
)

// FormatSize renders a byte count with IEC units, e.g. 3145728 -> "3.0 MiB".
// Negative counts render as zero.
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}
