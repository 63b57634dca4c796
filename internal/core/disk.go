package core

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// VolumeSpace reports free space on the volume holding a path.
type VolumeSpace struct{}

// FreeSpace returns the bytes available on the volume containing path.
func (VolumeSpace) FreeSpace(ctx context.Context, path string) (uint64, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("disk usage for %s: %w", path, err)
	}
	return usage.Free, nil
}
