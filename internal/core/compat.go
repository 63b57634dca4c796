package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Platform describes the host the tool runs on.
type Platform struct {
	OS      string
	Version string
	Arch    string
}

// DetectPlatform reads the host description from gopsutil.
func DetectPlatform(ctx context.Context) (Platform, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return Platform{}, fmt.Errorf("host info: %w", err)
	}
	return Platform{
		OS:      info.OS,
		Version: info.PlatformVersion,
		Arch:    info.KernelArch,
	}, nil
}

// IsDarwin reports whether the cache paths apply to this host.
func (p Platform) IsDarwin() bool {
	return p.OS == "darwin"
}

// String returns a human-readable platform line.
// Examples: "macOS Sonoma 14.5 (arm64)", "linux 6.8.0 (x86_64)"
func (p Platform) String() string {
	if !p.IsDarwin() {
		return fmt.Sprintf("%s %s (%s)", p.OS, p.Version, p.Arch)
	}

	major, _, _ := strings.Cut(p.Version, ".")
	n, _ := strconv.Atoi(major)

	var name string
	switch {
	case n >= 26:
		name = "macOS Tahoe"
	case n == 15:
		name = "macOS Sequoia"
	case n == 14:
		name = "macOS Sonoma"
	case n == 13:
		name = "macOS Ventura"
	case n == 12:
		name = "macOS Monterey"
	case n == 11:
		name = "macOS Big Sur"
	default:
		name = "macOS"
	}

	return fmt.Sprintf("%s %s (%s)", name, p.Version, p.Arch)
}
