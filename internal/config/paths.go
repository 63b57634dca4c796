package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCacheFolder is returned when a category identifier is not one
// of the known cache folders.
var ErrUnknownCacheFolder = errors.New("unknown cache folder")

// CacheFolder identifies one of the Xcode cache categories. The set is
// closed: every value is declared below and All is derived from the rest.
type CacheFolder int

const (
	All CacheFolder = iota
	Archives
	Simulators
	DeviceSupport
	DerivedData
	Previews
	CoreSimulatorCaches
)

// cacheFolderCount must follow the last declared folder.
const cacheFolderCount = int(CoreSimulatorCaches) + 1

// CacheFolders returns every folder in declaration order, All included.
func CacheFolders() []CacheFolder {
	folders := make([]CacheFolder, 0, cacheFolderCount)
	for f := All; int(f) < cacheFolderCount; f++ {
		folders = append(folders, f)
	}
	return folders
}

// String returns the identifier accepted on the command line.
func (f CacheFolder) String() string {
	switch f {
	case All:
		return "all"
	case Archives:
		return "archives"
	case Simulators:
		return "simulators"
	case DeviceSupport:
		return "deviceSupport"
	case DerivedData:
		return "derivedData"
	case Previews:
		return "previews"
	case CoreSimulatorCaches:
		return "coreSimulatorCaches"
	}
	return fmt.Sprintf("CacheFolder(%d)", int(f))
}

// Description is a human-readable summary of what the folder holds.
func (f CacheFolder) Description() string {
	switch f {
	case All:
		return "Every Xcode cache folder"
	case Archives:
		return "Xcode build archives"
	case Simulators:
		return "CoreSimulator devices"
	case DeviceSupport:
		return "Device support symbols copied from attached devices"
	case DerivedData:
		return "Xcode derived data (build intermediates and indexes)"
	case Previews:
		return "SwiftUI preview simulator devices"
	case CoreSimulatorCaches:
		return "CoreSimulator dyld shared caches"
	}
	return ""
}

// Paths returns the folder's path patterns before home expansion. All is
// rebuilt from the concrete folders on every call.
func (f CacheFolder) Paths() []string {
	switch f {
	case Archives:
		return []string{"~/Library/Developer/Xcode/Archives"}
	case Simulators:
		return []string{"~/Library/Developer/CoreSimulator/Devices"}
	case DeviceSupport:
		return []string{"~/Library/Developer/Xcode/iOS DeviceSupport"}
	case DerivedData:
		return []string{"~/Library/Developer/Xcode/DerivedData"}
	case Previews:
		return []string{"~/Library/Developer/Xcode/UserData/Previews/Simulator Devices"}
	case CoreSimulatorCaches:
		return []string{"~/Library/Developer/CoreSimulator/Caches/dyld"}
	case All:
		var paths []string
		for _, c := range f.Concrete() {
			paths = append(paths, c.Paths()...)
		}
		return paths
	}
	return nil
}

// Concrete expands All into every other folder in declaration order.
// A concrete folder expands to itself.
func (f CacheFolder) Concrete() []CacheFolder {
	if f != All {
		return []CacheFolder{f}
	}
	folders := CacheFolders()
	return folders[1:]
}

// Suggestion lists the accepted identifiers, e.g. "[ all | archives | ... ]".
func Suggestion() string {
	names := make([]string, 0, cacheFolderCount)
	for _, f := range CacheFolders() {
		names = append(names, f.String())
	}
	return "[ " + strings.Join(names, " | ") + " ]"
}

// ParseCacheFolder maps an identifier to its folder. Matching is exact.
func ParseCacheFolder(s string) (CacheFolder, error) {
	for _, f := range CacheFolders() {
		if f.String() == s {
			return f, nil
		}
	}
	return All, fmt.Errorf("%w %q, expected one of %s", ErrUnknownCacheFolder, s, Suggestion())
}

var _ pflag.Value = (*CacheFolder)(nil)

// Set implements pflag.Value.
func (f *CacheFolder) Set(s string) error {
	parsed, err := ParseCacheFolder(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *CacheFolder) Type() string {
	return "category"
}

// UnmarshalYAML reads a folder identifier from a settings file.
func (f *CacheFolder) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return f.Set(s)
}

// MarshalYAML writes the folder as its identifier.
func (f CacheFolder) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// ExpandHome resolves a leading "~" against home. Paths without one, and
// "~user" forms, are returned unchanged.
func ExpandHome(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	}
	return path
}

// ExpandPaths applies ExpandHome to every path, preserving order.
func ExpandPaths(paths []string, home string) []string {
	expanded := make([]string, len(paths))
	for i, p := range paths {
		expanded[i] = ExpandHome(p, home)
	}
	return expanded
}
