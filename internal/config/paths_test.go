package config_test

import (
	"testing"

	"github.com/lakshaymaurya-felt/fastclean/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcreteFoldersHavePaths(t *testing.T) {
	for _, f := range config.All.Concrete() {
		t.Run(f.String(), func(t *testing.T) {
			paths := f.Paths()
			require.NotEmpty(t, paths)
			assert.Equal(t, paths, f.Paths(), "paths must be fixed across calls")
			assert.NotEmpty(t, f.Description())
		})
	}
}

func TestAllIsUnionOfConcreteFolders(t *testing.T) {
	var want []string
	for _, f := range config.CacheFolders() {
		if f == config.All {
			continue
		}
		want = append(want, f.Paths()...)
	}

	assert.Equal(t, want, config.All.Paths())
	assert.Equal(t, []string{
		"~/Library/Developer/Xcode/Archives",
		"~/Library/Developer/CoreSimulator/Devices",
		"~/Library/Developer/Xcode/iOS DeviceSupport",
		"~/Library/Developer/Xcode/DerivedData",
		"~/Library/Developer/Xcode/UserData/Previews/Simulator Devices",
		"~/Library/Developer/CoreSimulator/Caches/dyld",
	}, config.All.Paths())
}

func TestAllPathsAreFreshSlices(t *testing.T) {
	first := config.All.Paths()
	first[0] = "mutated"
	assert.Equal(t, "~/Library/Developer/Xcode/Archives", config.All.Paths()[0])
}

func TestConcrete(t *testing.T) {
	all := config.All.Concrete()
	assert.Len(t, all, len(config.CacheFolders())-1)
	assert.NotContains(t, all, config.All)
	assert.Equal(t, config.Archives, all[0])
	assert.Equal(t, config.CoreSimulatorCaches, all[len(all)-1])

	assert.Equal(t, []config.CacheFolder{config.DerivedData}, config.DerivedData.Concrete())
}

func TestParseCacheFolder(t *testing.T) {
	tests := []struct {
		input   string
		want    config.CacheFolder
		wantErr bool
	}{
		{"all", config.All, false},
		{"archives", config.Archives, false},
		{"simulators", config.Simulators, false},
		{"deviceSupport", config.DeviceSupport, false},
		{"derivedData", config.DerivedData, false},
		{"previews", config.Previews, false},
		{"coreSimulatorCaches", config.CoreSimulatorCaches, false},
		{"DerivedData", config.All, true},
		{"cache", config.All, true},
		{"", config.All, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := config.ParseCacheFolder(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrUnknownCacheFolder)
				assert.Contains(t, err.Error(), config.Suggestion())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestCacheFolderFlagValue(t *testing.T) {
	f := config.All
	require.NoError(t, f.Set("previews"))
	assert.Equal(t, config.Previews, f)
	assert.Equal(t, "category", f.Type())

	require.Error(t, f.Set("nope"))
	assert.Equal(t, config.Previews, f, "a failed Set leaves the value untouched")
}

func TestSuggestion(t *testing.T) {
	assert.Equal(t,
		"[ all | archives | simulators | deviceSupport | derivedData | previews | coreSimulatorCaches ]",
		config.Suggestion())
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"tilde only", "~", "/Users/dev"},
		{"tilde slash", "~/Library/Developer", "/Users/dev/Library/Developer"},
		{"spaces kept", "~/Library/Simulator Devices", "/Users/dev/Library/Simulator Devices"},
		{"absolute", "/tmp/cache", "/tmp/cache"},
		{"other user", "~root/cache", "~root/cache"},
		{"relative", "cache/~", "cache/~"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.ExpandHome(tt.path, "/Users/dev"))
		})
	}
}

func TestExpandPaths(t *testing.T) {
	got := config.ExpandPaths(config.Archives.Paths(), "/Users/dev")
	assert.Equal(t, []string{"/Users/dev/Library/Developer/Xcode/Archives"}, got)
}
