package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lakshaymaurya-felt/fastclean/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "log_level: debug\ncolor: never\ndefault_cache_folder: derivedData\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat, "unset fields take defaults")
	assert.Equal(t, config.ColorNever, s.Color)
	assert.Equal(t, config.DerivedData, s.DefaultCacheFolder)
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"bad yaml", "log_level: [", config.ErrConfigParse},
		{"unknown folder", "default_cache_folder: caches", config.ErrConfigParse},
		{"bad level", "log_level: loud", config.ErrConfigValidation},
		{"bad format", "log_format: xml", config.ErrConfigValidation},
		{"bad color", "color: sometimes", config.ErrConfigValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadSettingsFromReader(strings.NewReader(tt.input))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefaultSettingsPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path, err := config.DefaultSettingsPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.Equal(t, config.AppName, filepath.Base(filepath.Dir(path)))
}
