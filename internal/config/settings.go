package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppName is used for the settings directory.
const AppName = "fast-clean"

// Settings errors.
var (
	ErrConfigParse      = errors.New("failed to parse settings")
	ErrConfigValidation = errors.New("invalid settings")
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds user preferences read from the settings file.
type Settings struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is console or json.
	LogFormat string `yaml:"log_format"`

	// Color is auto, always or never.
	Color string `yaml:"color"`

	// DefaultCacheFolder is used when --cache-folder is not given.
	DefaultCacheFolder CacheFolder `yaml:"default_cache_folder"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel:           "warn",
		LogFormat:          "console",
		Color:              ColorAuto,
		DefaultCacheFolder: All,
	}
}

// DefaultSettingsPath returns <user config dir>/fast-clean/config.yaml.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, "config.yaml"), nil
}

// LoadSettings reads settings from path. A missing file yields defaults.
func LoadSettings(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to open settings file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return LoadSettingsFromReader(f)
}

// LoadSettingsFromReader decodes settings, fills unset fields with defaults
// and validates the result.
func LoadSettingsFromReader(r io.Reader) (*Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigValidation, err)
	}
	return s, nil
}

func (s *Settings) applyDefaults() {
	d := DefaultSettings()
	if s.LogLevel == "" {
		s.LogLevel = d.LogLevel
	}
	if s.LogFormat == "" {
		s.LogFormat = d.LogFormat
	}
	if s.Color == "" {
		s.Color = d.Color
	}
}

// Validate checks enumerated fields.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level %q must be one of debug, info, warn, error", s.LogLevel)
	}

	switch s.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format %q must be console or json", s.LogFormat)
	}

	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color %q must be one of %s, %s, %s", s.Color, ColorAuto, ColorAlways, ColorNever)
	}

	if int(s.DefaultCacheFolder) < 0 || int(s.DefaultCacheFolder) >= cacheFolderCount {
		return fmt.Errorf("default_cache_folder %d is out of range", int(s.DefaultCacheFolder))
	}
	return nil
}
