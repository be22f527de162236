package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rileyhilliard/rammon/internal/action"
)

// Threshold bounds and defaults for automatic execution, in percent.
const (
	DefaultThreshold = 90.0
	MinThreshold     = 20.0
	MaxThreshold     = 95.0
	ThresholdStep    = 5.0
)

// Helper defaults.
const (
	DefaultHelperURL     = "https://download.sysinternals.com/files/RAMMap.zip"
	DefaultHelperBinary  = "RAMMap64.exe"
	DefaultHelperTimeout = 60 * time.Second
)

const (
	// ConfigDirName is the directory under the user config dir.
	ConfigDirName = "rammon"
	// ConfigFileName is the config file name.
	ConfigFileName = "config.yaml"
)

// Config is the persisted settings record.
type Config struct {
	// AutoThreshold is the RAM usage percentage at or above which the
	// auto action fires.
	AutoThreshold float64 `yaml:"auto_threshold" mapstructure:"auto_threshold"`

	// AutoAction is the display name of the action fired automatically.
	AutoAction string `yaml:"auto_action" mapstructure:"auto_action"`

	Helper HelperConfig `yaml:"helper" mapstructure:"helper"`
}

// HelperConfig controls where the RAMMap binary lives and how it is fetched.
type HelperConfig struct {
	// Path is where the executable is expected (and downloaded to).
	Path string `yaml:"path" mapstructure:"path"`

	// URL is the zip archive containing the executable.
	URL string `yaml:"url" mapstructure:"url"`

	// Timeout bounds a single acquire-and-spawn attempt.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Message is a load or validation outcome destined for the event log.
type Message struct {
	Text    string
	IsError bool
}

// DefaultConfig returns a config with every field at its default.
func DefaultConfig() *Config {
	return &Config{
		AutoThreshold: DefaultThreshold,
		AutoAction:    action.Default.String(),
		Helper: HelperConfig{
			Path:    filepath.Join(DefaultDir(), DefaultHelperBinary),
			URL:     DefaultHelperURL,
			Timeout: DefaultHelperTimeout,
		},
	}
}

// Action resolves AutoAction, falling back to the default action.
func (c *Config) Action() action.Action {
	a, _ := action.Parse(c.AutoAction)
	return a
}

// DefaultDir returns the directory holding the config file and helper.
func DefaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, ConfigDirName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", ConfigDirName)
	}
	return "."
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), ConfigFileName)
}
