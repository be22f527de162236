package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/rammon/internal/errors"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. RAMMON_AUTO_THRESHOLD.
const EnvPrefix = "RAMMON"

// Store loads and saves the settings file at a fixed path.
type Store struct {
	path string
}

// NewStore returns a store for path, or for DefaultPath when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Path returns the file location backing the store.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the settings file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the settings file. It never fails: a missing file yields the
// defaults with no messages, an unreadable or malformed file yields the
// defaults plus one error message, and invalid fields are replaced with
// their defaults and reported by Validate.
func (s *Store) Load() (*Config, []Message) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	switch _, err := os.Stat(s.path); {
	case err == nil:
		v.SetConfigFile(s.path)
		if filepath.Ext(s.path) == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return DefaultConfig(), []Message{readFailure(err)}
		}
	case os.IsNotExist(err):
		// Defaults plus any environment overrides.
	default:
		return DefaultConfig(), []Message{readFailure(err)}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return DefaultConfig(), []Message{{
			Text:    fmt.Sprintf("Error parsing config file: %v, using defaults", errors.Short(err)),
			IsError: true,
		}}
	}

	return cfg, Validate(cfg)
}

// Save validates a copy of cfg and writes it. Keys the store does not own
// are preserved when the file already exists. The returned messages are
// the validation outcome of the copy; the error is non-nil only when the
// write itself failed.
func (s *Store) Save(cfg *Config) ([]Message, error) {
	validated := *cfg
	messages := Validate(&validated)

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return messages, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to create config directory",
			"Check permissions on "+filepath.Dir(s.path))
	}

	data, err := renderSettings(s.path, &validated)
	if err != nil {
		return messages, err
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return messages, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check permissions on "+s.path)
	}

	return messages, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("auto_threshold", def.AutoThreshold)
	v.SetDefault("auto_action", def.AutoAction)
	v.SetDefault("helper.path", def.Helper.Path)
	v.SetDefault("helper.url", def.Helper.URL)
	v.SetDefault("helper.timeout", def.Helper.Timeout.String())
}

func readFailure(err error) Message {
	text := "Error parsing config file: %v, using defaults"
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		text = "Error reading config file: %v, using defaults"
	}
	return Message{Text: fmt.Sprintf(text, errors.Short(err)), IsError: true}
}
