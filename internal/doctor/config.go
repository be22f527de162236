package doctor

import (
	"fmt"

	"github.com/rileyhilliard/rammon/internal/config"
)

// ConfigFileCheck verifies that the settings file exists.
type ConfigFileCheck struct {
	Store *config.Store
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return CategoryConfig }

func (c *ConfigFileCheck) Run() CheckResult {
	if !c.Store.Exists() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("No config file at %s, using defaults", c.Store.Path()),
			Suggestion: "Run 'rammon doctor --fix' or 'rammon config edit' to create one",
			Fixable:    true,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", c.Store.Path()),
	}
}

// Fix writes a config file holding the defaults.
func (c *ConfigFileCheck) Fix() error {
	if c.Store.Exists() {
		return nil
	}
	_, err := c.Store.Save(config.DefaultConfig())
	return err
}

// ConfigValidCheck loads the settings file and reports any corrections
// the loader had to make.
type ConfigValidCheck struct {
	Store *config.Store
}

func (c *ConfigValidCheck) Name() string     { return "config_valid" }
func (c *ConfigValidCheck) Category() string { return CategoryConfig }

func (c *ConfigValidCheck) Run() CheckResult {
	cfg, messages := c.Store.Load()

	var problems []string
	for _, m := range messages {
		if m.IsError {
			problems = append(problems, m.Text)
		}
	}

	if len(problems) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    problems[0],
			Suggestion: fmt.Sprintf("%d problem%s in %s; fix it with 'rammon config edit'", len(problems), pluralize(len(problems)), c.Store.Path()),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Auto execution: %s at %g%%", cfg.AutoAction, cfg.AutoThreshold),
	}
}

func (c *ConfigValidCheck) Fix() error {
	return nil // Invalid values need a human decision
}

// NewConfigChecks creates all config-related checks.
func NewConfigChecks(store *config.Store) []Check {
	return []Check{
		&ConfigFileCheck{Store: store},
		&ConfigValidCheck{Store: store},
	}
}
