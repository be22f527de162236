package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rileyhilliard/rammon/internal/action"
	"github.com/rileyhilliard/rammon/internal/errors"
)

// Settable keys accepted by Set.
const (
	KeyAutoThreshold = "auto_threshold"
	KeyAutoAction    = "auto_action"
)

// Keys lists the keys accepted by Set.
func Keys() []string {
	return []string{KeyAutoThreshold, KeyAutoAction}
}

// Set assigns a single setting from its string form. Thresholds must be
// inside the valid range. Actions accept either the display name or the
// hotkey digit.
func Set(cfg *Config, key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyAutoThreshold:
		t, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil || !ValidThreshold(t) {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Invalid threshold %q", value),
				fmt.Sprintf("Use a number between %g and %g", MinThreshold, MaxThreshold))
		}
		cfg.AutoThreshold = t
		return nil

	case KeyAutoAction:
		a, ok := action.Parse(value)
		if !ok && len(value) == 1 {
			a, ok = action.FromKey(rune(value[0]))
		}
		if !ok {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown action %q", value),
				"Use one of: "+strings.Join(action.Names(), ", ")+" (or its hotkey 1-5)")
		}
		cfg.AutoAction = a.String()
		return nil
	}

	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown setting %q", key),
		"Settable keys: "+strings.Join(Keys(), ", "))
}
