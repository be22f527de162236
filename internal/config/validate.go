package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/rammon/internal/action"
)

// ValidThreshold reports whether t is inside [MinThreshold, MaxThreshold].
func ValidThreshold(t float64) bool {
	return !math.IsNaN(t) && t >= MinThreshold && t <= MaxThreshold
}

// NextThreshold steps t up by ThresholdStep, wrapping to MinThreshold once
// the step would leave the valid range.
func NextThreshold(t float64) float64 {
	next := t + ThresholdStep
	if !ValidThreshold(next) {
		return MinThreshold
	}
	return next
}

// Validate corrects invalid fields in place and reports each correction as
// an error message followed by an info message naming the default applied.
// Helper fields are normalized silently.
func Validate(cfg *Config) []Message {
	var messages []Message

	if !ValidThreshold(cfg.AutoThreshold) {
		messages = append(messages,
			Message{Text: fmt.Sprintf("Invalid threshold value %g, using default", cfg.AutoThreshold), IsError: true},
			Message{Text: fmt.Sprintf("Using default threshold: %g%%", DefaultThreshold)},
		)
		cfg.AutoThreshold = DefaultThreshold
	}

	if _, ok := action.Parse(cfg.AutoAction); !ok {
		messages = append(messages,
			Message{Text: fmt.Sprintf("Invalid action %s, using default", cfg.AutoAction), IsError: true},
			Message{Text: fmt.Sprintf("Using default action: %s", action.Default)},
		)
		cfg.AutoAction = action.Default.String()
	}

	normalizeHelper(&cfg.Helper)

	return messages
}

func normalizeHelper(h *HelperConfig) {
	h.Path = Expand(strings.TrimSpace(h.Path))
	if h.Path == "" {
		h.Path = filepath.Join(DefaultDir(), DefaultHelperBinary)
	}
	h.URL = strings.TrimSpace(h.URL)
	if h.URL == "" {
		h.URL = DefaultHelperURL
	}
	if h.Timeout <= 0 {
		h.Timeout = DefaultHelperTimeout
	}
}
