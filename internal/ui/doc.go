// Package ui provides the styled output used by rammon's non-interactive
// commands: colors, status symbols, a spinner for slow steps and simple
// tables. The dashboard has its own palette in the monitor package.
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
package ui
