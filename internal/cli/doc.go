// Package cli implements the rammon command-line interface.
//
// # Command Structure
//
// The root command starts the interactive dashboard. Subcommands cover the
// same operations for scripts and troubleshooting:
//
//	rammon                      - Real-time RAM dashboard
//	rammon run <action>         - Run one memory action and exit
//	rammon actions              - List the available actions
//	rammon config show|set|edit - Inspect or change settings
//	rammon doctor               - Diagnose terminal, memory source and helper
//	rammon version              - Print version information
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command and
// available to all subcommands. NO_COLOR in the environment has the same
// effect as --no-color.
//
// # Errors
//
// Commands return *errors.Error values; Execute prints them in the
// structured what/why/how format and exits with status 1.
package cli
