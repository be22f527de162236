package ui

// Status marks used in command output.
const (
	SymbolSuccess  = "✓"
	SymbolFail     = "✗"
	SymbolWarning  = "⚠"
	SymbolPending  = "○" // check not run
	SymbolComplete = "●" // action listed as automatic
)
