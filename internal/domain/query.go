package domain

import "strings"

// Proposal is a suggested command offered through the execution gate.
type Proposal struct {
	Command  string
	Label    string
	Question string
}

// ExecutionResult wraps details from the command executor.
type ExecutionResult struct {
	Ran        bool
	ExitCode   int
	DurationMS int64
}

// IsAffirmative interprets a confirmation reply. Empty, "y" and "yes" (any case) approve.
func IsAffirmative(reply string) bool {
	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}
