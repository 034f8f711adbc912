package commands

// Error messages
const (
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrHistoryLogUnavailable    = "history log unavailable"
)

// Informational messages
const (
	MsgNoHistory       = "No history yet."
	MsgNoMatchingEntry = "No matching entries."
)

// DefaultHistoryLimit bounds `history list` output; 0 shows everything.
const DefaultHistoryLimit = 0
