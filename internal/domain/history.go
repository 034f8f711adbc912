package domain

import (
	"fmt"
	"time"
)

// HistoryEntrySeparator joins the query and command of a logged entry.
const HistoryEntrySeparator = " --> "

// HistoryEntry is one logged (query, suggested command) pair.
type HistoryEntry struct {
	Query   string
	Command string
}

// Line renders the entry exactly as it is appended to the history file.
// Embedded separators are not escaped; the file is only displayed, never re-parsed.
func (e HistoryEntry) Line() string {
	return fmt.Sprintf("%s%s%s\n", e.Query, HistoryEntrySeparator, e.Command)
}

// IndexedEntry is a history entry as mirrored into the searchable index.
type IndexedEntry struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Query     string    `json:"query"`
	Command   string    `json:"command"`
}
