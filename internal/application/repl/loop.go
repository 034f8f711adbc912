// Package repl runs the interactive read-dispatch loop.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

const (
	inputPrompt     = "> "
	openPrefix      = "open "
	suggestLabel    = "Suggested"
	suggestQuestion = "Run it? [Y/n]: "
)

// HistoryKeywords route a request to the history viewer when contained anywhere in it.
var HistoryKeywords = []string{"history", "past commands", "previous commands", "command log"}

// Loop dispatches each line read from the console.
type Loop struct {
	Console   ports.Console
	Suggester ports.Suggester
	History   ports.HistoryLog
	// Index is optional.
	Index    ports.HistoryIndex
	Launcher ports.AppLauncher
	Gate     ports.Gate
	OS       domain.OSName
	Logger   ports.Logger

	SessionID string
	Now       func() time.Time

	routes []route
}

type route struct {
	name   string
	match  func(lower string) bool
	handle func(ctx context.Context, line string) (stop bool, err error)
}

// New builds a loop with a fresh session id.
func New(console ports.Console, suggester ports.Suggester, history ports.HistoryLog, launcher ports.AppLauncher, gate ports.Gate, osName domain.OSName) *Loop {
	return &Loop{
		Console:   console,
		Suggester: suggester,
		History:   history,
		Launcher:  launcher,
		Gate:      gate,
		OS:        osName,
		SessionID: uuid.NewString(),
		Now:       time.Now,
	}
}

// Run prints the banner and processes lines until exit, quit or end of input.
func (l *Loop) Run(ctx context.Context) error {
	l.Console.Printf("Detected OS: %s\n(Type 'exit' to quit)\n\n", l.OS)
	l.info("session started", map[string]interface{}{"session_id": l.SessionID, "os": l.OS.String()})

	for {
		line, err := l.Console.ReadLine(inputPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.Console.Println()
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		stop, err := l.Turn(ctx, line)
		if stop {
			return nil
		}
		if err != nil {
			l.Console.Printf("Error: %v\n", err)
		}
	}
}

// Turn handles a single input line. A panic inside a turn is recovered and returned as an error.
func (l *Loop) Turn(ctx context.Context, line string) (stop bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			l.logError("turn panicked", fmt.Errorf("%v", r), nil)
			stop, err = false, fmt.Errorf("%v", r)
		}
	}()

	query := strings.TrimSpace(line)
	lower := strings.ToLower(query)
	for _, r := range l.table() {
		if !r.match(lower) {
			continue
		}
		l.debug("dispatch", map[string]interface{}{"route": r.name})
		stop, err = r.handle(ctx, query)
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return stop, err
	}
	return false, nil
}

// table is ordered by precedence: exit, blank, history, open, generic.
func (l *Loop) table() []route {
	if l.routes != nil {
		return l.routes
	}
	l.routes = []route{
		{name: "exit", match: isExit, handle: func(context.Context, string) (bool, error) { return true, nil }},
		{name: "blank", match: func(lower string) bool { return lower == "" }, handle: func(context.Context, string) (bool, error) { return false, nil }},
		{name: "history", match: IsHistoryQuery, handle: l.showHistory},
		{name: "open", match: func(lower string) bool { return strings.HasPrefix(lower, openPrefix) }, handle: l.openApp},
		{name: "suggest", match: func(string) bool { return true }, handle: l.suggest},
	}
	return l.routes
}

func isExit(lower string) bool {
	return lower == "exit" || lower == "quit"
}

// IsHistoryQuery reports whether a lowercased request asks for past commands.
func IsHistoryQuery(lower string) bool {
	for _, keyword := range HistoryKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func (l *Loop) showHistory(ctx context.Context, _ string) (bool, error) {
	err := l.History.Show(ctx)
	if errors.Is(err, domain.ErrNoHistory) {
		l.Console.Println("No history yet.")
		return false, nil
	}
	return false, err
}

func (l *Loop) openApp(ctx context.Context, query string) (bool, error) {
	app := strings.TrimSpace(query[len(openPrefix):])
	return false, l.Launcher.ResolveAndLaunch(ctx, app)
}

func (l *Loop) suggest(ctx context.Context, query string) (bool, error) {
	command, err := l.Suggester.Suggest(ctx, query, l.OS)
	if err != nil {
		return false, err
	}

	if err := l.History.Append(domain.HistoryEntry{Query: query, Command: command}); err != nil {
		l.Console.Printf("Error: %v\n", err)
	}
	l.index(query, command)

	_, err = l.Gate.ConfirmAndRun(ctx, domain.Proposal{
		Command:  command,
		Label:    suggestLabel,
		Question: suggestQuestion,
	})
	return false, err
}

func (l *Loop) index(query, command string) {
	if l.Index == nil {
		return
	}
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	entry := domain.IndexedEntry{
		Timestamp: now(),
		SessionID: l.SessionID,
		Query:     query,
		Command:   command,
	}
	if err := l.Index.Record(entry); err != nil {
		l.warn("history index record failed", map[string]interface{}{"error": err.Error()})
	}
}

func (l *Loop) info(msg string, fields map[string]interface{}) {
	if l.Logger != nil {
		l.Logger.Info(msg, fields)
	}
}

func (l *Loop) debug(msg string, fields map[string]interface{}) {
	if l.Logger != nil {
		l.Logger.Debug(msg, fields)
	}
}

func (l *Loop) warn(msg string, fields map[string]interface{}) {
	if l.Logger != nil {
		l.Logger.Warn(msg, fields)
	}
}

func (l *Loop) logError(msg string, err error, fields map[string]interface{}) {
	if l.Logger != nil {
		l.Logger.Error(msg, err, fields)
	}
}
