// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The application services in internal/application depend
// only on these interfaces, so the inference backend, the shell, the filesystem and the
// terminal can all be replaced by deterministic stubs in tests.
package ports

import (
	"context"

	"github.com/doeshing/smartcmd-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.smartcmd/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Completer is the inference backend: one text prompt in, one text completion out.
// A call is a single blocking round trip; no streaming, no retries.
type Completer interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Suggester turns a natural-language request into a single command or message line.
type Suggester interface {
	Suggest(ctx context.Context, request string, osName domain.OSName) (string, error)
}

// HistoryLog is the append-only record of (query, command) pairs.
type HistoryLog interface {
	Append(entry domain.HistoryEntry) error
	Show(ctx context.Context) error
	Lines() ([]string, error)
	Path() string
}

// HistoryIndex mirrors history entries into a searchable store.
type HistoryIndex interface {
	Record(entry domain.IndexedEntry) error
	Search(keyword string, limit int) ([]domain.IndexedEntry, error)
	Close() error
}

// Opener hands a file to the operating system's default open/execute facility.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// CommandExecutor runs shell commands in the configured shell environment.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// Console is the line-based terminal shared by the interactive loop and the confirmation prompt.
type Console interface {
	ReadLine(prompt string) (string, error)
	Printf(format string, args ...interface{})
	Println(args ...interface{})
}

// Gate presents a proposal and runs it only after explicit confirmation.
type Gate interface {
	ConfirmAndRun(ctx context.Context, proposal domain.Proposal) (bool, error)
}

// AppLauncher resolves an application name and launches it.
type AppLauncher interface {
	ResolveAndLaunch(ctx context.Context, appName string) error
}

// SecurityService evaluates commands against local guardrail rules.
type SecurityService interface {
	Evaluate(command string) (domain.RiskAssessment, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
