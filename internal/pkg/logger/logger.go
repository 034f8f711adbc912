// Package logger adapts zerolog to the ports.Logger interface.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/doeshing/smartcmd-go/internal/ports"
)

// StdLogger writes structured records to stderr through zerolog.
// When not verbose, everything below error level is discarded so the REPL output stays clean.
type StdLogger struct {
	zlog zerolog.Logger
}

// NewStd creates a StdLogger writing to stderr.
func NewStd(verbose bool) *StdLogger {
	return New(os.Stderr, verbose)
}

// New creates a StdLogger writing human-readable lines to w.
func New(w io.Writer, verbose bool) *StdLogger {
	level := zerolog.ErrorLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	return &StdLogger{
		zlog: zerolog.New(console).Level(level).With().Timestamp().Str("app", "smartcmd").Logger(),
	}
}

// Nop returns a logger that drops everything.
func Nop() *StdLogger {
	return &StdLogger{zlog: zerolog.Nop()}
}

// With returns a child logger carrying the given field on every record.
func (l *StdLogger) With(key string, value interface{}) *StdLogger {
	return &StdLogger{zlog: l.zlog.With().Interface(key, value).Logger()}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.zlog.Debug().Fields(fields).Msg(msg)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.zlog.Info().Fields(fields).Msg(msg)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.zlog.Warn().Fields(fields).Msg(msg)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.zlog.Error().Err(err).Fields(fields).Msg(msg)
}

var _ ports.Logger = (*StdLogger)(nil)
