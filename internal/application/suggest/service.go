// Package suggest turns a natural-language request into a single shell command or short reply.
package suggest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

// SafeFallback is the no-op the backend is told to answer with when it is unsure.
const SafeFallback = "echo Unable to determine command"

const defaultPromptTemplate = `You are an expert in terminal and shell commands.
The user is on {{.OS}}.
User request: '{{.Request}}'
If the user asks to open an app, respond with the full command that launches it{{if .User}} (the current user is {{.User}}){{end}}.
If unsure, respond with a safe placeholder command (like ` + SafeFallback + `).
If the user asks about non-command topics (like a question, fact or joke), respond naturally in one short helpful message.
Never output destructive or system-breaking commands (like deleting system folders or editing the registry).
Respond with only the exact command (no explanations, no extra text).`

// PromptData is the value rendered into the prompt template.
type PromptData struct {
	OS      string
	Request string
	User    string
}

// Service asks the backend for a command.
type Service struct {
	Completer ports.Completer
	Logger    ports.Logger
	// User is interpolated into the prompt so app paths can be resolved; may be empty.
	User string

	tmpl *template.Template
}

// NewService builds a suggestion service. An empty customTemplate selects the built-in prompt.
func NewService(completer ports.Completer, logger ports.Logger, customTemplate string) (*Service, error) {
	if completer == nil {
		return nil, errors.New("suggest: completer is required")
	}
	source := defaultPromptTemplate
	if strings.TrimSpace(customTemplate) != "" {
		source = customTemplate
	}
	tmpl, err := template.New("prompt").Option("missingkey=zero").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template: %w", err)
	}
	return &Service{
		Completer: completer,
		Logger:    logger,
		User:      CurrentUser(),
		tmpl:      tmpl,
	}, nil
}

// Suggest implements ports.Suggester. The result is trimmed and otherwise returned verbatim.
func (s *Service) Suggest(ctx context.Context, request string, osName domain.OSName) (string, error) {
	prompt, err := s.Prompt(request, osName)
	if err != nil {
		return "", err
	}

	s.debug("requesting suggestion", map[string]interface{}{
		"backend": s.Completer.Name(),
		"os":      osName.String(),
	})

	reply, err := s.Completer.Complete(ctx, prompt)
	if err != nil {
		return "", &domain.BackendError{Backend: s.Completer.Name(), Err: err}
	}
	return strings.TrimSpace(reply), nil
}

// Prompt renders the full prompt for a request.
func (s *Service) Prompt(request string, osName domain.OSName) (string, error) {
	var buf bytes.Buffer
	data := PromptData{OS: osName.String(), Request: request, User: s.User}
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}

func (s *Service) debug(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Debug(msg, fields)
	}
}

// CurrentUser returns the login name from the environment.
func CurrentUser() string {
	for _, key := range []string{"USERNAME", "USER"} {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

var _ ports.Suggester = (*Service)(nil)
