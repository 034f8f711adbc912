package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/smartcmd-go/internal/domain"
)

type stubCompleter struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubCompleter) Name() string { return "stub" }

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

func TestSuggestTrimsReply(t *testing.T) {
	completer := &stubCompleter{reply: "  ls -la\n"}
	svc, err := NewService(completer, nil, "")
	require.NoError(t, err)

	cmd, err := svc.Suggest(context.Background(), "list files", domain.OSLinux)
	require.NoError(t, err)
	assert.Equal(t, "ls -la", cmd)
	require.Len(t, completer.prompts, 1)
}

func TestSuggestPromptContents(t *testing.T) {
	completer := &stubCompleter{reply: "dir"}
	svc, err := NewService(completer, nil, "")
	require.NoError(t, err)
	svc.User = "alice"

	_, err = svc.Suggest(context.Background(), "show files", domain.OSWindows)
	require.NoError(t, err)

	prompt := completer.prompts[0]
	assert.Contains(t, prompt, "expert in terminal and shell commands")
	assert.Contains(t, prompt, "The user is on Windows.")
	assert.Contains(t, prompt, "User request: 'show files'")
	assert.Contains(t, prompt, SafeFallback)
	assert.Contains(t, prompt, "the current user is alice")
	assert.Contains(t, prompt, "Respond with only the exact command")
}

func TestSuggestPassesMessagesThrough(t *testing.T) {
	completer := &stubCompleter{reply: "Why did the developer go broke? Because he used up all his cache."}
	svc, err := NewService(completer, nil, "")
	require.NoError(t, err)

	reply, err := svc.Suggest(context.Background(), "tell me a joke", domain.OSMacOS)
	require.NoError(t, err)
	assert.Equal(t, completer.reply, reply)
}

func TestSuggestWrapsBackendError(t *testing.T) {
	cause := errors.New("quota exceeded")
	svc, err := NewService(&stubCompleter{err: cause}, nil, "")
	require.NoError(t, err)

	_, err = svc.Suggest(context.Background(), "list files", domain.OSLinux)
	var backendErr *domain.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "stub", backendErr.Backend)
	assert.ErrorIs(t, err, cause)
}

func TestCustomTemplate(t *testing.T) {
	completer := &stubCompleter{reply: "x"}
	svc, err := NewService(completer, nil, "{{.OS}}|{{.Request}}")
	require.NoError(t, err)

	_, err = svc.Suggest(context.Background(), "hi", domain.OSLinux)
	require.NoError(t, err)
	assert.Equal(t, "Linux|hi", completer.prompts[0])
}

func TestInvalidTemplate(t *testing.T) {
	_, err := NewService(&stubCompleter{}, nil, "{{.OS")
	assert.Error(t, err)
}

func TestNilCompleter(t *testing.T) {
	_, err := NewService(nil, nil, "")
	assert.Error(t, err)
}
