// Package ai builds the inference backend used by the suggestion client.
//
// Two backends are available:
//   - gemini: the Gemini API through google.golang.org/genai (default)
//   - http: a configuration-driven chat-completions endpoint (OpenAI-compatible by default)
//
// Both are plain text-in, text-out completers; prompt construction lives in the application layer.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

// Factory creates the backend selected in the configuration.
type Factory struct {
	httpClient *http.Client
}

// NewFactory creates a factory with an HTTP client for the http backend.
func NewFactory(timeout time.Duration) *Factory {
	if timeout <= 0 {
		timeout = domain.DefaultBackendTimeout
	}
	return &Factory{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ForConfig returns the configured completer. A missing credential is a *domain.ConfigurationError.
func (f *Factory) ForConfig(ctx context.Context, cfg domain.Config) (ports.Completer, error) {
	envVar := cfg.AuthEnvVar()
	apiKey := resolveAuth(envVar, domain.DefaultAuthEnvVar)
	if apiKey == "" {
		return nil, &domain.ConfigurationError{Key: envVar}
	}

	switch cfg.ProviderName() {
	case domain.ProviderGemini:
		return newGeminiCompleter(ctx, apiKey, cfg.ModelID())
	case domain.ProviderHTTP:
		if cfg.Backend.Endpoint == "" {
			return nil, &domain.ConfigurationError{Key: "backend.endpoint", Err: errors.New("required for the http provider")}
		}
		return newHTTPCompleter(cfg.Backend, apiKey, f.httpClient), nil
	default:
		return nil, &domain.ConfigurationError{
			Key: "backend.provider",
			Err: fmt.Errorf("unsupported provider %q", cfg.Backend.Provider),
		}
	}
}
