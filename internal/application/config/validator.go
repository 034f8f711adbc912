package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/doeshing/smartcmd-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateBackend(cfg.Backend); err != nil {
		return err
	}
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	if err := validateExecution(cfg.Execution); err != nil {
		return err
	}
	return nil
}

func validateBackend(backend domain.BackendSettings) error {
	switch strings.ToLower(backend.Provider) {
	case "", domain.ProviderGemini:
	case domain.ProviderHTTP:
		if backend.Endpoint == "" {
			return fmt.Errorf("backend.endpoint must be set for provider %s", domain.ProviderHTTP)
		}
		parsed, err := url.Parse(backend.Endpoint)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("backend.endpoint invalid: %q", backend.Endpoint)
		}
	default:
		return fmt.Errorf("backend.provider must be %s|%s, got %s", domain.ProviderGemini, domain.ProviderHTTP, backend.Provider)
	}
	if backend.MaxTokens < 0 {
		return fmt.Errorf("backend.max_tokens must be >= 0")
	}
	if backend.TimeoutSeconds < 0 {
		return fmt.Errorf("backend.timeout must be >= 0")
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	if history.Path == "" {
		return fmt.Errorf("history.path must be set")
	}
	if history.IndexEnabled && history.IndexPath == "" {
		return fmt.Errorf("history.index_path must be set when the index is enabled")
	}
	return nil
}

func validateExecution(exec domain.ExecutionSettings) error {
	if strings.ContainsAny(exec.Shell, "\n\r") {
		return fmt.Errorf("execution.shell must be a single line")
	}
	return nil
}
