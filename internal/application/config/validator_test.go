package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/smartcmd-go/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		Backend: domain.BackendSettings{Provider: domain.ProviderGemini},
		History: domain.HistorySettings{Path: "/tmp/h", IndexPath: "/tmp/h.db", IndexEnabled: true},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*domain.Config) {}},
		{name: "empty provider means gemini", mutate: func(c *domain.Config) { c.Backend.Provider = "" }},
		{name: "unknown provider", mutate: func(c *domain.Config) { c.Backend.Provider = "ollama" }, wantErr: "backend.provider"},
		{name: "http without endpoint", mutate: func(c *domain.Config) { c.Backend.Provider = "http" }, wantErr: "backend.endpoint must be set"},
		{name: "http bad endpoint", mutate: func(c *domain.Config) {
			c.Backend.Provider = "http"
			c.Backend.Endpoint = "not a url"
		}, wantErr: "backend.endpoint invalid"},
		{name: "http ok", mutate: func(c *domain.Config) {
			c.Backend.Provider = "HTTP"
			c.Backend.Endpoint = "https://example.com/v1/chat/completions"
		}},
		{name: "negative tokens", mutate: func(c *domain.Config) { c.Backend.MaxTokens = -1 }, wantErr: "max_tokens"},
		{name: "missing history path", mutate: func(c *domain.Config) { c.History.Path = "" }, wantErr: "history.path"},
		{name: "index enabled without path", mutate: func(c *domain.Config) { c.History.IndexPath = "" }, wantErr: "history.index_path"},
		{name: "index disabled without path", mutate: func(c *domain.Config) {
			c.History.IndexEnabled = false
			c.History.IndexPath = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
