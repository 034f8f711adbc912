package domain

import "strings"

// ProviderName returns the configured backend provider, defaulting to Gemini.
func (c Config) ProviderName() string {
	provider := strings.ToLower(strings.TrimSpace(c.Backend.Provider))
	if provider == "" {
		return ProviderGemini
	}
	return provider
}

// AuthEnvVar returns the environment variable holding the backend credential.
func (c Config) AuthEnvVar() string {
	if c.Backend.AuthEnvVar == "" {
		return DefaultAuthEnvVar
	}
	return c.Backend.AuthEnvVar
}

// ModelID returns the model requested from the backend.
func (c Config) ModelID() string {
	if c.Backend.Model == "" {
		return DefaultModel
	}
	return c.Backend.Model
}
