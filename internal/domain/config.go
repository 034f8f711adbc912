package domain

// Config mirrors ~/.smartcmd/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Backend             BackendSettings   `yaml:"backend"`
	History             HistorySettings   `yaml:"history"`
	Security            SecuritySettings  `yaml:"security"`
	Execution           ExecutionSettings `yaml:"execution"`
	Apps                AppSettings       `yaml:"apps"`
}

// BackendSettings selects and configures the inference backend.
type BackendSettings struct {
	// Provider is "gemini" (default) or "http".
	Provider       string `yaml:"provider"`
	Model          string `yaml:"model"`
	AuthEnvVar     string `yaml:"auth_env_var"`
	Endpoint       string `yaml:"endpoint,omitempty"`
	MaxTokens      int    `yaml:"max_tokens,omitempty"`
	TimeoutSeconds int    `yaml:"timeout,omitempty"`
	// PromptTemplate replaces the built-in prompt when set. It is a text/template
	// receiving .OS, .Request and .User.
	PromptTemplate string    `yaml:"prompt_template,omitempty"`
	APIFormat      APIFormat `yaml:"api_format,omitempty"`
}

// HistorySettings locates the history log and its searchable index.
type HistorySettings struct {
	Path         string `yaml:"path"`
	IndexPath    string `yaml:"index_path"`
	IndexEnabled bool   `yaml:"index_enabled"`
}

// SecuritySettings defines guardrail behavior.
type SecuritySettings struct {
	Enforce   bool   `yaml:"enforce"`
	RulesFile string `yaml:"rules_file"`
}

// ExecutionSettings controls how commands run.
type ExecutionSettings struct {
	Shell string `yaml:"shell"`
}

// AppSettings overrides the install roots searched by the app resolver.
type AppSettings struct {
	SearchRoots []string `yaml:"search_roots,omitempty"`
}
