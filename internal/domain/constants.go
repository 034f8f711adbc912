package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for the history log (rw-r--r--)
	FilePermissions = 0o644
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Backend defaults
const (
	ProviderGemini = "gemini"
	ProviderHTTP   = "http"
	// DefaultModel is the model the Gemini backend asks for.
	DefaultModel = "gemma-3-27b-it"
	// DefaultAuthEnvVar holds the backend credential.
	DefaultAuthEnvVar = "GENAI_API_KEY"
	// DefaultBackendTimeout bounds the HTTP client used by the http provider.
	DefaultBackendTimeout = 60 * time.Second
	// DefaultMaxTokens is the default maximum number of tokens
	DefaultMaxTokens = 1024
)

// Paths relative to the user's home directory
const (
	AppDirName          = ".smartcmd"
	HistoryFileName     = ".smartcmd_history"
	HistoryIndexName    = "history.db"
	ConfigFileName      = "config.yaml"
	GuardrailFileName   = "guardrail.yaml"
	EnvFileName         = ".env"
	ProgramFilesAppName = "SmartCMD"
)

// Environment variables
const (
	EnvConfigPath = "SMARTCMD_CONFIG"
	EnvDebug      = "SMARTCMD_DEBUG"
)

// ExitConfigError is the process status when the backend credential is unavailable.
const ExitConfigError = 2

// DefaultHistorySearchLimit is the default number of search results to return
const DefaultHistorySearchLimit = 50

// TimestampFormat is the standard timestamp format
const TimestampFormat = time.RFC3339
