package domain

import (
	"errors"
	"fmt"
)

// ErrNoHistory reports that the history file has not been created yet.
var ErrNoHistory = errors.New("no history yet")

// ErrConfigNotPersisted reports that the default configuration is in use but could not be
// written to disk. The accompanying config is still usable.
var ErrConfigNotPersisted = errors.New("default configuration not saved")

// ConfigurationError means the inference backend cannot be configured (missing credential).
// It is fatal at startup.
type ConfigurationError struct {
	Key string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration: %s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("configuration: %s not found", e.Key)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// BackendError wraps a failed inference call.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// FileWriteError wraps a failed history append.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// LaunchError wraps a failure to start a resolved application.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }
