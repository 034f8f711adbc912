package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/infrastructure/history"
	"github.com/doeshing/smartcmd-go/internal/pkg/filesystem"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

// FileLoader loads YAML configuration from ~/.smartcmd/config.yaml (overridable via SMARTCMD_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created with defaults. When the
// defaults cannot be written, they are returned alongside domain.ErrConfigNotPersisted.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return DefaultConfig(), fmt.Errorf("%w to %s: %w", domain.ErrConfigNotPersisted, path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return cfg, fmt.Errorf("%w to %s: %w", domain.ErrConfigNotPersisted, path, err)
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the resolved configuration file path.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandHome(l.overridePath)
	}
	if custom := os.Getenv(domain.EnvConfigPath); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), domain.AppDirName, domain.ConfigFileName)
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// DefaultConfig is written on first run.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Backend: domain.BackendSettings{
			Provider:   domain.ProviderGemini,
			Model:      domain.DefaultModel,
			AuthEnvVar: domain.DefaultAuthEnvVar,
		},
		History: domain.HistorySettings{
			Path:         history.DefaultPath(),
			IndexPath:    history.DefaultIndexPath(),
			IndexEnabled: true,
		},
		Security: domain.SecuritySettings{
			Enforce:   false,
			RulesFile: filepath.Join(filesystem.UserHomeDir(), domain.AppDirName, domain.GuardrailFileName),
		},
		Execution: domain.ExecutionSettings{
			Shell: "auto",
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Backend.Provider == "" {
		cfg.Backend.Provider = domain.ProviderGemini
	}
	if cfg.Backend.Model == "" {
		cfg.Backend.Model = domain.DefaultModel
	}
	if cfg.Backend.AuthEnvVar == "" {
		cfg.Backend.AuthEnvVar = domain.DefaultAuthEnvVar
	}
	if cfg.History.Path == "" {
		cfg.History.Path = history.DefaultPath()
	}
	cfg.History.Path = filesystem.ExpandHome(cfg.History.Path)
	if cfg.History.IndexPath == "" {
		cfg.History.IndexPath = history.DefaultIndexPath()
	}
	cfg.History.IndexPath = filesystem.ExpandHome(cfg.History.IndexPath)
	if cfg.Execution.Shell == "" {
		cfg.Execution.Shell = "auto"
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if expanded := filesystem.ExpandHome(path); expanded != path {
		return expanded
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
