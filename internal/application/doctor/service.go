package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	configvalidator "github.com/doeshing/smartcmd-go/internal/application/config"
	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

// RuleCounter is implemented by guardrails that can report how many rules they loaded.
type RuleCounter interface {
	RuleCount() int
}

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	SecurityService ports.SecurityService
	OS              domain.OSName
	// EnvFile is the .env path loaded at startup, empty when none was found.
	EnvFile string
	// Writable probes a directory; defaults to creating and removing a temp file.
	Writable func(dir string) error
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	checks = append(checks, osCheck(s.OS))

	cfg, err := s.ConfigProvider.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrConfigNotPersisted):
		checks = append(checks, warn("Config file", err.Error()))
	case err != nil:
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	default:
		checks = append(checks, s.configCheck(cfg))
	}

	checks = append(checks, credentialCheck(cfg, s.EnvFile))
	checks = append(checks, s.historyCheck(cfg.History))

	if s.SecurityService != nil {
		if _, err := s.SecurityService.Evaluate("ls"); err != nil {
			checks = append(checks, fail("Guardrail", err.Error()))
		} else {
			details := "rules loaded"
			if counter, okCount := s.SecurityService.(RuleCounter); okCount {
				details = fmt.Sprintf("%d rules loaded", counter.RuleCount())
			}
			if cfg.Security.Enforce {
				details += ", enforcing"
			} else {
				details += ", advisory"
			}
			checks = append(checks, ok("Guardrail", details))
		}
	} else {
		checks = append(checks, warn("Guardrail", "security service not initialized"))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) configCheck(cfg domain.Config) domain.HealthCheck {
	if err := configvalidator.Validate(cfg); err != nil {
		return fail("Config file", err.Error())
	}
	return ok("Config file", fmt.Sprintf("format %s, provider %s", cfg.ConfigFormatVersion, cfg.ProviderName()))
}

func osCheck(name domain.OSName) domain.HealthCheck {
	if name.Known() {
		return ok("Operating system", name.String())
	}
	return warn("Operating system", fmt.Sprintf("unrecognized platform %q", name))
}

func credentialCheck(cfg domain.Config, envFile string) domain.HealthCheck {
	key := cfg.AuthEnvVar()
	if os.Getenv(key) == "" {
		return fail("API key", fmt.Sprintf("%s not set", key))
	}
	if envFile != "" {
		return ok("API key", fmt.Sprintf("%s loaded from %s", key, envFile))
	}
	return ok("API key", fmt.Sprintf("%s set in environment", key))
}

func (s *Service) historyCheck(settings domain.HistorySettings) domain.HealthCheck {
	probe := s.Writable
	if probe == nil {
		probe = probeWritable
	}
	dir := filepath.Dir(settings.Path)
	if err := probe(dir); err != nil {
		return fail("History", fmt.Sprintf("%s not writable: %v", dir, err))
	}
	return ok("History", settings.Path)
}

func probeWritable(dir string) error {
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".smartcmd-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return err
	}
	return os.Remove(name)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
