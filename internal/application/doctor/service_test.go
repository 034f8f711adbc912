package doctor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/smartcmd-go/internal/domain"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubGuardrail struct {
	rules int
	err   error
}

func (s stubGuardrail) Evaluate(string) (domain.RiskAssessment, error) {
	return domain.RiskAssessment{Level: domain.RiskSafe}, s.err
}

func (s stubGuardrail) RuleCount() int { return s.rules }

func healthyConfig(t *testing.T) domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Backend:             domain.BackendSettings{Provider: "gemini", AuthEnvVar: "SMARTCMD_DOCTOR_KEY"},
		History:             domain.HistorySettings{Path: t.TempDir() + "/history"},
	}
}

func findCheck(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("check %q not found", name)
	return domain.HealthCheck{}
}

func TestDoctorAllHealthy(t *testing.T) {
	t.Setenv("SMARTCMD_DOCTOR_KEY", "secret")
	svc := &Service{
		ConfigProvider:  stubConfig{cfg: healthyConfig(t)},
		SecurityService: stubGuardrail{rules: 14},
		OS:              domain.OSLinux,
		EnvFile:         "/opt/smartcmd/.env",
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Failed())
	assert.Equal(t, "Linux", findCheck(t, report, "Operating system").Details)
	assert.Contains(t, findCheck(t, report, "API key").Details, "/opt/smartcmd/.env")
	assert.Equal(t, "14 rules loaded, advisory", findCheck(t, report, "Guardrail").Details)
}

func TestDoctorMissingCredential(t *testing.T) {
	t.Setenv("SMARTCMD_DOCTOR_KEY", "")
	svc := &Service{ConfigProvider: stubConfig{cfg: healthyConfig(t)}, OS: domain.OSWindows}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Failed())
	assert.Equal(t, domain.HealthError, findCheck(t, report, "API key").Status)
	assert.Equal(t, domain.HealthWarn, findCheck(t, report, "Guardrail").Status)
}

func TestDoctorHistoryNotWritable(t *testing.T) {
	t.Setenv("SMARTCMD_DOCTOR_KEY", "secret")
	svc := &Service{
		ConfigProvider: stubConfig{cfg: healthyConfig(t)},
		OS:             domain.OSMacOS,
		Writable:       func(string) error { return errors.New("read-only") },
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	check := findCheck(t, report, "History")
	assert.Equal(t, domain.HealthError, check.Status)
	assert.Contains(t, check.Details, "read-only")
}

func TestDoctorConfigLoadFailure(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfig{err: errors.New("boom")}, OS: domain.OSName("plan9")}

	report, err := svc.Run(context.Background())
	assert.Error(t, err)
	assert.Equal(t, domain.HealthWarn, findCheck(t, report, "Operating system").Status)
	assert.Equal(t, domain.HealthError, findCheck(t, report, "Config file").Status)
}

func TestDoctorUnsavedDefaultsIsWarning(t *testing.T) {
	t.Setenv("SMARTCMD_DOCTOR_KEY", "secret")
	svc := &Service{
		ConfigProvider: stubConfig{cfg: healthyConfig(t), err: fmt.Errorf("%w to /ro/config.yaml", domain.ErrConfigNotPersisted)},
		OS:             domain.OSWindows,
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HealthWarn, findCheck(t, report, "Config file").Status)
	assert.Equal(t, domain.HealthOK, findCheck(t, report, "API key").Status)
}
