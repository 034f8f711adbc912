package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	configvalidator "github.com/doeshing/smartcmd-go/internal/application/config"
	"github.com/doeshing/smartcmd-go/internal/application/doctor"
	"github.com/doeshing/smartcmd-go/internal/application/gate"
	"github.com/doeshing/smartcmd-go/internal/application/launch"
	"github.com/doeshing/smartcmd-go/internal/application/repl"
	"github.com/doeshing/smartcmd-go/internal/application/suggest"
	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/infrastructure/ai"
	"github.com/doeshing/smartcmd-go/internal/infrastructure/config"
	"github.com/doeshing/smartcmd-go/internal/infrastructure/executor"
	"github.com/doeshing/smartcmd-go/internal/infrastructure/history"
	"github.com/doeshing/smartcmd-go/internal/infrastructure/platform"
	"github.com/doeshing/smartcmd-go/internal/infrastructure/security"
	"github.com/doeshing/smartcmd-go/internal/pkg/logger"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Logger         *logger.StdLogger
	OS             domain.OSName
	EnvFile        string
	Opener         ports.Opener
	HistoryLog     *history.FileLog
	Guardrail      *security.Guardrail
	Executor       *executor.LocalExecutor
	DoctorService  *doctor.Service

	backends *ai.Factory
	index    *history.SQLiteIndex
}

// BuildContainer constructs the dependency graph. The inference backend is not created here,
// so commands that never call it work without a credential.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	log := logger.NewStd(verbose)

	envFile, err := config.NewEnvLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}
	if envFile == "" {
		log.Debug("no .env file found", nil)
	} else {
		log.Debug(".env loaded", map[string]interface{}{"path": envFile})
	}

	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if errors.Is(err, domain.ErrConfigNotPersisted) {
		log.Warn("using in-memory default configuration", map[string]interface{}{"error": err.Error()})
		err = nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := configvalidator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgLoader.Path(), err)
	}

	guardrail, err := security.NewGuardrail(cfg.Security.RulesFile)
	if err != nil {
		log.Warn("guardrail rules unusable, using built-in rules", map[string]interface{}{"error": err.Error()})
		guardrail, err = security.NewGuardrail("")
		if err != nil {
			return nil, err
		}
	}

	osName := platform.Current()
	opener := platform.NewNativeOpener()

	doctorService := &doctor.Service{
		ConfigProvider:  cfgLoader,
		SecurityService: guardrail,
		OS:              osName,
		EnvFile:         envFile,
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Logger:         log,
		OS:             osName,
		EnvFile:        envFile,
		Opener:         opener,
		HistoryLog:     history.NewFileLog(cfg.History.Path, opener),
		Guardrail:      guardrail,
		Executor:       executor.NewLocalExecutor(cfg.Execution.Shell),
		DoctorService:  doctorService,
		backends:       ai.NewFactory(time.Duration(cfg.Backend.TimeoutSeconds) * time.Second),
	}, nil
}

// NewSession builds the interactive loop around console. A missing backend credential
// is returned as *domain.ConfigurationError.
func (c *Container) NewSession(ctx context.Context, console ports.Console) (*repl.Loop, error) {
	completer, err := c.backends.ForConfig(ctx, c.Config)
	if err != nil {
		return nil, err
	}

	suggester, err := suggest.NewService(completer, c.Logger, c.Config.Backend.PromptTemplate)
	if err != nil {
		return nil, err
	}

	executionGate := &gate.Gate{
		Console:  console,
		Executor: c.Executor,
		Security: c.Guardrail,
		Enforce:  c.Config.Security.Enforce,
		Logger:   c.Logger,
	}

	resolver := &launch.Resolver{
		Roots:     c.Config.Apps.SearchRoots,
		Opener:    c.Opener,
		Suggester: suggester,
		Gate:      executionGate,
		Console:   console,
		OS:        c.OS,
		Logger:    c.Logger,
	}

	loop := repl.New(console, suggester, c.HistoryLog, resolver, executionGate, c.OS)
	loop.Logger = c.Logger.With("session_id", loop.SessionID)

	if c.Config.History.IndexEnabled {
		index, err := c.HistoryIndex()
		if err != nil {
			c.Logger.Warn("history index unavailable", map[string]interface{}{"error": err.Error()})
		} else {
			loop.Index = index
		}
	}

	c.Logger.Debug("session ready", map[string]interface{}{
		"backend": completer.Name(),
		"shell":   c.Executor.Shell(),
		"rules":   c.Guardrail.RuleCount(),
	})
	return loop, nil
}

// HistoryIndex opens the SQLite history index on first use.
func (c *Container) HistoryIndex() (*history.SQLiteIndex, error) {
	if c.index != nil {
		return c.index, nil
	}
	index, err := history.OpenSQLiteIndex(c.Config.History.IndexPath)
	if err != nil {
		return nil, fmt.Errorf("open history index: %w", err)
	}
	c.index = index
	return index, nil
}

// Close releases resources opened by the container.
func (c *Container) Close() error {
	if c.index == nil {
		return nil
	}
	err := c.index.Close()
	c.index = nil
	return err
}
