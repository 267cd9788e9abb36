package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/chatgate/internal/adapters/render/reply"
	configfile "github.com/bnema/chatgate/internal/adapters/repo/configfile"
	tomlrepo "github.com/bnema/chatgate/internal/adapters/repo/toml"
	"github.com/bnema/chatgate/internal/adapters/restart"
	agentruntime "github.com/bnema/chatgate/internal/adapters/runtime"
	"github.com/bnema/chatgate/internal/adapters/usage/jsonl"
	"github.com/bnema/chatgate/internal/adapters/validate/rules"
	"github.com/bnema/chatgate/internal/application"
	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/logging"
	"github.com/bnema/chatgate/internal/ports"
	"github.com/spf13/viper"
)

const (
	settingsDir  = ".chatgate"
	settingsFile = "settings.toml"
	envPrefix    = "CHATGATE"
)

type app struct {
	settings      *viper.Viper
	configRepo    *configfile.Repository
	validator     ports.ConfigValidator
	configService *application.ConfigService
	live          *application.LiveConfig
	overrides     *application.Overrides
	sessions      *application.SessionService
	queues        *agentruntime.QueueRegistry
	signals       *restart.SignalRestarter
	dispatcher    *application.Dispatcher
	replyRenderer func(reply.Exchange, reply.RenderOptions) (string, error)
	logger        *slog.Logger
}

func wireApp() (*app, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	logger := logging.Setup(settings.GetBool("log.verbose"), settings.GetBool("log.json"), os.Stderr)

	configRepo, err := configfile.NewRepository(settings)
	if err != nil {
		return nil, fmt.Errorf("wire config repository: %w", err)
	}
	sessionStore, err := tomlrepo.NewSessionStore(settings)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}
	ledger, err := jsonl.NewLedger(settings)
	if err != nil {
		return nil, fmt.Errorf("wire usage ledger: %w", err)
	}

	clock := ports.SystemClock{}
	validator := rules.Default()
	overrides := application.NewOverrides()
	configService := application.NewConfigService(configRepo, validator, logger)
	live := application.NewLiveConfig(configRepo, overrides, logger)
	configService.OnWrite(live.Replace)

	ctx := context.Background()
	if err := live.Reload(ctx); err != nil && !errors.Is(err, domain.ErrInvalidDocument) {
		return nil, fmt.Errorf("load gateway config: %w", err)
	}

	sessions := application.NewSessionService(nil, sessionStore, clock, logger)
	if err := sessions.Load(ctx); err != nil {
		return nil, fmt.Errorf("wire sessions: %w", err)
	}

	runs := agentruntime.NewRunRegistry()
	queues := agentruntime.NewQueueRegistry()
	subagents := agentruntime.NewSubagentRegistry()
	hooks := agentruntime.NewHookBus()
	hooks.Register("command", func(_ context.Context, event domain.HookEvent) error {
		logger.Info("command hook", "event", event.Name(), "session", event.SessionKey, "source", event.Context.CommandSource)
		return nil
	})

	signals := restart.NewSignalRestarter(logger)
	aborts := application.NewAbortService(application.AbortDeps{
		Runs:      runs,
		Queues:    queues,
		Sessions:  sessions,
		Memory:    agentruntime.NewAbortMemory(),
		Hooks:     hooks,
		Subagents: subagents,
		Clock:     clock,
		Logger:    logger,
	})

	commands := application.NewCommands(application.CommandsDeps{
		Config:    configService,
		Overrides: overrides,
		Sessions:  sessions,
		Aborts:    aborts,
		Restarts:  application.NewRestartService(signals, restart.NewSupervisorRestarter(settings)),
		Usage:     ledger,
		Clock:     clock,
		Logger:    logger,
	})

	return &app{
		settings:      settings,
		configRepo:    configRepo,
		validator:     validator,
		configService: configService,
		live:          live,
		overrides:     overrides,
		sessions:      sessions,
		queues:        queues,
		signals:       signals,
		dispatcher:    application.NewDispatcher(live, sessions.Table(), logger, commands.Handlers()...),
		replyRenderer: reply.Render,
		logger:        logger,
	}, nil
}

// loadSettings reads ~/.chatgate/settings.toml when present. CHATGATE_*
// environment variables override it (CHATGATE_CONFIG_PATH for config.path).
func loadSettings() (*viper.Viper, error) {
	settings := viper.New()
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	settings.AutomaticEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	settings.SetConfigFile(filepath.Join(homeDir, settingsDir, settingsFile))
	settings.SetConfigType("toml")
	if err := settings.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}

	return settings, nil
}

// restartInProcess is the SIGUSR1 restart: memory-only state is dropped and
// config and sessions are reloaded from disk.
func (a *app) restartInProcess(ctx context.Context, reason string) {
	a.sessions.Wait()
	a.overrides.Reset()

	if err := a.live.Reload(ctx); err != nil {
		a.logger.Warn("restart: reload config", "error", err)
	}
	if err := a.sessions.Load(ctx); err != nil {
		a.logger.Warn("restart: reload sessions", "error", err)
	}
	a.logger.Info("gateway restarted in-process", "reason", reason)
}
