// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/colorpref/internal/application/usecase"
	"github.com/bnema/colorpref/internal/bootstrap"
	"github.com/bnema/colorpref/internal/cli/styles"
	"github.com/bnema/colorpref/internal/domain/build"
	"github.com/bnema/colorpref/internal/domain/entity"
	"github.com/bnema/colorpref/internal/infrastructure/config"
	"github.com/bnema/colorpref/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()

	// levelPinned is set when COLORPREF_LOG_LEVEL overrides the config file.
	levelPinned bool

	stackOnce sync.Once
	stack     *bootstrap.ThemeStack
	stackErr  error
}

// NewApp loads configuration and sets up logging. The theme stack is built
// on first use, so commands that only read configuration never touch the
// preference storage.
func NewApp() (*App, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := config.Get()

	logLevel := cfg.Logging.Level
	envLevel := os.Getenv("COLORPREF_LOG_LEVEL")
	if envLevel != "" {
		logLevel = envLevel
	}
	// The logger itself accepts everything; the global level filters, so a
	// config reload can change verbosity without rebuilding the logger.
	logCfg := logging.DefaultConfig()
	zerolog.SetGlobalLevel(logging.ParseLevel(logLevel, logCfg.Level))
	logCfg.Level = zerolog.TraceLevel
	if cfg.Logging.Format == "json" {
		logCfg.Format = "json"
	}
	logger, logCleanup, err := logging.NewWithFile(logCfg, logging.FileConfig{
		Enabled:    cfg.Logging.File.Enabled,
		Dir:        cfg.Logging.File.Dir,
		MaxSizeMB:  cfg.Logging.File.MaxSizeMB,
		MaxBackups: cfg.Logging.File.MaxBackups,
		MaxAgeDays: cfg.Logging.File.MaxAgeDays,
		Compress:   cfg.Logging.File.Compress,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("log file disabled")
	}
	ctx := logging.WithContext(context.Background(), logger)

	mgr := config.GetManager()
	if mgr != nil && mgr.Created() {
		logger.Info().Str("path", mgr.ConfigFilePath()).Msg("created default config")
	}

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(entity.HeadlessEffective),
		ctx:           ctx,
		logCleanup:    logCleanup,
		levelPinned:   envLevel != "",
	}, nil
}

// WatchConfig reloads the config file on change for long-running commands.
// A new logging level takes effect immediately; other settings apply on the
// next run.
func (a *App) WatchConfig() error {
	if a.ConfigManager == nil {
		return nil
	}
	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		log := logging.FromContext(a.ctx)
		if !a.levelPinned {
			zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level, zerolog.InfoLevel))
		}
		log.Info().Str("level", zerolog.GlobalLevel().String()).Msg("config reloaded")
	})
	if err := a.ConfigManager.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	return nil
}

// Stack returns the process theme stack, building it on first call. Once
// built, the CLI styles follow the effective theme.
func (a *App) Stack() (*bootstrap.ThemeStack, error) {
	a.stackOnce.Do(func() {
		a.stack, a.stackErr = bootstrap.DefaultStack(a.ctx)
		if a.stackErr == nil {
			a.Theme = styles.NewTheme(a.stack.Preference.Get())
		}
	})
	return a.stack, a.stackErr
}

// ChangeThemeUseCase returns a use case bound to the process preference.
func (a *App) ChangeThemeUseCase() (*usecase.ChangeThemeUseCase, error) {
	stack, err := a.Stack()
	if err != nil {
		return nil, err
	}
	return usecase.NewChangeThemeUseCase(stack.Preference), nil
}

// DiagnoseThemeUseCase returns a use case inspecting the process stack.
func (a *App) DiagnoseThemeUseCase() (*usecase.DiagnoseThemeUseCase, error) {
	stack, err := a.Stack()
	if err != nil {
		return nil, err
	}
	return usecase.NewDiagnoseThemeUseCase(stack.Resolver, stack.Display, stack.Store), nil
}

// Ctx returns the app context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WithContext replaces the app context, e.g. with one cancelled on SIGINT.
func (a *App) WithContext(ctx context.Context) {
	a.ctx = ctx
}

// Close releases the theme stack if it was built, then the log file.
func (a *App) Close() error {
	var err error
	if a.stack != nil {
		err = a.stack.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}
