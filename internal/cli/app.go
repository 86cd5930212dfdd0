// Package cli holds the state shared by the fruitwm commands.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/fruitwm/internal/cli/styles"
	"github.com/bnema/fruitwm/internal/domain/build"
	"github.com/bnema/fruitwm/internal/infrastructure/config"
	"github.com/bnema/fruitwm/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx     context.Context
	logFile *logging.FileWriter
}

// NewApp loads the configuration (configFile may be empty for the XDG
// default) and builds the logger every command shares.
func NewApp(configFile string) (*App, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	app := &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
	}

	// The logger accepts everything; the global level filters, so it can
	// follow config reloads.
	logCfg := logging.DefaultConfig()
	logCfg.Level = zerolog.TraceLevel
	logCfg.Format = cfg.Logging.Format
	logCfg.TimeFormat = "15:04:05"
	if cfg.Logging.EnableFileLog {
		opts := logging.DefaultRotateOptions()
		opts.MaxAgeDays = cfg.Logging.MaxAge
		fw, err := logging.NewFileWriter(cfg.Logging.LogDir, opts)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		app.logFile = fw
		logCfg.File = fw
	}
	if err := logging.SetGlobalLevel(cfg.Logging.Level); err != nil {
		return nil, err
	}

	app.ctx = logging.WithContext(context.Background(), logging.New(logCfg))
	return app, nil
}

// Context returns a context carrying the application logger.
func (a *App) Context() context.Context {
	if a == nil || a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

// Close releases the log file.
func (a *App) Close() error {
	if a == nil || a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}
