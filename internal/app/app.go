package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/focusgridgo/internal/feature"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	features *feature.Registry
	session  uuid.UUID
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and feature
// registry. Without modules the built-in features are registered.
func NewApp(outW io.Writer, cfg *Config, modules ...feature.Module) *App {
	session := uuid.New()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW, session)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := feature.NewRegistry(modules...)
	logger.Debug("All feature modules registered.", "count", len(modules), "features", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		features: reg,
		session:  session,
	}
}

// Features returns the application's feature registry. This is primarily for testing.
func (a *App) Features() *feature.Registry {
	return a.features
}

// Session is the id of this conversion run. It is attached to every log line
// and to published payloads.
func (a *App) Session() uuid.UUID {
	return a.session
}
