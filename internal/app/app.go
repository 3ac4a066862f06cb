// Package app provides the main application structure and coordination
// for the memento editor. It wires the configuration, history, editor and
// terminal backend together and runs the key event loop.
package app

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/Tharindu714/Code-Editor-Memento/internal/config"
	"github.com/Tharindu714/Code-Editor-Memento/internal/editor"
	"github.com/Tharindu714/Code-Editor-Memento/internal/engine/history"
	"github.com/Tharindu714/Code-Editor-Memento/internal/renderer/backend"
)

// Application is the central coordinator for the editor components.
type Application struct {
	mu sync.Mutex

	config  *config.Config
	logger  *Logger
	logFile io.Closer

	history *history.History
	editor  *editor.Editor
	backend backend.Backend
	theme   theme

	// top is the first document line shown on screen.
	top int

	reloads chan *config.Config

	running      atomic.Bool
	shutdownOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogLevel overrides the configured logging verbosity when set.
	LogLevel string

	// Logger replaces the logger built from configuration.
	Logger *Logger
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, NewComponentError("config", "load", err)
	}

	app := &Application{
		config:  cfg,
		reloads: make(chan *config.Config, 1),
		opts:    opts,
	}

	if err := app.initLogger(); err != nil {
		return nil, err
	}

	app.history = history.NewHistory(
		history.WithMaxEntries(cfg.History.MaxEntries),
		history.WithDedup(cfg.History.Dedup),
	)
	app.editor = editor.New(app.history, editor.WithInitialText(cfg.Editor.InitialText))
	app.theme = newTheme(cfg.Theme)

	app.logger.WithFields(map[string]any{
		"config":      opts.ConfigPath,
		"max_entries": cfg.History.MaxEntries,
		"dedup":       cfg.History.Dedup,
	}).Info("application initialized")

	return app, nil
}

// initLogger builds the logger from options and configuration.
func (app *Application) initLogger() error {
	level := app.config.Log.Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}

	switch {
	case app.opts.Logger != nil:
		app.logger = app.opts.Logger
	case app.config.Log.File != "":
		l, closer, err := OpenLogFile(app.config.Log.File, ParseLogLevel(level))
		if err != nil {
			return NewComponentError("logger", "open", err)
		}
		app.logger = l
		app.logFile = closer
	default:
		cfg := DefaultLoggerConfig()
		cfg.Level = ParseLogLevel(level)
		app.logger = NewLogger(cfg)
	}

	app.logger = app.logger.WithComponent("app")
	return nil
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Editor returns the document editor.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// History returns the undo/redo history.
func (app *Application) History() *history.History {
	return app.history
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.config
}

// SetBackend sets the display backend and initializes it.
func (app *Application) SetBackend(b backend.Backend) error {
	if err := b.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	app.backend = b
	app.setTheme(app.theme)
	return nil
}

// Run runs the event loop until quit is requested or ctx is cancelled.
// A quit request is reported as ErrQuit.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if app.opts.ConfigPath != "" {
		go app.watchConfig(ctx)
	}

	events := make(chan backend.Event)
	go app.pollEvents(ctx, events)

	app.render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cfg := <-app.reloads:
			app.applyConfig(cfg)
			app.render()

		case ev := <-events:
			if err := app.handleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					app.logger.Info("quit requested")
				}
				return err
			}
			app.render()
		}
	}
}

// pollEvents forwards backend events until ctx is cancelled.
func (app *Application) pollEvents(ctx context.Context, out chan<- backend.Event) {
	for {
		ev := app.backend.PollEvent()
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// watchConfig delivers config reloads to the event loop.
func (app *Application) watchConfig(ctx context.Context) {
	log := app.logger.WithComponent("config")
	err := config.Watch(ctx, app.opts.ConfigPath, func(cfg *config.Config) {
		select {
		case app.reloads <- cfg:
		case <-ctx.Done():
		}
	}, func(err error) {
		log.Warn("reload failed: %v", err)
	})
	if err != nil {
		log.Error("watch failed: %v", err)
	}
}

// applyConfig installs a reloaded configuration.
// Initial text and log file only take effect at startup.
func (app *Application) applyConfig(cfg *config.Config) {
	app.mu.Lock()
	app.config = cfg
	app.mu.Unlock()

	app.history.SetMaxEntries(cfg.History.MaxEntries)
	app.history.SetDedup(cfg.History.Dedup)
	app.setTheme(newTheme(cfg.Theme))
	if app.opts.LogLevel == "" {
		app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	}

	app.logger.WithFields(map[string]any{
		"max_entries": cfg.History.MaxEntries,
		"dedup":       cfg.History.Dedup,
	}).Info("configuration reloaded")
}

// Shutdown releases the backend and log file. Safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		if app.backend != nil {
			app.backend.Shutdown()
		}
		app.logger.Info("shutdown")
		if app.logFile != nil {
			_ = app.logFile.Close()
		}
	})
}
