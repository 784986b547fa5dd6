// Package app provides the main application structure and coordination
// for the tagedit editor. It wires the engine, renderer, input handler and
// terminal backend together and manages the application lifecycle.
package app

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dshills/tagedit/internal/clipboard"
	"github.com/dshills/tagedit/internal/config"
	"github.com/dshills/tagedit/internal/engine"
	"github.com/dshills/tagedit/internal/event"
	"github.com/dshills/tagedit/internal/input"
	"github.com/dshills/tagedit/internal/renderer"
	"github.com/dshills/tagedit/internal/renderer/backend"
	"github.com/dshills/tagedit/internal/renderer/statusline"
)

// ConfigPathEnv names the environment variable that overrides the default
// config file location.
const ConfigPathEnv = "TAGEDIT_CONFIG"

// Application is the central coordinator for all tagedit components.
// It manages component lifecycles, wiring, and the main event loop.
type Application struct {
	mu sync.RWMutex

	// Configuration
	cfg        config.Config
	configPath string
	watcher    *config.Watcher

	// Logging
	logger  *Logger
	logFile io.Closer
	metrics *Metrics

	// Editor components
	doc      *Document
	backend  backend.Backend
	renderer *renderer.Renderer
	handler  *input.Handler
	status   *statusline.StatusLine
	subs     []*event.Subscription

	// Bracketed paste in progress
	pasting bool
	paste   strings.Builder

	// State
	running   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses
	// $TAGEDIT_CONFIG or the user config directory.
	ConfigPath string

	// File is the file to open on startup. Empty opens a scratch buffer.
	File string

	// LogLevel overrides the configured log level.
	LogLevel string

	// LogFile overrides the configured log file.
	LogFile string

	// TabSize overrides the configured tab size when positive.
	TabSize int

	// ReadOnly opens the file in read-only mode.
	ReadOnly bool

	// NoWatch disables live config reloading.
	NoWatch bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		metrics: NewMetrics(),
	}

	if err := app.bootstrap(); err != nil {
		app.closeLog()
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config. Load errors are non-fatal; the defaults are used.
	app.configPath = app.opts.ConfigPath
	if app.configPath == "" {
		app.configPath = os.Getenv(ConfigPathEnv)
	}
	if app.configPath == "" {
		app.configPath = config.DefaultPath()
	}
	cfg, cfgErr := config.Load(app.configPath)
	app.cfg = app.applyOverrides(cfg)

	// 2. Logger
	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	if cfgErr != nil {
		app.logComponentError("config", cfgErr)
	}

	// 3. Document
	engineOpts := []engine.Option{
		engine.WithTabWidth(app.cfg.Editor.TabSize),
		engine.WithInsertMode(app.cfg.Editor.InsertMode),
	}
	if app.opts.File != "" {
		doc, err := OpenDocument(app.opts.File, engineOpts...)
		if err != nil {
			return &InitError{Component: "document", Err: err}
		}
		app.doc = doc
	} else {
		app.doc = NewDocument("", nil, engineOpts...)
	}
	app.doc.ReadOnly = app.opts.ReadOnly
	app.logger = app.logger.WithField("engine", app.doc.Engine.ID())

	// 4. Status line
	app.status = statusline.New(0)
	app.status.SetFilename(app.doc.Name)

	app.logger.Info("started with %s (config %s)", app.doc.Name, app.configPath)
	return nil
}

// applyOverrides lays the command line options over cfg.
func (app *Application) applyOverrides(cfg config.Config) config.Config {
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Log.File = app.opts.LogFile
	}
	if app.opts.TabSize > 0 {
		cfg.Editor.TabSize = app.opts.TabSize
	}
	return cfg
}

func (app *Application) initLogger() error {
	logCfg := DefaultLoggerConfig()
	logCfg.Level = ParseLogLevel(app.cfg.Log.Level)
	if app.cfg.Log.File != "" {
		f, err := OpenLogFile(app.cfg.Log.File)
		if err != nil {
			return err
		}
		logCfg.Output = f
		app.logFile = f
	}
	app.logger = NewLogger(logCfg)
	return nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until the user quits or Shutdown is called.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.wire(b)
	defer app.unwire()

	return app.eventLoop()
}

// wire connects the document to the backend.
func (app *Application) wire(b backend.Backend) {
	eng := app.doc.Engine

	clip := clipboard.NewSystem(b.Post, clipboard.WithErrorHandler(func(err error) {
		app.reportError("clipboard", err)
	}))
	app.handler = input.NewHandler(eng, clip, input.Config{PageLines: app.cfg.Editor.PageLines})
	app.handler.SetErrorHandler(func(err error) {
		app.reportError("paste", err)
	})

	app.renderer = renderer.New(eng, b, renderer.Options{SelectStyle: app.cfg.Editor.SelectStyle})

	app.subs = append(app.subs,
		eng.Subscribe(event.TopicInsertMode, func(ev event.Event) {
			if insert, ok := ev.New.(bool); ok {
				app.status.SetInsertMode(insert)
			}
		}),
	)
	app.status.SetInsertMode(eng.InsertMode())

	w, h := b.Size()
	app.layout(w, h)

	if !app.opts.NoWatch && app.configPath != "" {
		app.startWatcher(b)
	}
}

func (app *Application) unwire() {
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logComponentError("config", err)
		}
		app.watcher = nil
	}
	for _, sub := range app.subs {
		sub.Unsubscribe()
	}
	app.subs = nil
	if app.renderer != nil {
		app.renderer.Close()
	}

	snap := app.metrics.Snapshot()
	app.logger.Debug("handled %d events (avg %dns, max %dns), drew %d frames",
		snap.EventCount, snap.AvgEventNs, snap.MaxEventNs, snap.FrameCount)
}

// startWatcher reloads the config on change. Reloads are applied on the
// event loop through the backend.
func (app *Application) startWatcher(b backend.Backend) {
	w, err := config.NewWatcher(app.configPath,
		func(cfg config.Config) {
			b.Post(func() { app.ApplyConfig(cfg) })
		},
		config.WithReloadError(func(err error) {
			b.Post(func() { app.reportError("config", err) })
		}),
	)
	if err != nil {
		app.logger.WithComponent("config").Warn("not watching %s: %v", app.configPath, err)
		return
	}
	app.watcher = w
}

// ApplyConfig applies the live-reloadable settings of cfg. It must run on
// the event loop.
func (app *Application) ApplyConfig(cfg config.Config) {
	cfg = app.applyOverrides(cfg)
	app.cfg.Editor = cfg.Editor

	app.doc.Engine.SetTabWidth(cfg.Editor.TabSize)
	if app.handler != nil {
		app.handler.SetPageLines(cfg.Editor.PageLines)
	}
	if app.renderer != nil {
		app.renderer.SetSelectStyle(cfg.Editor.SelectStyle)
	}
	app.logger.WithComponent("config").Info("reloaded: tab size %d, page lines %d",
		cfg.Editor.TabSize, cfg.Editor.PageLines)
}

// Shutdown stops the event loop. It is safe to call more than once and
// from any goroutine.
func (app *Application) Shutdown() {
	app.closeOnce.Do(func() {
		close(app.done)

		app.mu.RLock()
		b := app.backend
		app.mu.RUnlock()
		if b != nil && app.running.Load() {
			// Wake the poller.
			b.Post(func() {})
		}
	})
}

// Close releases the log file. Call it after Run returns.
func (app *Application) Close() {
	app.Shutdown()
	if app.doc != nil {
		app.doc.Close()
	}
	app.closeLog()
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the active configuration.
func (app *Application) Config() config.Config {
	return app.cfg
}

// ConfigPath returns the config file in use.
func (app *Application) ConfigPath() string {
	return app.configPath
}

// Document returns the open document.
func (app *Application) Document() *Document {
	return app.doc
}

// Renderer returns the renderer. It is nil until Run starts.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

// StatusLine returns the status line.
func (app *Application) StatusLine() *statusline.StatusLine {
	return app.status
}
