// Package app wires the editing engine, renderer, prompt, persistence,
// configuration and scripting together and runs the control loop.
package app

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/barcode/internal/config"
	"github.com/dshills/barcode/internal/config/notify"
	"github.com/dshills/barcode/internal/config/watcher"
	"github.com/dshills/barcode/internal/engine"
	"github.com/dshills/barcode/internal/engine/buffer"
	"github.com/dshills/barcode/internal/filestore"
	"github.com/dshills/barcode/internal/plugin/lua"
	"github.com/dshills/barcode/internal/prompt"
	"github.com/dshills/barcode/internal/renderer"
	"github.com/dshills/barcode/internal/renderer/backend"
	"github.com/dshills/barcode/internal/renderer/overlay"
)

// Application owns one editing session.
type Application struct {
	mu  sync.RWMutex
	cfg config.Config

	opts     Options
	loader   *config.Loader
	watcher  *watcher.Watcher
	notifier *notify.Notifier

	logger  *Logger
	logFile io.Closer
	session string
	metrics *Metrics

	engine   *engine.Engine
	backend  backend.Backend
	renderer *renderer.Renderer
	prompter *prompt.Prompter
	scripts  *lua.Host

	// startup problems shown once the first frame can be drawn
	pending []notice

	ctx     context.Context
	cancel  context.CancelFunc
	running atomic.Bool
	quit    atomic.Bool
}

type notice struct {
	text string
	kind overlay.MessageKind
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty means config.DefaultPath.
	ConfigPath string

	// File is the file to edit. Empty starts an unnamed buffer.
	File string

	// LogLevel overrides logging.level when set.
	LogLevel string

	// LogFile overrides logging.file when set.
	LogFile string

	// ReadOnly rejects edits.
	ReadOnly bool

	// IgnoreEnv skips BARCODE_* environment overrides.
	IgnoreEnv bool
}

// New loads the configuration and the file to edit. An invalid
// configuration falls back to defaults and is reported after startup; a
// file that cannot be read is fatal.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		session: uuid.NewString(),
		metrics: NewMetrics(),
	}
	app.ctx, app.cancel = context.WithCancel(context.Background())

	loaderOpts := []config.Option{config.WithPath(opts.ConfigPath)}
	if opts.IgnoreEnv {
		loaderOpts = append(loaderOpts, config.WithoutEnv())
	}
	app.loader = config.NewLoader(loaderOpts...)

	cfg, cfgErr := app.loader.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}
	app.cfg = cfg

	if err := app.initLogger(); err != nil {
		app.cancel()
		return nil, &InitError{Component: "logging", Err: err}
	}
	if cfgErr != nil {
		app.log("config").Warn("using defaults: %v", cfgErr)
		app.pending = append(app.pending, notice{"Config: " + cfgErr.Error(), overlay.MessageError})
	}

	buf := buffer.NewBuffer()
	if opts.File != "" {
		var err error
		if buf, err = filestore.Load(opts.File); err != nil {
			app.log("filestore").Error("load failed: %v", err)
			app.closeLog()
			app.cancel()
			return nil, &InitError{Component: "buffer", Err: err}
		}
	}
	app.engine = engine.New(engine.WithBuffer(buf), engine.WithReadOnly(opts.ReadOnly))

	return app, nil
}

func (app *Application) initLogger() error {
	level := app.cfg.Logging.Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}
	file := app.cfg.Logging.File
	if app.opts.LogFile != "" {
		file = app.opts.LogFile
	}

	if file == "" {
		app.logger = NullLogger
		return nil
	}

	f, err := OpenLogFile(file)
	if err != nil {
		return err
	}
	app.logFile = f
	logCfg := DefaultLoggerConfig()
	logCfg.Level = ParseLogLevel(level)
	logCfg.Output = f
	app.logger = NewLogger(logCfg).WithField("session", app.session)
	return nil
}

func (app *Application) log(component string) *Logger {
	return app.logger.WithComponent(component)
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// SetBackend sets the painter and event source. It must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend and runs the control loop until the user
// quits or RequestQuit is called. The backend is shut down before Run
// returns.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.shutdown()

	cfg := app.Config()
	app.renderer = renderer.New(app.backend, rendererOptions(cfg))
	app.prompter = prompt.New(app.backend, app.renderer.Overlays(), app.render)
	app.prompter.SetPollInterval(cfg.PollTimeout())

	app.subscribeConfig()
	app.startWatcher()
	app.loadScripts(cfg.Plugins.InitScript)

	for _, n := range app.pending {
		app.notify(n.text, n.kind)
	}
	app.pending = nil

	app.log("loop").Info("started path=%q readOnly=%t", app.engine.Buffer().Path(), app.engine.IsReadOnly())
	return app.eventLoop()
}

// RequestQuit ends the loop after the next frame. It is safe to call from
// any goroutine, including a signal handler.
func (app *Application) RequestQuit() {
	app.quit.Store(true)
	app.cancel()
	if app.backend != nil {
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

func (app *Application) shutdown() {
	if app.scripts != nil {
		_ = app.scripts.Close()
	}
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	app.cancel()

	snap := app.metrics.Snapshot()
	app.log("loop").WithFields(snap.Fields()).Info("stopped: %s", snap)

	app.backend.Shutdown()
	app.closeLog()
}

func (app *Application) startWatcher() {
	path := app.loader.Path()
	if path == "" {
		return
	}
	w, err := watcher.New(path)
	if err != nil {
		app.log("config").Debug("not watching %s: %v", path, err)
		return
	}
	app.watcher = w
}

func (app *Application) loadScripts(path string) {
	if path == "" {
		return
	}
	host := lua.NewHost(&scriptEditor{app: app})
	if err := host.LoadFile(app.ctx, path); err != nil {
		_ = host.Close()
		app.reportError("plugin", NewOperationError("load script", path, err))
		return
	}
	app.scripts = host
	app.log("plugin").Info("loaded %s bindings=%v", path, host.Bindings())
}

// Config returns the active configuration.
func (app *Application) Config() config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cfg
}

// Engine returns the editing engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Renderer returns the renderer. It is nil until Run starts.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

// Metrics returns the session counters.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Session returns the session ID attached to every log line.
func (app *Application) Session() string {
	return app.session
}

// IsRunning reports whether the control loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}
