package app

import (
	"github.com/dshills/barcode/internal/config"
	"github.com/dshills/barcode/internal/config/loader"
	"github.com/dshills/barcode/internal/config/notify"
	"github.com/dshills/barcode/internal/renderer/overlay"
)

// subscribeConfig connects each live-reloadable setting to the component
// that uses it.
func (app *Application) subscribeConfig() {
	n := notify.New()

	n.Subscribe(func(c notify.Change) {
		app.log("config").Debug("%s %s: %v -> %v", c.Type, c.Path, c.OldValue, c.NewValue)
	})

	redraw := func(notify.Change) {
		app.renderer.SetOptions(rendererOptions(app.Config()))
	}
	n.SubscribePath("ui", redraw)
	n.SubscribePath("editor.scrollMargin", redraw)

	n.SubscribePath("editor.pollInterval", func(notify.Change) {
		app.prompter.SetPollInterval(app.Config().PollTimeout())
	})
	n.SubscribePath("logging.level", func(notify.Change) {
		if app.opts.LogLevel == "" {
			app.logger.SetLevel(ParseLogLevel(app.Config().Logging.Level))
		}
	})
	n.SubscribePath("logging.file", func(notify.Change) {
		app.log("config").Warn("logging.file takes effect after restart")
	})
	n.SubscribePath("plugins.initScript", func(notify.Change) {
		app.reloadScripts()
	})

	app.notifier = n
}

// reloadConfig reads the configuration again and notifies subscribers of
// each setting that changed. An invalid file keeps the current settings.
func (app *Application) reloadConfig() {
	log := app.log("config")

	cfg, err := app.loader.Load()
	if err != nil {
		app.reportError("config", NewOperationError("reload", app.loader.Path(), err))
		return
	}

	changes, err := configChanges(app.Config(), cfg)
	if err != nil {
		app.reportError("config", NewOperationError("reload", app.loader.Path(), err))
		return
	}
	if len(changes) == 0 {
		log.Debug("reload: no changes")
		return
	}

	app.mu.Lock()
	app.cfg = cfg
	app.mu.Unlock()

	app.notifier.NotifyAll(changes)
	app.metrics.RecordReload()
	log.Info("reloaded %s changes=%d", app.loader.Path(), len(changes))
	app.notify("Configuration reloaded", overlay.MessageInfo)
}

func configChanges(oldCfg, newCfg config.Config) ([]notify.Change, error) {
	oldData, err := loader.Encode(oldCfg)
	if err != nil {
		return nil, err
	}
	newData, err := loader.Encode(newCfg)
	if err != nil {
		return nil, err
	}
	return notify.Diff(oldData, newData), nil
}

func (app *Application) reloadScripts() {
	if app.scripts != nil {
		_ = app.scripts.Close()
		app.scripts = nil
	}
	app.loadScripts(app.Config().Plugins.InitScript)
}
