package app

import (
	"errors"
	"time"

	"github.com/dshills/barcode/internal/config"
	"github.com/dshills/barcode/internal/engine"
	"github.com/dshills/barcode/internal/renderer"
	"github.com/dshills/barcode/internal/renderer/backend"
	"github.com/dshills/barcode/internal/renderer/core"
	"github.com/dshills/barcode/internal/renderer/overlay"
)

// eventLoop renders, checks the end flag, waits for one event and handles
// it. The poll timeout bounds how long an expired message stays on screen.
func (app *Application) eventLoop() error {
	for {
		app.render()
		if app.quit.Load() {
			return nil
		}

		ev, ok := app.backend.PollEvent(app.Config().PollTimeout())
		app.drainConfigEvents()
		if !ok {
			continue
		}

		if err := app.handleBackendEvent(ev); errors.Is(err, ErrQuit) {
			app.quit.Store(true)
		}
	}
}

func (app *Application) render() {
	start := time.Now()
	app.renderer.Render(app.engine.Buffer(), app.engine.CursorPositions())
	app.metrics.RecordFrame(time.Since(start))
}

// handleBackendEvent routes one event. It returns ErrQuit when the session
// should end.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventInterrupt:
		return ErrQuit
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	default:
		// resize is picked up by the next render
		return nil
	}
}

// handleKeyEvent gives script bindings first refusal, then falls back to
// the built-in key map.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	chord := ev.Chord()
	if app.scripts != nil && app.scripts.HasBinding(chord) {
		app.metrics.RecordKey(true)
		if _, err := app.scripts.Dispatch(app.ctx, chord); err != nil {
			app.reportError("plugin", NewOperationError("script", chord, err))
		}
		return nil
	}

	app.metrics.RecordKey(false)
	return app.handleBuiltin(ev, chord)
}

func (app *Application) handleBuiltin(ev backend.Event, chord string) error {
	switch chord {
	case "ctrl+s":
		app.save(false)
		return nil
	case "ctrl+shift+s", "alt+s":
		app.save(true)
		return nil
	case "ctrl+a":
		app.engine.DuplicatePrimary()
		return nil
	case "ctrl+x":
		app.engine.Collapse()
		return nil
	}

	switch ev.Key {
	case backend.KeyEscape:
		return ErrQuit
	case backend.KeyUp:
		app.engine.MoveUp()
	case backend.KeyDown:
		app.engine.MoveDown()
	case backend.KeyLeft:
		app.engine.MoveLeft()
	case backend.KeyRight:
		app.engine.MoveRight()
	case backend.KeyEnter:
		app.edit(app.engine.InsertNewline())
	case backend.KeyBackspace:
		app.edit(app.engine.Backspace())
	case backend.KeyRune:
		if insertable(ev) {
			app.edit(app.engine.InsertChar(ev.Rune))
		}
	}
	return nil
}

// insertable reports whether a key types a character: printable ASCII,
// including space, without Ctrl or Alt.
func insertable(ev backend.Event) bool {
	if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) {
		return false
	}
	return ev.Rune >= ' ' && ev.Rune <= '~'
}

func (app *Application) edit(err error) {
	if errors.Is(err, engine.ErrReadOnly) {
		app.notify("Buffer is read-only", overlay.MessageInfo)
	}
}

// notify posts a transient message for the configured duration.
func (app *Application) notify(text string, kind overlay.MessageKind) {
	if app.renderer == nil {
		app.pending = append(app.pending, notice{text, kind})
		return
	}
	app.renderer.Overlays().Post(text, kind, app.Config().MessageDuration())
}

// reportError logs err and shows it as an error message.
func (app *Application) reportError(component string, err error) {
	app.log(component).Error("%v", err)
	app.notify(err.Error(), overlay.MessageError)
}

// drainConfigEvents applies pending config file changes without blocking.
func (app *Application) drainConfigEvents() {
	if app.watcher == nil {
		return
	}

	reload := false
	for {
		select {
		case ev, ok := <-app.watcher.Events():
			if !ok {
				app.watcher = nil
				return
			}
			app.log("config").Debug("%s %s", ev.Op, ev.Path)
			reload = true
			continue
		case err, ok := <-app.watcher.Errors():
			if ok {
				app.log("config").Warn("watch error: %v", err)
				continue
			}
		default:
		}
		break
	}

	if reload {
		app.reloadConfig()
	}
}

// rendererOptions maps configuration onto renderer options.
func rendererOptions(cfg config.Config) renderer.Options {
	opts := renderer.DefaultOptions()
	opts.ScrollMargin = cfg.Editor.ScrollMargin
	opts.Marker = cfg.Glyph()
	opts.Gutter.NumberWidth = cfg.UI.GutterWidth
	opts.Gutter.CurrentStyle = core.NewStyle(config.Color(cfg.UI.CurrentLineColor)).Bold()
	opts.PrimaryCursorStyle = core.NewStyle(config.Color(cfg.UI.PrimaryCursorColor))
	opts.SecondaryCursorStyle = core.NewStyle(config.Color(cfg.UI.SecondaryCursorColor))
	return opts
}
