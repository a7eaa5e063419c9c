// Package prompt implements the modal input box used to ask the user for a
// line of text, such as a file name.
package prompt

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/dshills/barcode/internal/renderer/backend"
	"github.com/dshills/barcode/internal/renderer/overlay"
)

// ErrCancelled is returned when the user dismisses the prompt.
var ErrCancelled = errors.New("user input was cancelled")

// DefaultPollInterval is how long Ask waits for a key before redrawing.
const DefaultPollInterval = 500 * time.Millisecond

// EventSource supplies input events.
type EventSource interface {
	PollEvent(timeout time.Duration) (backend.Event, bool)
}

// Prompter asks questions through an input box drawn by the renderer.
type Prompter struct {
	events   EventSource
	overlays *overlay.Manager
	redraw   func()
	interval time.Duration
}

// New creates a prompter reading keys from events. The box state is kept in
// overlays and redraw is called whenever it changes.
func New(events EventSource, overlays *overlay.Manager, redraw func()) *Prompter {
	if redraw == nil {
		redraw = func() {}
	}
	return &Prompter{
		events:   events,
		overlays: overlays,
		redraw:   redraw,
		interval: DefaultPollInterval,
	}
}

// SetPollInterval changes how often Ask redraws while idle.
func (p *Prompter) SetPollInterval(d time.Duration) {
	if d > 0 {
		p.interval = d
	}
}

// Ask shows title and blocks until the user submits or cancels.
// Enter returns the input with surrounding whitespace removed.
// Esc, an interrupt or ctx cancellation return ErrCancelled.
func (p *Prompter) Ask(ctx context.Context, title string) (string, error) {
	defer func() {
		p.overlays.ClearPrompt()
		p.redraw()
	}()

	var input []rune
	for {
		p.overlays.SetPrompt(overlay.Prompt{Title: title, Input: string(input)})
		p.redraw()

		ev, ok := p.events.PollEvent(p.interval)
		if err := ctx.Err(); err != nil {
			return "", errors.Join(ErrCancelled, err)
		}
		if !ok {
			continue
		}

		switch ev.Type {
		case backend.EventInterrupt:
			return "", ErrCancelled
		case backend.EventKey:
		default:
			continue
		}

		switch ev.Key {
		case backend.KeyEscape:
			return "", ErrCancelled
		case backend.KeyEnter:
			return strings.TrimSpace(string(input)), nil
		case backend.KeyBackspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case backend.KeyRune:
			if acceptRune(ev) {
				input = append(input, ev.Rune)
			}
		}
	}
}

func acceptRune(ev backend.Event) bool {
	if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) {
		return false
	}
	return unicode.IsPrint(ev.Rune)
}
