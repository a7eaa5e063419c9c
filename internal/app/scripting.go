package app

import (
	"github.com/dshills/barcode/internal/renderer/overlay"
)

// scriptEditor exposes the session to Lua scripts.
type scriptEditor struct {
	app *Application
}

func (s *scriptEditor) InsertText(text string) error {
	err := s.app.engine.InsertText(text)
	s.app.edit(err)
	return err
}

func (s *scriptEditor) InsertNewline() error {
	err := s.app.engine.InsertNewline()
	s.app.edit(err)
	return err
}

func (s *scriptEditor) Backspace() error {
	err := s.app.engine.Backspace()
	s.app.edit(err)
	return err
}

func (s *scriptEditor) DuplicatePrimary() { s.app.engine.DuplicatePrimary() }

func (s *scriptEditor) Collapse() { s.app.engine.Collapse() }

func (s *scriptEditor) Cursor() (x, y int) {
	c := s.app.engine.Primary()
	return c.X, c.Y
}

func (s *scriptEditor) Line(y int) (string, bool) {
	buf := s.app.engine.Buffer()
	if y < 0 || y >= buf.LineCount() {
		return "", false
	}
	return buf.Line(y), true
}

func (s *scriptEditor) LineCount() int {
	return s.app.engine.Buffer().LineCount()
}

func (s *scriptEditor) Message(text string) {
	s.app.notify(text, overlay.MessageInfo)
}
