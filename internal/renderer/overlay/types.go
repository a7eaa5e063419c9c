// Package overlay holds the transient boxes drawn on top of the text: status
// messages in the top-right corner and the input prompt.
package overlay

import (
	"time"

	"github.com/dshills/barcode/internal/renderer/core"
)

// MessageKind classifies a status message.
type MessageKind uint8

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageError
)

// Title returns the box title for the kind.
func (k MessageKind) Title() string {
	switch k {
	case MessageSuccess:
		return "Success"
	case MessageError:
		return "Error"
	default:
		return "Info"
	}
}

// Message is a status message that disappears after Expires.
type Message struct {
	Text    string
	Kind    MessageKind
	Expires time.Time
}

// Prompt is the state of an open input box.
type Prompt struct {
	Title string
	Input string
}

// Styles holds the colors of overlay boxes.
type Styles struct {
	Info    core.Style
	Success core.Style
	Error   core.Style
	Prompt  core.Style
}

// DefaultStyles returns the default overlay styles.
func DefaultStyles() Styles {
	return Styles{
		Info:    core.DefaultStyle(),
		Success: core.NewStyle(core.ColorCyan),
		Error:   core.NewStyle(core.ColorRed),
		Prompt:  core.NewStyle(core.ColorCyan),
	}
}

// ForMessage returns the style of a message kind.
func (s Styles) ForMessage(k MessageKind) core.Style {
	switch k {
	case MessageSuccess:
		return s.Success
	case MessageError:
		return s.Error
	default:
		return s.Info
	}
}
