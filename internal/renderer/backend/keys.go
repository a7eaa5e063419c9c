package backend

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

var keyNames = map[Key]string{
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

// String returns the lower-case name of the key.
func (k Key) String() string {
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return string(rune('a' + (k - KeyCtrlA)))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k == KeyRune {
		return "rune"
	}
	return "none"
}

// CtrlLetter returns the Ctrl key for a letter.
// Returns KeyNone when r is not an ASCII letter.
func CtrlLetter(r rune) Key {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return KeyNone
	}
	return KeyCtrlA + Key(r-'a')
}

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Chord returns a normalized name for a key event such as "ctrl+s",
// "ctrl+shift+s", "alt+x", "f5" or "a". Non-key events return "".
func (e Event) Chord() string {
	if e.Type != EventKey {
		return ""
	}

	mod := e.Mod
	name := e.Key.String()
	switch {
	case e.Key >= KeyCtrlA && e.Key <= KeyCtrlZ:
		mod |= ModCtrl
	case e.Key == KeyRune:
		name = string(e.Rune)
		if mod.Has(ModCtrl) || mod.Has(ModAlt) {
			if unicode.IsUpper(e.Rune) {
				mod |= ModShift
			}
			name = string(unicode.ToLower(e.Rune))
		} else {
			// shift is already reflected in the rune itself
			mod &^= ModShift
		}
	}

	var sb strings.Builder
	if mod.Has(ModCtrl) {
		sb.WriteString("ctrl+")
	}
	if mod.Has(ModAlt) {
		sb.WriteString("alt+")
	}
	if mod.Has(ModShift) {
		sb.WriteString("shift+")
	}
	sb.WriteString(name)
	return sb.String()
}

// NormalizeChord rewrites a chord written by hand, such as "Shift+Ctrl+S",
// into the form produced by Event.Chord. Unknown modifiers are dropped.
func NormalizeChord(s string) string {
	parts := strings.Split(strings.TrimSpace(s), "+")
	key := parts[len(parts)-1]
	if key == "" {
		return ""
	}

	var mod ModMask
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "control":
			mod |= ModCtrl
		case "alt", "meta":
			mod |= ModAlt
		case "shift":
			mod |= ModShift
		}
	}

	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		if mod == ModNone || mod == ModShift {
			if mod == ModShift {
				r = unicode.ToUpper(r)
			}
			return string(r)
		}
		if unicode.IsUpper(r) {
			mod |= ModShift
		}
		key = string(unicode.ToLower(r))
	} else {
		key = strings.ToLower(key)
	}

	var sb strings.Builder
	if mod.Has(ModCtrl) {
		sb.WriteString("ctrl+")
	}
	if mod.Has(ModAlt) {
		sb.WriteString("alt+")
	}
	if mod.Has(ModShift) {
		sb.WriteString("shift+")
	}
	sb.WriteString(key)
	return sb.String()
}
