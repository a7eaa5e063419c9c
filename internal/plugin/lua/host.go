package lua

import (
	"context"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/barcode/internal/renderer/backend"
)

// ModuleName is the global table scripts use to reach the editor.
const ModuleName = "barcode"

// Editor is the editing surface exposed to scripts.
type Editor interface {
	InsertText(text string) error
	InsertNewline() error
	Backspace() error
	DuplicatePrimary()
	Collapse()

	// Cursor returns the primary cursor's column and line, 0-based.
	Cursor() (x, y int)

	// Line returns the text of 0-based line y.
	Line(y int) (string, bool)
	LineCount() int

	// Message shows text to the user.
	Message(text string)
}

// Host runs user scripts against an Editor and keeps their key bindings.
type Host struct {
	state  *State
	editor Editor

	mu       sync.RWMutex
	bindings map[string]*lua.LFunction
}

// NewHost creates a host whose scripts drive editor. print output is shown
// as a message.
func NewHost(editor Editor, opts ...StateOption) *Host {
	h := &Host{
		editor:   editor,
		bindings: make(map[string]*lua.LFunction),
	}

	opts = append([]StateOption{WithPrint(editor.Message)}, opts...)
	h.state = NewState(opts...)
	h.state.RegisterModule(ModuleName, h.api())
	return h
}

// LoadFile runs a script file, typically the init script.
func (h *Host) LoadFile(ctx context.Context, path string) error {
	return h.state.DoFile(ctx, path)
}

// LoadString runs a chunk of Lua code.
func (h *Host) LoadString(ctx context.Context, code string) error {
	return h.state.DoString(ctx, code)
}

// HasBinding reports whether chord is bound by a script.
func (h *Host) HasBinding(chord string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.bindings[chord]
	return ok
}

// Bindings returns the bound chords, sorted.
func (h *Host) Bindings() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	chords := make([]string, 0, len(h.bindings))
	for c := range h.bindings {
		chords = append(chords, c)
	}
	sort.Strings(chords)
	return chords
}

// Dispatch runs the function bound to chord. It reports whether a binding
// existed; the error is the script's.
func (h *Host) Dispatch(ctx context.Context, chord string) (bool, error) {
	h.mu.RLock()
	fn, ok := h.bindings[chord]
	h.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, h.state.CallFunction(ctx, fn)
}

// Close releases the Lua state.
func (h *Host) Close() error {
	return h.state.Close()
}

func (h *Host) api() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"bind":       h.luaBind,
		"unbind":     h.luaUnbind,
		"insert":     h.luaInsert,
		"newline":    h.wrapErr(h.editor.InsertNewline),
		"backspace":  h.wrapErr(h.editor.Backspace),
		"duplicate":  h.wrap(h.editor.DuplicatePrimary),
		"collapse":   h.wrap(h.editor.Collapse),
		"cursor":     h.luaCursor,
		"line":       h.luaLine,
		"line_count": h.luaLineCount,
		"message":    h.luaMessage,
	}
}

// barcode.bind(chord, fn)
func (h *Host) luaBind(L *lua.LState) int {
	chord := backend.NormalizeChord(L.CheckString(1))
	fn := L.CheckFunction(2)
	if chord == "" {
		L.ArgError(1, ErrInvalidChord.Error())
		return 0
	}

	h.mu.Lock()
	h.bindings[chord] = fn
	h.mu.Unlock()
	return 0
}

// barcode.unbind(chord)
func (h *Host) luaUnbind(L *lua.LState) int {
	chord := backend.NormalizeChord(L.CheckString(1))

	h.mu.Lock()
	delete(h.bindings, chord)
	h.mu.Unlock()
	return 0
}

// barcode.insert(text)
func (h *Host) luaInsert(L *lua.LState) int {
	if err := h.editor.InsertText(L.CheckString(1)); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

// barcode.cursor() -> column, line, both 1-based
func (h *Host) luaCursor(L *lua.LState) int {
	x, y := h.editor.Cursor()
	L.Push(lua.LNumber(x + 1))
	L.Push(lua.LNumber(y + 1))
	return 2
}

// barcode.line(n) -> text of 1-based line n, or nil
func (h *Host) luaLine(L *lua.LState) int {
	text, ok := h.editor.Line(L.CheckInt(1) - 1)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(text))
	return 1
}

func (h *Host) luaLineCount(L *lua.LState) int {
	L.Push(lua.LNumber(h.editor.LineCount()))
	return 1
}

func (h *Host) luaMessage(L *lua.LState) int {
	h.editor.Message(L.CheckString(1))
	return 0
}

func (h *Host) wrap(fn func()) lua.LGFunction {
	return func(*lua.LState) int {
		fn()
		return 0
	}
}

func (h *Host) wrapErr(fn func() error) lua.LGFunction {
	return func(L *lua.LState) int {
		if err := fn(); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}
}
