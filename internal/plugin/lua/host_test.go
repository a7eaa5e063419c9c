package lua

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

// fakeEditor records calls from scripts.
type fakeEditor struct {
	lines    []string
	x, y     int
	inserted []string
	calls    []string
	messages []string
	err      error
}

func (e *fakeEditor) InsertText(text string) error {
	if e.err != nil {
		return e.err
	}
	e.inserted = append(e.inserted, text)
	return nil
}

func (e *fakeEditor) InsertNewline() error {
	e.calls = append(e.calls, "newline")
	return e.err
}

func (e *fakeEditor) Backspace() error {
	e.calls = append(e.calls, "backspace")
	return e.err
}

func (e *fakeEditor) DuplicatePrimary()  { e.calls = append(e.calls, "duplicate") }
func (e *fakeEditor) Collapse()          { e.calls = append(e.calls, "collapse") }
func (e *fakeEditor) Cursor() (int, int) { return e.x, e.y }
func (e *fakeEditor) LineCount() int     { return len(e.lines) }
func (e *fakeEditor) Message(text string) {
	e.messages = append(e.messages, text)
}

func (e *fakeEditor) Line(y int) (string, bool) {
	if y < 0 || y >= len(e.lines) {
		return "", false
	}
	return e.lines[y], true
}

func newTestHost(t *testing.T, ed *fakeEditor, opts ...StateOption) *Host {
	t.Helper()
	h := NewHost(ed, opts...)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestBindAndDispatch(t *testing.T) {
	ed := &fakeEditor{lines: []string{"a"}}
	h := newTestHost(t, ed)
	ctx := context.Background()

	err := h.LoadString(ctx, `
barcode.bind("Ctrl+T", function() barcode.insert("TODO: ") end)
barcode.bind("f5", function()
	barcode.newline()
	barcode.backspace()
	barcode.duplicate()
	barcode.collapse()
end)
`)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if got := h.Bindings(); !reflect.DeepEqual(got, []string{"ctrl+shift+t", "f5"}) {
		t.Errorf("Bindings = %q", got)
	}

	ok, err := h.Dispatch(ctx, "ctrl+shift+t")
	if !ok || err != nil {
		t.Fatalf("Dispatch = %v, %v", ok, err)
	}
	if !reflect.DeepEqual(ed.inserted, []string{"TODO: "}) {
		t.Errorf("inserted = %q", ed.inserted)
	}

	if _, err := h.Dispatch(ctx, "f5"); err != nil {
		t.Fatalf("Dispatch f5: %v", err)
	}
	if want := []string{"newline", "backspace", "duplicate", "collapse"}; !reflect.DeepEqual(ed.calls, want) {
		t.Errorf("calls = %q, want %q", ed.calls, want)
	}

	if ok, _ := h.Dispatch(ctx, "ctrl+q"); ok {
		t.Error("unbound chord should not dispatch")
	}
}

func TestUnbind(t *testing.T) {
	h := newTestHost(t, &fakeEditor{})
	ctx := context.Background()

	_ = h.LoadString(ctx, `barcode.bind("alt+x", function() end)`)
	if !h.HasBinding("alt+x") {
		t.Fatal("expected binding")
	}
	_ = h.LoadString(ctx, `barcode.unbind("Alt+x")`)
	if h.HasBinding("alt+x") {
		t.Error("binding should be removed")
	}
}

func TestQueries(t *testing.T) {
	ed := &fakeEditor{lines: []string{"first", "second"}, x: 3, y: 1}
	h := newTestHost(t, ed)

	err := h.LoadString(context.Background(), `
local x, y = barcode.cursor()
barcode.message(x .. "," .. y)
barcode.message(barcode.line(2))
barcode.message(tostring(barcode.line(3)))
barcode.message(tostring(barcode.line_count()))
print("p", 1)
`)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	want := []string{"4,2", "second", "nil", "2", "p\t1"}
	if !reflect.DeepEqual(ed.messages, want) {
		t.Errorf("messages = %q, want %q", ed.messages, want)
	}
}

func TestEditorErrorsRaise(t *testing.T) {
	ed := &fakeEditor{err: errors.New("buffer is read-only")}
	h := newTestHost(t, ed)

	err := h.LoadString(context.Background(), `barcode.insert("x")`)
	if err == nil || !strings.Contains(err.Error(), "read-only") {
		t.Errorf("err = %v, want read-only error", err)
	}
}

func TestBindValidation(t *testing.T) {
	h := newTestHost(t, &fakeEditor{})
	ctx := context.Background()

	tests := []string{
		`barcode.bind("", function() end)`,
		`barcode.bind("ctrl+x")`,
		`barcode.bind("ctrl+x", 5)`,
	}
	for _, code := range tests {
		if err := h.LoadString(ctx, code); err == nil {
			t.Errorf("%s: expected error", code)
		}
	}
	if len(h.Bindings()) != 0 {
		t.Errorf("Bindings = %q, want none", h.Bindings())
	}
}

func TestSandbox(t *testing.T) {
	h := newTestHost(t, &fakeEditor{})
	ctx := context.Background()

	for _, name := range []string{"os", "io", "require", "dofile", "loadstring", "load", "debug"} {
		code := `assert(` + name + ` == nil, "` + name + ` is available")`
		if err := h.LoadString(ctx, code); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	if err := h.LoadString(ctx, `assert(string.upper("a") == "A" and math.floor(1.5) == 1 and table.concat({"x"}) == "x")`); err != nil {
		t.Errorf("safe libraries missing: %v", err)
	}
}

func TestExecutionTimeout(t *testing.T) {
	h := newTestHost(t, &fakeEditor{}, WithExecutionTimeout(50*time.Millisecond))

	start := time.Now()
	err := h.LoadString(context.Background(), `while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Fatalf("err = %v, want ErrExecutionTimeout", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("timeout took too long")
	}

	// the state stays usable
	if err := h.LoadString(context.Background(), `x = 1`); err != nil {
		t.Errorf("state unusable after timeout: %v", err)
	}
}

func TestClosed(t *testing.T) {
	h := NewHost(&fakeEditor{})
	_ = h.Close()

	if err := h.LoadString(context.Background(), `x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("err = %v, want ErrStateClosed", err)
	}
}
