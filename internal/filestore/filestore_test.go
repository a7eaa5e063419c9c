package filestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dshills/barcode/internal/engine/buffer"
	"github.com/dshills/barcode/internal/prompt"
)

// scriptedAsker answers prompts from a fixed list.
type scriptedAsker struct {
	answers []string
	errs    []error
	titles  []string
}

func (a *scriptedAsker) Ask(_ context.Context, title string) (string, error) {
	i := len(a.titles)
	a.titles = append(a.titles, title)
	if i < len(a.errs) && a.errs[i] != nil {
		return "", a.errs[i]
	}
	if i >= len(a.answers) {
		return "", prompt.ErrCancelled
	}
	return a.answers[i], nil
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", []string{""}},
		{"single no terminator", "abc", []string{"abc"}},
		{"single with terminator", "abc\n", []string{"abc"}},
		{"crlf", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"blank lines kept", "a\n\nb\n\n", []string{"a", "", "b", ""}},
		{"unicode", "日本\nçà\n", []string{"日本", "çà"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			buf, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got := buf.Lines(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
			if buf.Path() != path {
				t.Errorf("path = %q, want %q", buf.Path(), path)
			}
		})
	}
}

func TestLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	buf, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if buf.LineCount() != 1 || buf.Line(0) != "" {
		t.Errorf("expected one empty line, got %q", buf.Lines())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestLoadMissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "f.txt")

	buf, err := Load(path)
	if buf != nil {
		t.Error("expected no buffer on error")
	}
	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "open" || fe.Path != path {
		t.Errorf("err = %v, want open FileError", err)
	}
}

func TestSaveBoundPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	buf := buffer.NewBufferFromLines([]string{"hi", "", "bye"}, path)
	asker := &scriptedAsker{}

	got, err := Save(context.Background(), buf, asker)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got != path {
		t.Errorf("saved to %q, want %q", got, path)
	}
	if len(asker.titles) != 0 {
		t.Errorf("unexpected prompts: %q", asker.titles)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "hi\n\nbye\n" {
		t.Errorf("content = %q", data)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt.txt")
	lines := []string{"package main", "", "func main() {}"}

	if _, err := Save(context.Background(), buffer.NewBufferFromLines(lines, path), &scriptedAsker{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	buf, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(buf.Lines(), lines) {
		t.Errorf("round trip = %q, want %q", buf.Lines(), lines)
	}
}

func TestSavePromptsForName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "named.txt")
	buf := buffer.NewBufferFromLines([]string{"x"}, "")
	asker := &scriptedAsker{answers: []string{path}}

	if _, err := Save(context.Background(), buf, asker); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !reflect.DeepEqual(asker.titles, []string{FileNamePrompt}) {
		t.Errorf("prompts = %q", asker.titles)
	}
	if buf.Path() != path {
		t.Errorf("buffer path = %q, want %q", buf.Path(), path)
	}
}

func TestSaveParentDirectory(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		wantErr error
	}{
		{"lower y creates", "y", nil},
		{"upper Y creates", "Y", nil},
		{"n declines", "n", ErrDeclined},
		{"empty declines", "", ErrDeclined},
		{"yes declines", "yes", ErrDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "a", "b", "f.txt")
			buf := buffer.NewBufferFromLines([]string{"x"}, path)
			asker := &scriptedAsker{answers: []string{tt.answer}}

			_, err := Save(context.Background(), buf, asker)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(asker.titles, []string{CreateParentPrompt}) {
				t.Errorf("prompts = %q", asker.titles)
			}

			_, statErr := os.Stat(path)
			if tt.wantErr == nil && statErr != nil {
				t.Errorf("file not written: %v", statErr)
			}
			if tt.wantErr != nil && statErr == nil {
				t.Error("file written despite decline")
			}
		})
	}
}

func TestSaveNameErrors(t *testing.T) {
	tests := []struct {
		name    string
		asker   *scriptedAsker
		wantErr error
	}{
		{"empty name", &scriptedAsker{answers: []string{""}}, ErrNoFileName},
		{"cancelled", &scriptedAsker{errs: []error{prompt.ErrCancelled}}, prompt.ErrCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromLines([]string{"keep"}, "")
			rev := buf.Revision()

			_, err := Save(context.Background(), buf, tt.asker)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if buf.Path() != "" || buf.Revision() != rev {
				t.Error("buffer changed by failed save")
			}
		})
	}
}

func TestSaveAs(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")
	buf := buffer.NewBufferFromLines([]string{"x"}, oldPath)
	asker := &scriptedAsker{answers: []string{newPath}}

	got, err := SaveAs(context.Background(), buf, asker)
	if err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if got != newPath || buf.Path() != newPath {
		t.Errorf("path = %q / %q, want %q", got, buf.Path(), newPath)
	}
	if _, err := os.Stat(oldPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("old path should not be written")
	}
}

func TestSaveWriteError(t *testing.T) {
	dir := t.TempDir()
	buf := buffer.NewBufferFromLines([]string{"x"}, dir)

	_, err := Save(context.Background(), buf, &scriptedAsker{})
	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "save" {
		t.Errorf("err = %v, want save FileError", err)
	}
}

func TestEncode(t *testing.T) {
	if got := Encode([]string{"a", "b"}); got != "a\nb\n" {
		t.Errorf("Encode = %q", got)
	}
	if got := Encode([]string{""}); got != "\n" {
		t.Errorf("Encode empty line = %q", got)
	}
}
