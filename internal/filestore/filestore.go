// Package filestore reads buffers from disk and writes them back, asking the
// user for a file name or for permission to create a missing directory when
// needed.
package filestore

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/barcode/internal/engine/buffer"
)

// Prompt titles.
const (
	FileNamePrompt     = "file name?"
	CreateParentPrompt = "Parent folder doesn't exist, Create? (y,N)"
)

var (
	// ErrNoFileName is returned when the user submits an empty file name.
	ErrNoFileName = errors.New("no file name provided")

	// ErrDeclined is returned when the user refuses to create the parent
	// directory.
	ErrDeclined = errors.New("parent directory does not exist")
)

// FileError describes a failed disk operation.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Asker collects a line of text from the user.
type Asker interface {
	Ask(ctx context.Context, title string) (string, error)
}

// Load reads path into a new buffer bound to it. A missing file is created
// empty. Lines are split on "\n" with a trailing "\r" removed, and a final
// terminator does not produce an extra empty line.
func Load(path string) (*buffer.Buffer, error) {
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}

	return buffer.NewBufferFromLines(lines, path), nil
}

// Save writes buf to its path, asking for one when the buffer has none.
// It returns the path written. On any error the buffer is left unchanged.
func Save(ctx context.Context, buf *buffer.Buffer, asker Asker) (string, error) {
	path := buf.Path()
	if path == "" {
		var err error
		if path, err = askFileName(ctx, asker); err != nil {
			return "", err
		}
	}
	return write(ctx, buf, asker, path)
}

// SaveAs asks for a new path and writes buf there.
func SaveAs(ctx context.Context, buf *buffer.Buffer, asker Asker) (string, error) {
	path, err := askFileName(ctx, asker)
	if err != nil {
		return "", err
	}
	return write(ctx, buf, asker, path)
}

func askFileName(ctx context.Context, asker Asker) (string, error) {
	name, err := asker.Ask(ctx, FileNamePrompt)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", ErrNoFileName
	}
	return name, nil
}

func write(ctx context.Context, buf *buffer.Buffer, asker Asker, path string) (string, error) {
	if err := ensureParent(ctx, asker, path); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(Encode(buf.Lines())), 0o644); err != nil {
		return "", &FileError{Op: "save", Path: path, Err: err}
	}

	buf.SetPath(path)
	return path, nil
}

func ensureParent(ctx context.Context, asker Asker, path string) error {
	dir := filepath.Dir(path)
	_, err := os.Stat(dir)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &FileError{Op: "stat", Path: dir, Err: err}
	}

	answer, err := asker.Ask(ctx, CreateParentPrompt)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		return ErrDeclined
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &FileError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// Encode joins lines, terminating each with "\n".
func Encode(lines []string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}
