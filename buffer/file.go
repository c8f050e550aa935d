package buffer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

var (
	// ErrNoPath is returned by Save when the buffer is not bound to a file.
	ErrNoPath = errors.New("no file name")
	// ErrInvalidEncoding is returned by Load for content that is not UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
)

// FileError records a failed load or save and the path involved.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error { return e.Err }

// FileInfo identifies the file a buffer is bound to. The zero value is an
// unsaved buffer with no path.
type FileInfo struct {
	path string
}

func (f FileInfo) Path() string { return f.path }

func (f FileInfo) HasPath() bool { return f.path != "" }

// String returns the file's base name, or "[No Name]" when unbound.
func (f FileInfo) String() string {
	if f.path == "" {
		return "[No Name]"
	}
	return filepath.Base(f.path)
}

// Load reads the whole file at path into a new buffer bound to it.
// The returned buffer is not dirty.
func Load(path string, opt Options) (*Buffer, error) {
	opt = opt.withDefaults()
	data, err := afero.ReadFile(opt.Fs, path)
	if err != nil {
		return nil, &FileError{Op: "load", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &FileError{Op: "load", Path: path, Err: ErrInvalidEncoding}
	}
	return &Buffer{
		lines: splitLines(string(data)),
		file:  FileInfo{path: path},
		opt:   opt,
	}, nil
}

// Save writes the buffer to its bound file and clears the dirty flag.
func (b *Buffer) Save() error {
	if !b.file.HasPath() {
		return &FileError{Op: "save", Err: ErrNoPath}
	}
	if err := b.writeTo(b.file.path); err != nil {
		return err
	}
	b.dirty = false
	return nil
}

// SaveAs writes the buffer to path and, on success, binds the buffer to it.
func (b *Buffer) SaveAs(path string) error {
	if path == "" {
		return &FileError{Op: "save", Err: ErrNoPath}
	}
	if err := b.writeTo(path); err != nil {
		return err
	}
	b.file = FileInfo{path: path}
	b.dirty = false
	return nil
}

func (b *Buffer) writeTo(path string) error {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(line.String())
		sb.WriteByte('\n')
	}

	perm := os.FileMode(0o644)
	if st, err := b.opt.Fs.Stat(path); err == nil {
		perm = st.Mode().Perm()
	}
	if err := afero.WriteFile(b.opt.Fs, path, []byte(sb.String()), perm); err != nil {
		return &FileError{Op: "save", Path: path, Err: fmt.Errorf("writing: %w", err)}
	}
	return nil
}
