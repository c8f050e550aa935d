package buffer

import (
	"strings"

	"github.com/spf13/afero"
)

// Options configures a Buffer.
type Options struct {
	// Fs is the filesystem used by Load, Save and SaveAs.
	// default: the OS filesystem
	Fs afero.Fs
}

func (o Options) withDefaults() Options {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	return o
}

// Buffer is the document: an ordered sequence of lines, the file it is bound
// to, and whether it has unsaved changes.
type Buffer struct {
	lines []Line
	file  FileInfo
	dirty bool

	opt Options
}

// New returns an unbound buffer holding text. Empty text yields a document
// with no lines.
func New(text string, opt Options) *Buffer {
	return &Buffer{
		lines: splitLines(text),
		opt:   opt.withDefaults(),
	}
}

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) IsEmpty() bool { return len(b.lines) == 0 }

// Line returns a copy of the line at index.
func (b *Buffer) Line(index int) (Line, bool) {
	if index < 0 || index >= len(b.lines) {
		return Line{}, false
	}
	return b.lines[index], true
}

// GraphemeCount returns the grapheme count of the line at index, or 0 when
// index does not address a line.
func (b *Buffer) GraphemeCount(index int) int {
	if index < 0 || index >= len(b.lines) {
		return 0
	}
	return b.lines[index].GraphemeCount()
}

// Text returns the document joined with '\n' and no trailing newline.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.String())
	}
	return sb.String()
}

func (b *Buffer) File() FileInfo { return b.file }

// Dirty reports whether the buffer has changes not yet written to its file.
func (b *Buffer) Dirty() bool { return b.dirty }

// splitLines breaks text into lines on '\n', dropping one '\r' before each
// line break. A trailing newline does not start another line.
func splitLines(text string) []Line {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	lines := make([]Line, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, NewLine(strings.TrimSuffix(p, "\r")))
	}
	return lines
}
