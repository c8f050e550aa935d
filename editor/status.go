package editor

import "fmt"

// DocumentStatus summarises the document for the status bar.
type DocumentStatus struct {
	FileName    string
	LineCount   int
	CurrentLine int
	Modified    bool
}

// LineCountString returns e.g. "12 lines".
func (s DocumentStatus) LineCountString() string {
	return fmt.Sprintf("%d lines", s.LineCount)
}

// ModifiedIndicator returns "(modified)" for dirty documents and "" otherwise.
func (s DocumentStatus) ModifiedIndicator() string {
	if s.Modified {
		return "(modified)"
	}
	return ""
}

// PositionIndicator returns the 1-based cursor line over the line count.
func (s DocumentStatus) PositionIndicator() string {
	return fmt.Sprintf("%d/%d", s.CurrentLine+1, s.LineCount)
}

// Status returns the current document status.
func (v *Viewport) Status() DocumentStatus {
	return DocumentStatus{
		FileName:    v.buf.File().String(),
		LineCount:   v.buf.LineCount(),
		CurrentLine: v.loc.Line,
		Modified:    v.buf.Dirty(),
	}
}
