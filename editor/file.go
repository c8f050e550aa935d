package editor

import (
	"github.com/iw2rmb/hew/buffer"
	"github.com/iw2rmb/hew/internal/log"
)

// Load replaces the document with the file at path and resets the cursor
// and scroll offset. On failure the current document is kept.
func (v *Viewport) Load(path string) error {
	buf, err := buffer.Load(path, v.opt)
	if err != nil {
		log.ErrorErr(log.CatFile, "load failed", err, "path", path)
		return err
	}
	v.buf = buf
	v.loc = buffer.Location{}
	v.scroll = Position{}
	v.search = nil
	log.Info(log.CatFile, "loaded", "path", path, "lines", buf.LineCount())
	return nil
}

// Save writes the document to its bound file.
func (v *Viewport) Save() error {
	if err := v.buf.Save(); err != nil {
		log.ErrorErr(log.CatFile, "save failed", err, "path", v.buf.File().Path())
		return err
	}
	log.Info(log.CatFile, "saved", "path", v.buf.File().Path())
	return nil
}

// SaveAs writes the document to path and binds it there.
func (v *Viewport) SaveAs(path string) error {
	if err := v.buf.SaveAs(path); err != nil {
		log.ErrorErr(log.CatFile, "save as failed", err, "path", path)
		return err
	}
	log.Info(log.CatFile, "saved", "path", path)
	return nil
}

// IsFileLoaded reports whether the document is bound to a file.
func (v *Viewport) IsFileLoaded() bool { return v.buf.File().HasPath() }
