package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Entry represents a single file flowing through a build pipeline.
// An entry is in exactly one of three states:
//   - placeholder: Contents and Stream are both nil (the entry marks a path
//     with no materialized body and must be passed through untouched)
//   - buffer: Contents holds the materialized file body
//   - stream: Stream is a live reader; such entries are not renderable
type Entry struct {
	// Path is the logical path of the entry. Renderers rewrite it in place.
	Path string
	// Contents is the materialized file body (nil for placeholders/streams).
	Contents []byte
	// Stream is a non-materialized body. Set only by stream-based sources.
	Stream io.Reader
	// Mode is the file permission mode, if known.
	Mode os.FileMode
}

// NewBuffer creates a buffer-backed entry.
func NewBuffer(path string, contents []byte) *Entry {
	return &Entry{Path: path, Contents: contents, Mode: 0644}
}

// IsNull reports whether the entry is a placeholder with no body.
func (e *Entry) IsNull() bool {
	return e.Contents == nil && e.Stream == nil
}

// IsBuffer reports whether the entry has a materialized byte body.
func (e *Entry) IsBuffer() bool {
	return e.Contents != nil
}

// IsStream reports whether the entry's body is a live stream.
func (e *Entry) IsStream() bool {
	return e.Stream != nil
}

// Base returns the file name including extension.
func (e *Entry) Base() string {
	return filepath.Base(e.Path)
}

// Ext returns the file extension including the leading dot.
func (e *Entry) Ext() string {
	return filepath.Ext(e.Path)
}

// Stem returns the file name without extension.
func (e *Entry) Stem() string {
	base := e.Base()
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Dir returns the directory portion of the entry path.
func (e *Entry) Dir() string {
	return filepath.Dir(e.Path)
}

// Rename rewrites the entry path in place, keeping the directory but
// replacing the file name stem and extension. An empty stem keeps the
// current one.
func (e *Entry) Rename(stem, ext string) {
	if stem == "" {
		stem = e.Stem()
	}
	e.Path = filepath.Join(e.Dir(), stem+ext)
}
