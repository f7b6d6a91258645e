package layout

import (
	"path/filepath"
	"strings"
)

// TemplatePath identifies a template's origin on disk, decomposed into the
// parts the chain needs: the directory for resolving relative partials, the
// stem for default scope keys and output names, and the extension.
// Immutable once constructed.
type TemplatePath struct {
	// Full is the path as given.
	Full string
	// Dir is the directory portion.
	Dir string
	// Stem is the file name without extension.
	Stem string
	// Ext is the file extension including the leading dot.
	Ext string
}

// NewTemplatePath decomposes a path into a TemplatePath.
func NewTemplatePath(path string) TemplatePath {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return TemplatePath{
		Full: path,
		Dir:  filepath.Dir(path),
		Stem: strings.TrimSuffix(base, ext),
		Ext:  ext,
	}
}
