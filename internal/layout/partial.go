package layout

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jacobconley/mustache-layout/internal/debug"
)

// partialResolver supplies partial text to the mustache expansion of one
// render step. It implements mustache.PartialProvider.
//
// Resolution order for a requested name:
//  1. the reserved yield name: the already-rendered wrapped content
//  2. names inside a literal template: unresolvable (no base directory)
//  3. "./"-prefixed names: file relative to the requesting template's
//     directory, with the template extension appended
//  4. bare names: file relative to the process working directory, same
//     extension convention
type partialResolver struct {
	node    *Template
	wrapped *string

	// err records the first typed resolution failure so the render step can
	// surface it even if the expansion library rewraps the returned error.
	err *Error
}

// Get implements mustache.PartialProvider.
func (r *partialResolver) Get(name string) (string, error) {
	name = strings.TrimSpace(name)

	if name == YieldPartial {
		if r.wrapped == nil {
			return "", r.fail(newError(MissingYield,
				"template yields but nothing is wrapped inside it", r.node, nil))
		}
		debug.Debug("[layout] yield in %s resolved to %d byte(s)", describe(r.node), len(*r.wrapped))
		return *r.wrapped, nil
	}

	if r.node.path == nil {
		return "", r.fail(newPartialError(UnresolvablePartial,
			"literal template cannot resolve file partials", name, r.node, nil))
	}

	var partialPath string
	if strings.HasPrefix(name, relativeMarker) {
		partialPath = filepath.Join(r.node.path.Dir, name) + TemplateExt
	} else {
		partialPath = name + TemplateExt
	}

	data, err := afero.ReadFile(r.node.opts.Fs, partialPath)
	if err != nil {
		return "", r.fail(newPartialError(PartialReadFailed,
			"failed to read partial", name, r.node, err))
	}

	debug.Debug("[layout] partial %s in %s read from %s (%d bytes)",
		name, describe(r.node), partialPath, len(data))
	return string(data), nil
}

// fail records and returns a typed resolution failure.
func (r *partialResolver) fail(err *Error) error {
	if r.err == nil {
		r.err = err
	}
	return err
}
