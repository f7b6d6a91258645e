// Package layout composes hierarchical mustache templates. An outer layout
// template wraps an inner template; the inner template's rendered output is
// substituted at the reserved {{>yield}} partial, and each wrapping
// template's variables stay visible to the templates it wraps under a named
// scope rather than leaking into their flat namespace.
package layout

import (
	"errors"

	"github.com/spf13/afero"

	"github.com/jacobconley/mustache-layout/internal/debug"
	"github.com/jacobconley/mustache-layout/internal/vars"
)

// Template is one node in a layout chain: its raw, unexpanded body, its own
// variable bindings, and a link to the template it is wrapped inside. The
// parent chain is finite and acyclic by construction: Wrap only ever creates
// a new node whose parent is the node Wrap was called on.
type Template struct {
	contents     string
	path         *TemplatePath // nil for literal templates
	loadedVars   map[string]interface{}
	declaredVars map[string]interface{}
	parent       *Template
	opts         Options
}

// Load reads a template from its path and constructs a chain root with no
// parent. Auxiliary bindings are loaded through the options' variable
// loader; a missing auxiliary file yields empty bindings, any other failure
// is fatal.
func Load(path string, opts *Options) (*Template, error) {
	resolved := opts.resolve()

	data, err := afero.ReadFile(resolved.Fs, path)
	if err != nil {
		return nil, &Error{
			Type:     ReadFailed,
			Message:  "failed to read template",
			Template: path,
			Cause:    err,
		}
	}

	t := &Template{
		contents:     string(data),
		path:         newPathRef(path),
		declaredVars: copyVars(resolved.Vars),
		opts:         resolved,
	}

	if t.loadedVars, err = loadAuxVars(resolved, path); err != nil {
		return nil, err
	}

	debug.Debug("[layout] loaded template %s (%d bytes, %d loaded var(s))",
		path, len(t.contents), len(t.loadedVars))
	return t, nil
}

// New constructs a literal (in-memory) template. Literal templates cannot
// resolve relative partials, cannot be reloaded, and need an explicit scope
// name before their bindings can be exposed to a chain.
func New(contents string, opts *Options) *Template {
	resolved := opts.resolve()
	return &Template{
		contents:     contents,
		declaredVars: copyVars(resolved.Vars),
		loadedVars:   map[string]interface{}{},
		opts:         resolved,
	}
}

// Wrap re-parents a clone of child under t, returning the new node. The
// clone copies the child's contents, path, bindings, and options; child
// itself is left untouched. Callers build chains outer-to-inner:
// outer.Wrap(inner) returns a node representing inner, now wrapped by outer.
func (t *Template) Wrap(child *Template) *Template {
	clone := &Template{
		contents:     child.contents,
		path:         child.path,
		loadedVars:   copyVars(child.loadedVars),
		declaredVars: copyVars(child.declaredVars),
		parent:       t,
		opts:         child.opts,
	}
	debug.Debug("[layout] wrapped %s inside %s", describe(clone), describe(t))
	return clone
}

// Reload re-reads the template body and its auxiliary bindings in place.
// Declared bindings are kept. Fails on literal templates.
func (t *Template) Reload() error {
	if t.path == nil {
		return newError(ReloadOnLiteral, "cannot reload a literal template", t, nil)
	}

	data, err := afero.ReadFile(t.opts.Fs, t.path.Full)
	if err != nil {
		return newError(ReadFailed, "failed to reload template", t, err)
	}
	loaded, err := loadAuxVars(t.opts, t.path.Full)
	if err != nil {
		return err
	}

	t.contents = string(data)
	t.loadedVars = loaded
	debug.Debug("[layout] reloaded template %s (%d bytes)", t.path.Full, len(data))
	return nil
}

// Contents returns the raw, unexpanded template body.
func (t *Template) Contents() string {
	return t.contents
}

// Path returns the template's origin, or nil for literal templates.
func (t *Template) Path() *TemplatePath {
	return t.path
}

// Parent returns the template this node is wrapped inside, or nil for a
// chain root.
func (t *Template) Parent() *Template {
	return t.parent
}

// Vars returns the template's own bindings: auxiliary-loaded values merged
// with declared values, declared winning on key collision.
func (t *Template) Vars() map[string]interface{} {
	return mergeVars(t.loadedVars, t.declaredVars)
}

// scopeKey returns the key this template's bindings are exposed under: the
// explicit scope name if set, otherwise the file name stem. A literal
// template with no explicit scope has no usable key.
func (t *Template) scopeKey() (string, error) {
	if t.opts.Scope != "" {
		return t.opts.Scope, nil
	}
	if t.path == nil {
		return "", newError(ScopeKeyMissing,
			"literal template needs an explicit scope name", t, nil)
	}
	return t.path.Stem, nil
}

// effectiveVars computes the binding set a render step expands against: the
// template's own merged bindings, extended with each ancestor's bindings
// under that ancestor's scope key. Own-level keys win over scope keys, and
// the nearest ancestor wins between duplicate scope keys.
func (t *Template) effectiveVars() (map[string]interface{}, error) {
	result := t.Vars()
	for p := t.parent; p != nil; p = p.parent {
		if p.opts.NoScope {
			continue
		}
		key, err := p.scopeKey()
		if err != nil {
			return nil, err
		}
		if _, exists := result[key]; exists {
			continue
		}
		result[key] = p.Vars()
	}
	return result, nil
}

// loadAuxVars loads auxiliary bindings for a template path, mapping loader
// failures onto layout error kinds.
func loadAuxVars(opts Options, path string) (map[string]interface{}, error) {
	if opts.VarLoader == nil {
		return map[string]interface{}{}, nil
	}

	loaded, err := opts.VarLoader.Load(opts.Fs, path)
	if err != nil {
		var varsErr *vars.VarsError
		if errors.As(err, &varsErr) && varsErr.Type == vars.VarsParseFailed {
			return nil, &Error{
				Type:     VarLoaderFailed,
				Message:  "auxiliary variable file failed to parse",
				Template: path,
				Cause:    err,
			}
		}
		return nil, &Error{
			Type:     ReadFailed,
			Message:  "failed to read auxiliary variable file",
			Template: path,
			Cause:    err,
		}
	}
	return loaded, nil
}

// mergeVars shallow-merges overlay onto base into a fresh map.
func mergeVars(base, overlay map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(base)+len(overlay))
	for k, v := range base {
		result[k] = v
	}
	for k, v := range overlay {
		result[k] = v
	}
	return result
}

// copyVars shallow-copies a bindings map, normalizing nil to empty.
func copyVars(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// newPathRef decomposes a path and returns a reference to it.
func newPathRef(path string) *TemplatePath {
	p := NewTemplatePath(path)
	return &p
}

// describe names a template for debug output.
func describe(t *Template) string {
	if t == nil {
		return "<nil>"
	}
	if t.path == nil {
		return "<literal>"
	}
	return t.path.Full
}
