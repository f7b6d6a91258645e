package layout

import (
	"errors"
	"strings"

	"github.com/cbroglie/mustache"

	"github.com/jacobconley/mustache-layout/internal/debug"
	"github.com/jacobconley/mustache-layout/internal/pipeline"
)

// Renderer drives the inside-out render of a chain for incoming pipeline
// entries. It is bound to the innermost pre-built chain node; a fresh leaf
// is instantiated per entry and discarded afterwards.
type Renderer struct {
	chain *Template
	opts  RenderOptions
}

// Done returns a Renderer bound to this chain, merging the chain's options
// with the given per-render overrides.
func (t *Template) Done(opts *RenderOptions) *Renderer {
	resolved := RenderOptions{}
	if opts != nil {
		resolved = *opts
	}
	if resolved.OutputExt == "" {
		resolved.OutputExt = DefaultOutputExt
	}
	if resolved.VarLoader == nil {
		resolved.VarLoader = t.opts.VarLoader
	}
	if resolved.Fs == nil {
		resolved.Fs = t.opts.Fs
	}
	return &Renderer{chain: t, opts: resolved}
}

// Render renders one pipeline entry through the chain, rewriting the
// entry's path and contents in place. It returns false, leaving the entry
// untouched, when the entry is not renderable: a placeholder, a partial
// source (stem prefixed with "_"), or a non-template extension. Streamed
// bodies are rejected with UnsupportedInput.
//
// Rendering is inside-out: the leaf expands first against its own bindings,
// then each ancestor expands with the previous step's output as its yield
// content. Yield therefore always receives already-rendered text, never raw
// template source.
func (r *Renderer) Render(entry *pipeline.Entry) (bool, error) {
	if entry.IsNull() {
		debug.Debug("[layout] passing through placeholder entry %s", entry.Path)
		return false, nil
	}
	if strings.HasPrefix(entry.Stem(), PartialPrefix) {
		debug.Debug("[layout] skipping partial source %s", entry.Path)
		return false, nil
	}
	if entry.Ext() != TemplateExt {
		debug.Debug("[layout] skipping non-template entry %s", entry.Path)
		return false, nil
	}
	if entry.IsStream() {
		return false, &Error{
			Type:     UnsupportedInput,
			Message:  "streamed entries are not supported",
			Template: entry.Path,
		}
	}

	leaf, err := r.newLeaf(entry)
	if err != nil {
		return false, wrapError(err, entry.Path)
	}

	output, err := renderStep(leaf, nil, nil)
	if err != nil {
		return false, wrapError(err, entry.Path)
	}

	child := leaf
	for t := leaf.parent; t != nil; t = t.parent {
		output, err = renderStep(t, &output, child)
		if err != nil {
			return false, wrapError(err, entry.Path)
		}
		child = t
	}

	entry.Rename(r.opts.OutputName, r.opts.OutputExt)
	entry.Contents = []byte(output)
	debug.Debug("[layout] rendered %s (%d bytes)", entry.Path, len(output))
	return true, nil
}

// newLeaf instantiates the innermost chain node from a pipeline entry.
func (r *Renderer) newLeaf(entry *pipeline.Entry) (*Template, error) {
	opts := Options{
		Vars:      r.opts.Vars,
		VarLoader: r.opts.VarLoader,
		Fs:        r.opts.Fs,
	}
	resolved := opts.resolve()

	leaf := &Template{
		contents:     string(entry.Contents),
		path:         newPathRef(entry.Path),
		declaredVars: copyVars(resolved.Vars),
		parent:       r.chain,
		opts:         resolved,
	}

	var err error
	if leaf.loadedVars, err = loadAuxVars(resolved, entry.Path); err != nil {
		return nil, err
	}
	return leaf, nil
}

// renderStep expands one chain node. wrapped is the already-rendered output
// of the step inside this one (nil at the leaf); child is the node that
// produced it. Besides the node's effective bindings, the step exposes the
// child's bindings under the child's scope key, with the node's own
// bindings backfilling keys the child does not set. That gives a layout
// read access to the level it wraps, mirroring the scoped visibility
// descendants get of their ancestors.
func renderStep(node *Template, wrapped *string, child *Template) (string, error) {
	bindings, err := node.effectiveVars()
	if err != nil {
		return "", err
	}

	if child != nil && !child.opts.NoScope {
		key, err := child.scopeKey()
		if err != nil {
			return "", err
		}
		if _, exists := bindings[key]; !exists {
			bindings[key] = mergeVars(node.Vars(), child.Vars())
		}
	}

	resolver := &partialResolver{node: node, wrapped: wrapped}
	output, err := mustache.RenderPartials(node.contents, resolver, bindings)
	if err != nil {
		// The expansion library may rewrap resolver failures; prefer the
		// typed error the resolver recorded.
		if resolver.err != nil {
			return "", resolver.err
		}
		return "", newError(RenderFailed, "template expansion failed", node, err)
	}
	return output, nil
}

// wrapError tags unexpected error types with the entry path so everything a
// render surfaces is a layout error.
func wrapError(err error, entryPath string) error {
	var layoutErr *Error
	if errors.As(err, &layoutErr) {
		return err
	}
	return &Error{
		Type:     RenderFailed,
		Message:  "render failed",
		Template: entryPath,
		Cause:    err,
	}
}
