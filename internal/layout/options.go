package layout

import (
	"github.com/spf13/afero"

	"github.com/jacobconley/mustache-layout/internal/vars"
)

// Conventions of the chain: template and output extensions, the reserved
// yield partial, the partial-source name prefix, and the explicit
// relative-partial marker.
const (
	// TemplateExt is the file extension of template sources.
	TemplateExt = ".mustache"
	// DefaultOutputExt is the default extension of rendered outputs.
	DefaultOutputExt = ".htm"
	// YieldPartial is the reserved partial name resolved to wrapped content.
	YieldPartial = "yield"
	// PartialPrefix marks entries that are partial sources, not pages.
	PartialPrefix = "_"

	relativeMarker = "./"
)

// Options configure one chain link. Zero values inherit the defaults.
type Options struct {
	// Scope is the key this template's bindings are exposed under to the
	// rest of the chain. Empty means the template's file name stem.
	Scope string
	// NoScope disables exposing this template's bindings entirely.
	NoScope bool
	// Vars are this link's declared bindings. They win over bindings loaded
	// from the auxiliary variable file on key collision.
	Vars map[string]interface{}
	// VarLoader loads auxiliary bindings for the template. Nil disables
	// auxiliary loading.
	VarLoader *vars.Loader
	// Fs is the filesystem templates and partials are read from.
	Fs afero.Fs
}

// DefaultOptions returns the global chain link defaults: TOML sidecar
// variable loading on the OS filesystem.
func DefaultOptions() *Options {
	return &Options{
		VarLoader: vars.TOML(),
		Fs:        afero.NewOsFs(),
	}
}

// resolve fills unset fields from the defaults. A nil receiver means the
// caller wants the global defaults wholesale; an explicit empty Options
// keeps VarLoader nil, which disables auxiliary loading.
func (o *Options) resolve() Options {
	if o == nil {
		o = DefaultOptions()
	}
	resolved := *o
	if resolved.Fs == nil {
		resolved.Fs = afero.NewOsFs()
	}
	return resolved
}

// RenderOptions configure the per-entry render performed by a Renderer.
// Zero values inherit from the chain the renderer was built on.
type RenderOptions struct {
	// OutputName overrides the output file name stem. Empty keeps the
	// entry's own stem.
	OutputName string
	// OutputExt is the extension of rendered outputs. Empty means
	// DefaultOutputExt.
	OutputExt string
	// Vars are declared bindings for every leaf entry. They win over the
	// leaf's sidecar bindings on key collision.
	Vars map[string]interface{}
	// VarLoader overrides the chain's auxiliary loader for leaf entries.
	VarLoader *vars.Loader
	// Fs overrides the chain's filesystem for leaf entries.
	Fs afero.Fs
}
