package config

// DefaultConfigFile is the project configuration file name.
const DefaultConfigFile = "mlayout.toml"

// Config represents a project's build configuration.
type Config struct {
	// Build holds source/destination settings for the build workflow.
	Build BuildConfig `toml:"build"`
	// Vars are site-wide default bindings, declared on the outermost layout.
	Vars map[string]interface{} `toml:"vars"`
	// Layouts declares the layout chain, outermost first.
	Layouts []LayoutConfig `toml:"layout"`
}

// BuildConfig represents build workflow settings.
type BuildConfig struct {
	// Source is the directory pages are read from.
	Source string `toml:"source"`
	// Dest is the directory rendered output is written to.
	Dest string `toml:"dest"`
	// OutputName overrides the output file name stem (empty keeps each
	// page's own name).
	OutputName string `toml:"output_name"`
	// OutputExt is the extension of rendered outputs.
	OutputExt string `toml:"output_ext"`
}

// LayoutConfig represents one link of the layout chain.
type LayoutConfig struct {
	// Path is the layout template path, relative to the project root.
	Path string `toml:"path"`
	// Scope is the key this layout's bindings are exposed under. Empty
	// means the template's file name stem.
	Scope string `toml:"scope"`
	// NoScope disables exposing this layout's bindings entirely.
	NoScope bool `toml:"no_scope"`
	// Vars are declared bindings for this layout. They win over bindings
	// loaded from the layout's TOML sidecar.
	Vars map[string]interface{} `toml:"vars"`
}
