package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jacobconley/mustache-layout/internal/config"
	"github.com/jacobconley/mustache-layout/internal/debug"
)

// ScaffoldOptions configures project scaffolding.
type ScaffoldOptions struct {
	// SiteName is the human-readable site name, declared as a site-wide
	// binding.
	SiteName string
	// Source is the pages directory.
	Source string
	// Dest is the output directory.
	Dest string
	// LayoutName is the stem of the starter layout (also its scope key).
	LayoutName string
	// Force overwrites an existing configuration file.
	Force bool
	// Fs is the filesystem to scaffold on. Nil means the OS filesystem.
	Fs afero.Fs
}

// Scaffold writes a starter project: the configuration file, a layout that
// yields to its pages, and an example page with a TOML variable sidecar.
// Returns the paths written.
func Scaffold(opts ScaffoldOptions) ([]string, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if opts.Source == "" {
		opts.Source = "pages"
	}
	if opts.Dest == "" {
		opts.Dest = "dist"
	}
	if opts.LayoutName == "" {
		opts.LayoutName = "site"
	}

	if !opts.Force {
		if exists, _ := afero.Exists(fs, config.DefaultConfigFile); exists {
			return nil, NewAppError(ScaffoldFailed,
				config.DefaultConfigFile+" already exists (use --force to overwrite)", nil)
		}
	}

	layoutPath := filepath.Join("layouts", opts.LayoutName+".mustache")
	files := map[string]string{
		config.DefaultConfigFile: fmt.Sprintf(
			"[build]\nsource = %q\ndest = %q\n\n[vars]\nsite_name = %q\n\n[[layout]]\npath = %q\n",
			opts.Source, opts.Dest, opts.SiteName, filepath.ToSlash(layoutPath)),
		layoutPath: "<!DOCTYPE html>\n<html>\n<head><title>{{site_name}}</title></head>\n" +
			"<body>\n{{>yield}}\n</body>\n</html>\n",
		filepath.Join(opts.Source, "index.mustache"): "<h1>{{title}}</h1>\n<p>Welcome to {{" +
			opts.LayoutName + ".site_name}}.</p>\n",
		filepath.Join(opts.Source, "index.toml"): "title = \"Home\"\n",
	}

	written := make([]string, 0, len(files))
	for path, contents := range files {
		if err := writeOutput(fs, path, []byte(contents), 0644); err != nil {
			return written, NewAppError(ScaffoldFailed, "failed to write "+path, err)
		}
		written = append(written, path)
	}

	debug.Debug("[app] scaffolded project: %d file(s)", len(written))
	return written, nil
}
