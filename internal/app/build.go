package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/jacobconley/mustache-layout/internal/config"
	"github.com/jacobconley/mustache-layout/internal/debug"
	"github.com/jacobconley/mustache-layout/internal/layout"
	"github.com/jacobconley/mustache-layout/internal/pipeline"
	"github.com/jacobconley/mustache-layout/internal/vars"
)

// BuildOptions configures a build run.
type BuildOptions struct {
	// ConfigPath is the project configuration file. Empty means the
	// default file name in the working directory.
	ConfigPath string
	// Source overrides the configured source directory.
	Source string
	// Dest overrides the configured destination directory.
	Dest string
	// Fs is the filesystem to build against. Nil means the OS filesystem.
	Fs afero.Fs
}

// BuildResult contains build statistics.
type BuildResult struct {
	// PagesRendered is the number of pages rendered through the chain.
	PagesRendered int
	// FilesCopied is the number of non-template files copied through.
	FilesCopied int
	// Skipped is the number of entries skipped (partial sources, sidecars).
	Skipped int
	// Outputs contains the destination paths of all written files.
	Outputs []string
}

// Build renders every page under the configured source directory through
// the configured layout chain and writes the results to the destination
// directory. Non-template files are copied through unchanged; partial
// sources (name prefixed with "_") and variable sidecars produce no output.
// A failed entry does not abort the run; all entry failures are aggregated
// into the returned error.
func Build(opts BuildOptions) (*BuildResult, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		return nil, err
	}

	chain, err := buildChain(fs, cfg)
	if err != nil {
		return nil, err
	}

	renderer := chain.Done(&layout.RenderOptions{
		OutputName: cfg.Build.OutputName,
		OutputExt:  cfg.Build.OutputExt,
		Fs:         fs,
	})

	debug.Debug("[app] building %s -> %s through %d layout(s)",
		cfg.Build.Source, cfg.Build.Dest, len(cfg.Layouts))

	result := &BuildResult{}
	var buildErrs *multierror.Error
	failed := 0

	walkErr := afero.Walk(fs, cfg.Build.Source, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		if err := buildEntry(fs, renderer, cfg, path, info, result); err != nil {
			buildErrs = multierror.Append(buildErrs, err)
			failed++
		}
		return nil
	})
	if walkErr != nil {
		return nil, NewAppError(BuildFailed, "failed to walk source directory", walkErr)
	}

	debug.Debug("[app] build complete: rendered=%d, copied=%d, skipped=%d, errors=%d",
		result.PagesRendered, result.FilesCopied, result.Skipped, failed)
	return result, buildErrs.ErrorOrNil()
}

// buildEntry renders or copies a single source file.
func buildEntry(fs afero.Fs, renderer *layout.Renderer, cfg *config.Config,
	path string, info os.FileInfo, result *BuildResult) error {

	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		return NewAppError(BuildFailed, "failed to read source file "+path, err)
	}

	entry := pipeline.NewBuffer(path, contents)
	entry.Mode = info.Mode()

	rendered, err := renderer.Render(entry)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(cfg.Build.Source, entry.Path)
	if err != nil {
		return NewAppError(BuildFailed, "failed to relativize "+entry.Path, err)
	}
	dest := filepath.Join(cfg.Build.Dest, rel)

	switch {
	case rendered:
		if err := writeOutput(fs, dest, entry.Contents, entry.Mode); err != nil {
			return NewAppError(BuildFailed, "failed to write "+dest, err)
		}
		result.PagesRendered++
		result.Outputs = append(result.Outputs, dest)

	case entry.Ext() == layout.TemplateExt || isSidecar(entry.Path):
		// Partial sources and variable sidecars stay out of the output.
		debug.Debug("[app] skipping %s", entry.Path)
		result.Skipped++

	default:
		if err := writeOutput(fs, dest, entry.Contents, entry.Mode); err != nil {
			return NewAppError(BuildFailed, "failed to copy "+dest, err)
		}
		result.FilesCopied++
		result.Outputs = append(result.Outputs, dest)
	}
	return nil
}

// loadConfig loads and validates the project configuration, applying
// command-line overrides.
func loadConfig(fs afero.Fs, opts BuildOptions) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultConfigFile
	}

	loader := config.NewLoader(fs)
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, NewAppError(ConfigLoadFailed, "failed to load project configuration", err)
	}

	if opts.Source != "" {
		cfg.Build.Source = opts.Source
	}
	if opts.Dest != "" {
		cfg.Build.Dest = opts.Dest
	}

	if err := loader.Validate(cfg); err != nil {
		return nil, NewAppError(ConfigLoadFailed, "invalid project configuration", err)
	}
	return cfg, nil
}

// buildChain constructs the layout chain from configuration, outermost
// first. Site-wide default bindings are declared on the outermost layout.
func buildChain(fs afero.Fs, cfg *config.Config) (*layout.Template, error) {
	var chain *layout.Template

	for i, link := range cfg.Layouts {
		declared := link.Vars
		if i == 0 && len(cfg.Vars) > 0 {
			declared = make(map[string]interface{}, len(cfg.Vars)+len(link.Vars))
			for k, v := range cfg.Vars {
				declared[k] = v
			}
			for k, v := range link.Vars {
				declared[k] = v
			}
		}

		tpl, err := layout.Load(link.Path, &layout.Options{
			Scope:     link.Scope,
			NoScope:   link.NoScope,
			Vars:      declared,
			VarLoader: vars.TOML(),
			Fs:        fs,
		})
		if err != nil {
			return nil, NewAppError(ChainBuildFailed, "failed to load layout "+link.Path, err)
		}

		if chain == nil {
			chain = tpl
		} else {
			chain = chain.Wrap(tpl)
		}
	}
	return chain, nil
}

// isSidecar reports whether a source path is a TOML variable sidecar.
func isSidecar(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
