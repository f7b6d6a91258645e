package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/jacobconley/mustache-layout/internal/debug"
)

// Loader defines the interface for loading project configuration.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(cfg *Config) error
}

// FileLoader implements Loader against a filesystem.
type FileLoader struct {
	fs afero.Fs
}

// NewLoader creates a FileLoader. A nil fs means the OS filesystem.
func NewLoader(fs afero.Fs) Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileLoader{fs: fs}
}

// Load loads configuration from the specified file path and fills missing
// fields from the defaults.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newConfigError(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, newConfigError(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, newConfigError(ConfigInvalid, path, "invalid TOML syntax", err)
	}

	mergeConfig(&cfg, DefaultConfig())

	debug.Debug("[config] loaded %s: %d layout link(s), source=%s, dest=%s",
		path, len(cfg.Layouts), cfg.Build.Source, cfg.Build.Dest)
	return &cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(cfg *Config) error {
	if cfg.Build.Source == "" {
		return newFieldError(DefaultConfigFile, "build.source", "source directory cannot be empty")
	}
	if cfg.Build.Dest == "" {
		return newFieldError(DefaultConfigFile, "build.dest", "destination directory cannot be empty")
	}
	if cfg.Build.Dest == cfg.Build.Source {
		return newFieldError(DefaultConfigFile, "build.dest", "destination must differ from source")
	}
	if cfg.Build.OutputExt != "" && !strings.HasPrefix(cfg.Build.OutputExt, ".") {
		return newFieldError(DefaultConfigFile, "build.output_ext", "extension must start with a dot")
	}
	if len(cfg.Layouts) == 0 {
		return newFieldError(DefaultConfigFile, "layout", "at least one layout link is required")
	}
	for i, link := range cfg.Layouts {
		if link.Path == "" {
			return newFieldError(DefaultConfigFile,
				fmt.Sprintf("layout[%d].path", i), "layout path cannot be empty")
		}
	}
	return nil
}
