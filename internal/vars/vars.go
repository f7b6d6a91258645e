// Package vars loads auxiliary variable bindings for templates from sidecar
// files. A loader is a pluggable pair of functions: one maps a template path
// to its sidecar path, the other parses the sidecar body into bindings.
// The default loader reads TOML sidecars: page.mustache -> page.toml.
package vars

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/jacobconley/mustache-layout/internal/debug"
)

// Loader resolves and parses auxiliary variable files for templates.
type Loader struct {
	// PathFor maps a template path to the sidecar file path to read.
	PathFor func(templatePath string) string
	// Parse parses the sidecar body into a bindings map.
	Parse func(data []byte) (map[string]interface{}, error)
}

// TOML returns a loader that reads a TOML sidecar next to the template,
// named after the template with its extension replaced by ".toml".
func TOML() *Loader {
	return &Loader{
		PathFor: func(templatePath string) string {
			ext := filepath.Ext(templatePath)
			return strings.TrimSuffix(templatePath, ext) + ".toml"
		},
		Parse: func(data []byte) (map[string]interface{}, error) {
			bindings := make(map[string]interface{})
			if err := toml.Unmarshal(data, &bindings); err != nil {
				return nil, err
			}
			return bindings, nil
		},
	}
}

// Load reads and parses the sidecar for templatePath on fs.
// A missing sidecar is not an error and yields empty bindings; any other
// read failure or a parse failure is fatal.
func (l *Loader) Load(fs afero.Fs, templatePath string) (map[string]interface{}, error) {
	sidecar := l.PathFor(templatePath)

	data, err := afero.ReadFile(fs, sidecar)
	if err != nil {
		if os.IsNotExist(err) {
			debug.Debug("[vars] no sidecar for %s (looked at %s)", templatePath, sidecar)
			return map[string]interface{}{}, nil
		}
		return nil, newVarsError(VarsReadFailed, "failed to read variable file", sidecar, err)
	}

	bindings, err := l.Parse(data)
	if err != nil {
		return nil, newVarsError(VarsParseFailed, "failed to parse variable file", sidecar, err)
	}

	debug.Debug("[vars] loaded %d binding(s) from %s", len(bindings), sidecar)
	return bindings, nil
}
