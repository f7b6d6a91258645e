package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jacobconley/mustache-layout/internal/debug"
)

// writeOutput writes content to path, creating parent directories as
// needed. The write goes through a temporary file and a rename so a failed
// build never leaves a truncated output behind.
func writeOutput(fs afero.Fs, path string, content []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if mode == 0 {
		mode = 0644
	}

	tempFile := path + ".tmp"
	if err := afero.WriteFile(fs, tempFile, content, mode); err != nil {
		return err
	}
	if err := fs.Rename(tempFile, path); err != nil {
		_ = fs.Remove(tempFile)
		return err
	}

	debug.Debug("[app] wrote %s (%d bytes)", path, len(content))
	return nil
}
