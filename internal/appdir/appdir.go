// Package appdir locates the files kept beside the tasks executable.
package appdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// StorageFile is the name of the task storage file.
	StorageFile = "tasks.json"

	// ConfigFile is the name of the optional config file.
	ConfigFile = "tasks.toml"
)

// Executable returns the path of the running binary. Tests replace it.
var Executable = os.Executable

// Dir returns the absolute directory holding the running executable,
// with symlinks resolved.
func Dir() (string, error) {
	exe, err := Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir, err := filepath.Abs(filepath.Dir(exe))
	if err != nil {
		return "", fmt.Errorf("resolve executable dir: %w", err)
	}
	return dir, nil
}

// StoragePath returns the storage file path within dir.
func StoragePath(dir string) string {
	return filepath.Join(dir, StorageFile)
}

// ConfigPath returns the config file path within dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFile)
}
