// Package settings loads optional user overrides from settings.toml in the
// profile store directory. The file is entirely optional; a missing file
// yields zero-value settings.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the settings file name inside the profile store directory.
const FileName = "settings.toml"

// Settings holds user overrides for tool defaults.
type Settings struct {
	// DefaultEditor overrides the platform editor suggestion used as the
	// core.editor default when creating profiles.
	DefaultEditor string `toml:"default_editor"`
	// DialogTool overrides the dialog utility used by the graphical
	// chooser (defaults to zenity).
	DialogTool string `toml:"dialog_tool"`
}

// Load reads settings.toml from the given store directory. A missing file is
// not an error.
func Load(storeDir string) (Settings, error) {
	var s Settings
	path := filepath.Join(storeDir, FileName)
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings to settings.toml in the given store directory.
func Save(storeDir string, s Settings) error {
	path := filepath.Join(storeDir, FileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return nil
}
