package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/smallrender/sr-submit/internal/constants"
)

// Prefs are sr-submit's own defaults, kept separate from the monitor's
// config.json: that file is the monitor's, this one is ours.
//
// TOML format:
//
//	template = "film"
//	chunk_size = 10
//	priority = 50
type Prefs struct {
	Template  string `toml:"template"`
	ChunkSize int    `toml:"chunk_size"`
	Priority  int    `toml:"priority"`
}

// DefaultPrefsPath returns the default location of the prefs file, alongside
// the monitor's config in the SmallRender data directory.
func DefaultPrefsPath() string {
	return filepath.Join(DefaultConfigDir(), constants.PrefsFileName)
}

// NewPrefs creates preferences with default values.
func NewPrefs() *Prefs {
	return &Prefs{
		ChunkSize: constants.DefaultChunkSize,
		Priority:  constants.DefaultPriority,
	}
}

// LoadPrefs loads preferences from a TOML file.
// If the file doesn't exist, returns defaults and no error.
// If the file exists but is invalid, returns an error.
func LoadPrefs(path string) (*Prefs, error) {
	prefs := NewPrefs()

	if path == "" {
		path = DefaultPrefsPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return prefs, nil
	}

	if _, err := toml.DecodeFile(path, prefs); err != nil {
		return nil, fmt.Errorf("failed to load prefs: %w", err)
	}

	// Out-of-range values in the file fall back to defaults rather than
	// failing the whole command.
	if prefs.ChunkSize < constants.MinChunkSize || prefs.ChunkSize > constants.MaxChunkSize {
		prefs.ChunkSize = constants.DefaultChunkSize
	}
	if prefs.Priority < constants.MinPriority || prefs.Priority > constants.MaxPriority {
		prefs.Priority = constants.DefaultPriority
	}

	return prefs, nil
}

// SavePrefs saves preferences to a TOML file.
// Creates parent directories if they don't exist.
func SavePrefs(prefs *Prefs, path string) error {
	if path == "" {
		path = DefaultPrefsPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create prefs directory: %w", err)
	}

	// Temporary file + rename for atomicity
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(prefs); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to encode prefs: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write prefs: %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmpPath, 0600); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to set prefs permissions: %w", err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save prefs: %w", err)
	}

	return nil
}
