// Package config locates the per-user SmallRender configuration written by
// the monitor and resolves the farm root directory from it.
//
// Config file location:
//   - Windows: %LOCALAPPDATA%\SmallRender\config.json
//   - macOS: ~/Library/Application Support/SmallRender/config.json
//   - Linux: $XDG_DATA_HOME/SmallRender/config.json (default ~/.local/share)
//
// JSON format:
//
//	{ "sync_root": "/path/to/shared/folder" }
//
// The monitor owns this file; sr-submit treats it as read-only. A missing or
// malformed file is not an error, it simply means "not configured yet".
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/smallrender/sr-submit/internal/constants"
)

// Config is the subset of the monitor's config this client reads.
// Unrecognized keys are ignored.
type Config struct {
	SyncRoot string `json:"sync_root"`
}

// Connectivity errors, ordered by subsumption: an unconfigured client is
// necessarily unreachable, and an unreachable farm necessarily has no inbox.
// Diagnose checks them in that order so callers get the most specific cause.
var (
	ErrUnconfigured    = errors.New("config not found (is the SmallRender monitor installed?)")
	ErrNoSyncRoot      = errors.New("sync root not set (configure it in the SmallRender monitor)")
	ErrFarmUnreachable = errors.New("farm folder not found under the sync root")
	ErrNotReady        = errors.New("submissions folder not found (is the farm initialized?)")
)

// DefaultConfigDir returns the per-OS SmallRender data directory.
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "SmallRender")
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", "SmallRender")
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "SmallRender")
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".local", "share", "SmallRender")
	}
}

// DefaultConfigPath returns the default location of the monitor's config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), constants.ConfigFileName)
}

// Load reads the config file at path. Missing file, unreadable file, and
// malformed JSON all collapse to nil: callers only need to know whether a
// usable config exists, not why it doesn't (Diagnose reconstructs the why).
func Load(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil
	}
	return &cfg
}

// LoadDefault reads the config from the default per-OS location.
func LoadDefault() *Config {
	return Load(DefaultConfigPath())
}

// FarmRoot resolves the farm directory from the config. Returns "" unless
// sync_root is set and <sync_root>/SmallRender-v1 exists as a directory.
// Existence is the sole connectivity signal; there is no handshake.
func (c *Config) FarmRoot() string {
	if c == nil || c.SyncRoot == "" {
		return ""
	}
	farm := filepath.Join(c.SyncRoot, constants.FarmDirName)
	info, err := os.Stat(farm)
	if err != nil || !info.IsDir() {
		return ""
	}
	return farm
}

// ResolveFarmRoot loads the config at path and resolves the farm root from
// it. Returns "" for any failure along the way. Resolution is re-run on
// every call; it is stat-bound and cheap.
func ResolveFarmRoot(path string) string {
	return Load(path).FarmRoot()
}

// TemplateDirs returns the template search directories under a farm root, in
// scan order. Both are scanned; duplicates between them are kept.
func TemplateDirs(farmRoot string) []string {
	templates := filepath.Join(farmRoot, constants.TemplatesDirName)
	return []string{
		templates,
		filepath.Join(templates, constants.ExamplesDirName),
	}
}

// SubmissionsDir returns the farm inbox directory under a farm root.
func SubmissionsDir(farmRoot string) string {
	return filepath.Join(farmRoot, constants.SubmissionsDirName)
}

// Diagnose re-checks the connectivity preconditions in subsumption order and
// returns the most specific failure, or nil when the farm is ready to accept
// submissions. Load/FarmRoot deliberately flatten failures to nil/""; this is
// where the distinct user-facing causes are recovered.
func Diagnose(configPath string) error {
	cfg := Load(configPath)
	if cfg == nil {
		return ErrUnconfigured
	}
	if cfg.SyncRoot == "" {
		return ErrNoSyncRoot
	}
	farm := cfg.FarmRoot()
	if farm == "" {
		return ErrFarmUnreachable
	}
	info, err := os.Stat(SubmissionsDir(farm))
	if err != nil || !info.IsDir() {
		return ErrNotReady
	}
	return nil
}
