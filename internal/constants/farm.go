// Package constants defines shared constants for the SmallRender farm layout
// and client-side submission behavior.
package constants

import "time"

// Farm filesystem layout. These names are the on-disk contract with the
// SmallRender monitor and must not change without a farm version bump.
const (
	// FarmDirName - farm root directory under the configured sync root.
	// Existence of this directory is the sole connectivity signal.
	FarmDirName = "SmallRender-v1"

	// TemplatesDirName - directory of job template JSON files under the farm root.
	TemplatesDirName = "templates"

	// ExamplesDirName - secondary template directory under templates/.
	ExamplesDirName = "examples"

	// SubmissionsDirName - inbox directory where job descriptors are published.
	SubmissionsDirName = "submissions"

	// ConfigFileName - per-user config file written by the SmallRender monitor.
	ConfigFileName = "config.json"

	// PrefsFileName - client-side submission preferences (this tool's own file).
	PrefsFileName = "prefs.toml"
)

// Client-side timing behavior.
const (
	// TemplateCacheTTL - how long a template scan result is served without
	// re-reading the farm. Keeps interactive listing from hammering a
	// (possibly networked) mount.
	TemplateCacheTTL = 5 * time.Second

	// SubmitCooldown - minimum gap between submit batches from one process.
	// Guards against accidental double submission, not cross-host duplicates.
	SubmitCooldown = 2 * time.Second
)

// Descriptor field bounds. Mirrors the limits enforced by the farm dispatcher.
const (
	// DescriptorVersion - wire format version written into every descriptor.
	DescriptorVersion = 1

	// MinChunkSize / MaxChunkSize - frames per render chunk.
	MinChunkSize = 1
	MaxChunkSize = 10000

	// MinPriority / MaxPriority - job priority (higher renders first).
	MinPriority = 1
	MaxPriority = 100

	// DefaultChunkSize / DefaultPriority - used when prefs and flags are silent.
	DefaultChunkSize = 10
	DefaultPriority  = 50
)
