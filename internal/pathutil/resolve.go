// Package pathutil provides output-path resolution for sr-submit.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveOutputPath converts a possibly-relative render output path into an
// absolute one, anchored at the directory of the open document. Host
// applications commonly store output paths relative to the document (Blender
// uses a leading "//" for this); the farm dispatcher needs them absolute.
//
// Resolution rules, in order:
//   - "" resolves to the document directory itself
//   - a leading "//" is stripped and the rest anchored at documentDir
//   - "~" expands to the user's home directory
//   - anything still relative is anchored at documentDir
func ResolveOutputPath(path, documentDir string) string {
	if path == "" {
		return filepath.Clean(documentDir)
	}

	// Host convention: "//" prefix marks a document-relative path.
	if strings.HasPrefix(path, "//") {
		return filepath.Join(documentDir, path[2:])
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home + path[1:]
		}
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(documentDir, path)
}
