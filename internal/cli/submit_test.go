package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smallrender/sr-submit/internal/models"
	"github.com/smallrender/sr-submit/internal/submit"
)

func TestParseFrameRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{"simple range", "1-250", 1, 250, false},
		{"with spaces", " 10 - 20 ", 10, 20, false},
		{"single frame", "5-5", 5, 5, false},
		{"negative start", "-5-10", 0, 0, true},
		{"missing separator", "100", 0, 0, true},
		{"non-numeric", "a-b", 0, 0, true},
		{"empty", "", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := parseFrameRange(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFrameRange(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && (start != tt.wantStart || end != tt.wantEnd) {
				t.Errorf("parseFrameRange(%q) = (%d,%d), want (%d,%d)", tt.input, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestSelectScenes(t *testing.T) {
	manifest := &models.Manifest{
		Document:    "/projects/shot010.blend",
		ActiveScene: "Exterior",
		Scenes: []models.Scene{
			{Name: "Interior"},
			{Name: "Exterior"},
			{Name: "Credits"},
		},
	}

	t.Run("all scenes", func(t *testing.T) {
		scenes, err := selectScenes(manifest, true, "")
		if err != nil || len(scenes) != 3 {
			t.Errorf("selectScenes(all) = %v scenes, err %v; want 3, nil", len(scenes), err)
		}
	})

	t.Run("active scene by default", func(t *testing.T) {
		scenes, err := selectScenes(manifest, false, "")
		if err != nil || len(scenes) != 1 || scenes[0].Name != "Exterior" {
			t.Errorf("selectScenes(default) = %+v, err %v; want [Exterior]", scenes, err)
		}
	})

	t.Run("named scene", func(t *testing.T) {
		scenes, err := selectScenes(manifest, false, "Credits")
		if err != nil || len(scenes) != 1 || scenes[0].Name != "Credits" {
			t.Errorf("selectScenes(named) = %+v, err %v; want [Credits]", scenes, err)
		}
	})

	t.Run("unknown scene", func(t *testing.T) {
		if _, err := selectScenes(manifest, false, "Nope"); err == nil {
			t.Error("selectScenes should fail for unknown scene name")
		}
	})

	t.Run("first scene when no active marker", func(t *testing.T) {
		noActive := &models.Manifest{Scenes: manifest.Scenes}
		scenes, err := selectScenes(noActive, false, "")
		if err != nil || len(scenes) != 1 || scenes[0].Name != "Interior" {
			t.Errorf("selectScenes(no active) = %+v, err %v; want [Interior]", scenes, err)
		}
	})
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "shot010.blend")
	if err := os.WriteFile(docPath, []byte("blend"), 0644); err != nil {
		t.Fatalf("failed to create test document: %v", err)
	}

	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "manifest.json")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write manifest: %v", err)
		}
		return path
	}

	t.Run("valid", func(t *testing.T) {
		path := write(t, `{"document": "`+docPath+`", "scenes": [{"name": "Scene", "frame_start": 1, "frame_end": 10}]}`)
		manifest, err := loadManifest(path)
		if err != nil {
			t.Fatalf("loadManifest failed: %v", err)
		}
		if manifest.Document != docPath {
			t.Errorf("Document = %q, want %q", manifest.Document, docPath)
		}
		if len(manifest.Scenes) != 1 {
			t.Errorf("Scenes = %d, want 1", len(manifest.Scenes))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := loadManifest(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("loadManifest should fail for missing file")
		}
	})

	t.Run("no document", func(t *testing.T) {
		path := write(t, `{"scenes": [{"name": "Scene"}]}`)
		if _, err := loadManifest(path); !errors.Is(err, submit.ErrNoDocument) {
			t.Errorf("err = %v, want ErrNoDocument", err)
		}
	})

	t.Run("document not saved", func(t *testing.T) {
		path := write(t, `{"document": "`+filepath.Join(dir, "unsaved.blend")+`", "scenes": [{"name": "Scene"}]}`)
		if _, err := loadManifest(path); !errors.Is(err, submit.ErrNoDocument) {
			t.Errorf("err = %v, want ErrNoDocument", err)
		}
	})

	t.Run("no scenes", func(t *testing.T) {
		path := write(t, `{"document": "`+docPath+`", "scenes": []}`)
		if _, err := loadManifest(path); !errors.Is(err, submit.ErrNoScenes) {
			t.Errorf("err = %v, want ErrNoScenes", err)
		}
	})
}
