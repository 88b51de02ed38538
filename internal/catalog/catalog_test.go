package catalog

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smallrender/sr-submit/internal/logging"
	"github.com/smallrender/sr-submit/internal/models"
)

// testFarm creates a farm directory with templates/ and templates/examples/.
func testFarm(t *testing.T) string {
	t.Helper()
	farm := t.TempDir()
	if err := os.MkdirAll(filepath.Join(farm, "templates", "examples"), 0755); err != nil {
		t.Fatalf("failed to create template dirs: %v", err)
	}
	return farm
}

func writeTemplate(t *testing.T, farm, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(farm, "templates", name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
}

// testCatalog builds a catalog over a fixed farm with a controllable clock.
// Advance the clock through the returned pointer.
func testCatalog(farm string) (*Catalog, *time.Time) {
	current := time.Unix(1700000000, 0)
	c := NewWithClock(
		func() string { return farm },
		logging.NewLogger(io.Discard),
		func() time.Time { return current },
	)
	return c, &current
}

func ids(templates []models.Template) []string {
	out := make([]string, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, tpl.ID)
	}
	return out
}

func TestList_ScanOrderAndNameDefault(t *testing.T) {
	farm := testFarm(t)
	// Lexical order within templates/, then examples/ after - regardless of
	// creation order.
	writeTemplate(t, farm, "zz_last.json", `{"template_id": "zeta", "name": "Zeta Pass"}`)
	writeTemplate(t, farm, "aa_first.json", `{"template_id": "alpha"}`)
	if err := os.WriteFile(filepath.Join(farm, "templates", "examples", "demo.json"),
		[]byte(`{"template_id": "demo", "name": "Demo"}`), 0644); err != nil {
		t.Fatalf("failed to write example template: %v", err)
	}

	c, _ := testCatalog(farm)
	templates := c.List()

	want := []string{"alpha", "zeta", "demo"}
	got := ids(templates)
	if len(got) != len(want) {
		t.Fatalf("List() returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List() order = %v, want %v", got, want)
		}
	}

	// Display name defaults to the ID when the file has no name.
	if templates[0].DisplayName() != "alpha" {
		t.Errorf("DisplayName() = %q, want ID fallback", templates[0].DisplayName())
	}
	if templates[1].DisplayName() != "Zeta Pass" {
		t.Errorf("DisplayName() = %q, want Zeta Pass", templates[1].DisplayName())
	}
}

func TestList_SkipsInvalidFiles(t *testing.T) {
	farm := testFarm(t)
	writeTemplate(t, farm, "good.json", `{"template_id": "good"}`)
	writeTemplate(t, farm, "broken.json", "not json at all {{{")
	writeTemplate(t, farm, "no_id.json", `{"name": "No ID"}`)
	writeTemplate(t, farm, "empty_id.json", `{"template_id": ""}`)
	writeTemplate(t, farm, "readme.txt", "not a template")
	// A directory with a .json suffix must not be parsed.
	if err := os.Mkdir(filepath.Join(farm, "templates", "dir.json"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	c, _ := testCatalog(farm)
	got := ids(c.List())
	if len(got) != 1 || got[0] != "good" {
		t.Errorf("List() = %v, want [good]", got)
	}
}

func TestList_DuplicatesAcrossDirsKept(t *testing.T) {
	farm := testFarm(t)
	writeTemplate(t, farm, "film.json", `{"template_id": "film"}`)
	if err := os.WriteFile(filepath.Join(farm, "templates", "examples", "film.json"),
		[]byte(`{"template_id": "film"}`), 0644); err != nil {
		t.Fatalf("failed to write example template: %v", err)
	}

	c, _ := testCatalog(farm)
	if got := ids(c.List()); len(got) != 2 {
		t.Errorf("List() = %v, want the duplicate kept", got)
	}
}

func TestList_CacheFreshness(t *testing.T) {
	farm := testFarm(t)
	writeTemplate(t, farm, "film.json", `{"template_id": "film"}`)

	c, clock := testCatalog(farm)
	first := c.List()
	if len(first) != 1 {
		t.Fatalf("initial List() = %v, want one template", ids(first))
	}

	// A file added after the scan must not appear while the cache is fresh.
	writeTemplate(t, farm, "new.json", `{"template_id": "new"}`)

	*clock = clock.Add(4900 * time.Millisecond)
	fresh := c.List()
	if len(fresh) != 1 || fresh[0].ID != "film" {
		t.Errorf("List() within TTL = %v, want cached [film]", ids(fresh))
	}
}

func TestList_CacheStaleness(t *testing.T) {
	farm := testFarm(t)
	writeTemplate(t, farm, "film.json", `{"template_id": "film"}`)

	c, clock := testCatalog(farm)
	c.List()
	writeTemplate(t, farm, "new.json", `{"template_id": "new"}`)

	*clock = clock.Add(5 * time.Second)
	stale := c.List()
	if len(stale) != 2 {
		t.Errorf("List() after TTL = %v, want rescan with both templates", ids(stale))
	}
}

func TestList_FarmDownCached(t *testing.T) {
	resolves := 0
	current := time.Unix(1700000000, 0)
	c := NewWithClock(
		func() string { resolves++; return "" },
		logging.NewLogger(io.Discard),
		func() time.Time { return current },
	)

	if got := c.List(); len(got) != 0 {
		t.Fatalf("List() with farm down = %v, want empty", ids(got))
	}
	if resolves != 1 {
		t.Fatalf("resolver called %d times, want 1", resolves)
	}

	// Farm-down is cached too: no re-resolution inside the TTL.
	current = current.Add(2 * time.Second)
	c.List()
	if resolves != 1 {
		t.Errorf("resolver called %d times within TTL, want 1", resolves)
	}

	current = current.Add(4 * time.Second)
	c.List()
	if resolves != 2 {
		t.Errorf("resolver called %d times after TTL, want 2", resolves)
	}
}

func TestList_EmptyFarm(t *testing.T) {
	c, _ := testCatalog(testFarm(t))
	if got := c.List(); len(got) != 0 {
		t.Errorf("List() on empty farm = %v, want empty list", ids(got))
	}
}

func TestList_MissingTemplateDirs(t *testing.T) {
	// A farm root without templates/ at all is still a valid, empty catalog.
	c, _ := testCatalog(t.TempDir())
	if got := c.List(); len(got) != 0 {
		t.Errorf("List() without template dirs = %v, want empty list", ids(got))
	}
}
