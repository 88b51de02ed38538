// Package catalog discovers job templates published on the farm and caches
// the result across UI-rate calls.
package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/smallrender/sr-submit/internal/config"
	"github.com/smallrender/sr-submit/internal/constants"
	"github.com/smallrender/sr-submit/internal/logging"
	"github.com/smallrender/sr-submit/internal/models"
)

// Catalog manages cached template discovery to avoid rescanning a (possibly
// networked) mount on every interactive call. A farm-down result is cached
// for the same window, so a missing mount is not hammered either.
type Catalog struct {
	mu        sync.Mutex
	entries   []models.Template
	fetchedAt time.Time

	resolveFarm func() string
	now         func() time.Time
	log         *logging.Logger
}

// New creates a catalog. resolveFarm is called on every stale scan to locate
// the farm root (re-resolution is cheap and picks up config changes).
func New(resolveFarm func() string, log *logging.Logger) *Catalog {
	return &Catalog{
		resolveFarm: resolveFarm,
		now:         time.Now,
		log:         log,
	}
}

// NewWithClock creates a catalog with an injected clock, for tests.
func NewWithClock(resolveFarm func() string, log *logging.Logger, now func() time.Time) *Catalog {
	c := New(resolveFarm, log)
	c.now = now
	return c
}

// List returns the templates available on the farm, serving the cached scan
// when it is younger than the TTL. The returned slice is the cache itself;
// callers must not mutate it. An empty slice is a valid state (no templates,
// or farm unreachable) and never an error: discovery is best-effort.
func (c *Catalog) List() []models.Template {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.fetchedAt.IsZero() && now.Sub(c.fetchedAt) < constants.TemplateCacheTTL {
		return c.entries
	}

	farm := c.resolveFarm()
	if farm == "" {
		c.entries = nil
		c.fetchedAt = now
		return nil
	}

	var templates []models.Template
	for _, dir := range config.TemplateDirs(farm) {
		templates = append(templates, c.scanDir(dir)...)
	}

	// Replace wholesale so a concurrent reader (via the lock) never sees a
	// half-updated list.
	c.entries = templates
	c.fetchedAt = now
	return c.entries
}

// LastFetched returns when the catalog was last scanned.
func (c *Catalog) LastFetched() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchedAt
}

// scanDir lists one template directory in lexical filename order, parsing
// every .json file. Malformed files and files without a template_id are
// skipped with a debug log: partial catalogs beat a failed listing.
func (c *Catalog) scanDir(dir string) []models.Template {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var templates []models.Template
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			c.log.Debug().Err(err).Str("template", path).Msg("Skipping unreadable template")
			continue
		}
		var tpl models.Template
		if err := json.Unmarshal(data, &tpl); err != nil {
			c.log.Debug().Err(err).Str("template", path).Msg("Skipping malformed template")
			continue
		}
		if tpl.ID == "" {
			c.log.Debug().Str("template", path).Msg("Skipping template without template_id")
			continue
		}
		templates = append(templates, tpl)
	}
	return templates
}
