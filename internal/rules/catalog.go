package rules

import (
	"sync"

	"github.com/gocldr/segment/internal/segdata"
)

// cacheKey identifies one compiled RuleSet: a locale's effective data for
// one segment kind, compiled with or without suppressions.
type cacheKey struct {
	locale       segdata.Locale
	kind         segdata.Kind
	suppressions bool
}

// Catalog lazily compiles and caches RuleSets, guarding each distinct key
// with its own one-time initializer so concurrent first-use across
// different (locale, kind) pairs doesn't serialize on a single lock
// (§5: rule catalog's concurrent first-use must be guarded, but
// unrelated keys shouldn't block each other).
type Catalog struct {
	data *segdata.Catalog

	mu    sync.Mutex
	cells map[cacheKey]*cell
}

type cell struct {
	once sync.Once
	rs   *RuleSet
	err  error
}

// NewCatalog wraps a Segment Data Loader catalog with rule compilation
// and caching.
func NewCatalog(data *segdata.Catalog) *Catalog {
	return &Catalog{data: data, cells: make(map[cacheKey]*cell)}
}

// RuleSet returns the compiled, cached RuleSet for locale/kind, compiling
// it on first request.
func (c *Catalog) RuleSet(locale segdata.Locale, kind segdata.Kind, suppressionsEnabled bool) (*RuleSet, error) {
	key := cacheKey{locale: locale, kind: kind, suppressions: suppressionsEnabled}

	c.mu.Lock()
	cl, ok := c.cells[key]
	if !ok {
		cl = &cell{}
		c.cells[key] = cl
	}
	c.mu.Unlock()

	cl.once.Do(func() {
		raw := c.data.Effective(locale, kind)
		cl.rs, cl.err = Compile(raw, suppressionsEnabled)
	})
	return cl.rs, cl.err
}
