package segdata

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"
)

// Catalog is the in-memory result of the Segment Data Loader: a map from
// locale to that locale's own (unmerged) per-kind raw segment data. It is
// built once from the embedded data directory and is read-only thereafter.
type Catalog struct {
	byLocale map[Locale]map[Kind]RawSegmentData
	locales  []Locale // sorted, for deterministic Known()
}

var (
	defaultCatalog     *Catalog
	defaultCatalogErr  error
	defaultCatalogOnce sync.Once
)

// Default returns the process-wide catalog built from the packaged data
// directory, constructing it on first use. Concurrent callers block on the
// same sync.Once; once built, reads require no locking (§5, "Rule
// catalog... concurrent first-use initialization must be guarded by a
// one-time initializer").
func Default() (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = load(dataFS, dataDir)
	})
	return defaultCatalog, defaultCatalogErr
}

// fileToLocale converts a data file's base name (underscore-joined, per the
// packaging convention) to a canonical hyphen-joined Locale.
func fileToLocale(base string) Locale {
	name := strings.TrimSuffix(base, ".xml")
	return Locale(strings.ReplaceAll(name, "_", "-"))
}

func load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("segdata: read data dir: %w", err)
	}

	c := &Catalog{byLocale: make(map[Locale]map[Kind]RawSegmentData, len(entries))}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".xml") {
			continue
		}
		b, err := fs.ReadFile(fsys, dir+"/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("segdata: read %s: %w", e.Name(), err)
		}
		byKind, err := parse(b)
		if err != nil {
			return nil, fmt.Errorf("segdata: %s: %w", e.Name(), err)
		}
		loc := fileToLocale(e.Name())
		c.byLocale[loc] = byKind
		c.locales = append(c.locales, loc)
	}
	sort.Slice(c.locales, func(i, j int) bool { return c.locales[i] < c.locales[j] })
	return c, nil
}

// Known returns every locale with its own data file, sorted.
func (c *Catalog) Known() []Locale {
	out := make([]Locale, len(c.locales))
	copy(out, c.locales)
	return out
}

// Has reports whether locale has its own data file (not counting ancestors).
func (c *Catalog) Has(locale Locale) bool {
	_, ok := c.byLocale[locale]
	return ok
}

// Segments returns every segment kind locale's own file declares.
func (c *Catalog) Segments(locale Locale) (map[Kind]RawSegmentData, error) {
	data, ok := c.byLocale[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocale, locale)
	}
	return data, nil
}

// Segment returns one segment kind from locale's own file.
func (c *Catalog) Segment(locale Locale, kind Kind) (RawSegmentData, error) {
	data, err := c.Segments(locale)
	if err != nil {
		return RawSegmentData{}, err
	}
	d, ok := data[kind]
	if !ok {
		return RawSegmentData{}, fmt.Errorf("%w: %s has no %s data", ErrUnknownSegmentType, locale, kind)
	}
	return d, nil
}

// Effective computes a locale's merged data for one segment kind by
// concatenating every ancestor's own contribution, root first, most
// specific last (§3 invariant I5, §4.1 "Ancestor merge"). Ancestors with no
// data file simply contribute nothing; this never errors, since root is
// always present once the catalog has built successfully, and a locale
// entirely absent from the catalog still inherits root's data.
func (c *Catalog) Effective(locale Locale, kind Kind) RawSegmentData {
	chain := locale.Ancestors()
	var merged RawSegmentData
	// chain is most-specific-first; walk it in reverse so root contributes first.
	for i := len(chain) - 1; i >= 0; i-- {
		data, ok := c.byLocale[chain[i]]
		if !ok {
			continue
		}
		if d, ok := data[kind]; ok {
			merged = merge(merged, d)
		}
	}
	return merged
}
