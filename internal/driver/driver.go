// Package driver is the Segmenter Driver (§4.7): it wires the Locale
// Resolver, Rule Catalog, and Dictionary Word-Breaker together into the
// next/split/stream/break operations every public per-kind package
// exposes.
package driver

import (
	"fmt"

	"github.com/gocldr/segment/internal/dict"
	"github.com/gocldr/segment/internal/localeresolve"
	"github.com/gocldr/segment/internal/rules"
	"github.com/gocldr/segment/internal/segdata"
	"github.com/gocldr/segment/is"
)

// Kind mirrors segdata.Kind in the driver's public vocabulary.
type Kind = segdata.Kind

const (
	Grapheme = segdata.GraphemeClusterBreak
	Word     = segdata.WordBreak
	Sentence = segdata.SentenceBreak
	Line     = segdata.LineBreak
)

// Options configures every driver operation (§4.7).
type Options struct {
	Locale       any // string, segdata.Locale, or localeresolve.StructuredTag
	Kind         Kind
	Suppressions bool
	Trim         bool
	strict       bool // true once the caller has set Locale explicitly
}

// NewOptions applies spec.md's defaults: locale=root, break=word,
// suppressions=true, trim=false.
func NewOptions() Options {
	return Options{Kind: Word, Suppressions: true}
}

// WithLocale records an explicit locale choice; an explicit, unresolvable
// locale is a hard error rather than a silent fallback to root (§7).
func (o Options) WithLocale(locale any) Options {
	o.Locale = locale
	o.strict = true
	return o
}

// Driver is the compiled view over one segmentation universe: a rule
// catalog plus the loaders it depends on. Construct once via New and
// reuse; it is safe for concurrent use (§5).
type Driver struct {
	data     *segdata.Catalog
	catalog  *rules.Catalog
	knownSeg knownLocaleSet
}

// knownLocaleSet adapts segdata.Catalog to localeresolve.KnownSet.
type knownLocaleSet struct{ data *segdata.Catalog }

func (k knownLocaleSet) Has(l segdata.Locale) bool { return k.data.Has(l) }

// New builds a Driver from the packaged segmentation data.
func New() (*Driver, error) {
	data, err := segdata.Default()
	if err != nil {
		return nil, err
	}
	return &Driver{data: data, catalog: rules.NewCatalog(data), knownSeg: knownLocaleSet{data}}, nil
}

func (d *Driver) resolveLocale(o Options) (segdata.Locale, error) {
	strict := o.strict
	// A dictionary locale is recognized even without a segmentation data
	// file of its own; its rule-based break kinds fall back to root.
	if s, ok := localeresolve.AsDictionaryCandidate(o.Locale); ok {
		if _, isDict := dict.Canonicalize(s); isDict {
			strict = false
		}
	}
	return localeresolve.Segmentation(o.Locale, d.knownSeg, strict)
}

// Decision mirrors rules.Decision in the driver's public vocabulary.
type Decision = rules.Decision

// Break runs the evaluator once and returns the raw decision.
func (d *Driver) Break(before, after string, o Options) (Decision, error) {
	loc, err := d.resolveLocale(o)
	if err != nil {
		return Decision{}, err
	}
	rs, err := d.catalog.RuleSet(loc, o.Kind, o.Suppressions)
	if err != nil {
		return Decision{}, err
	}
	return rules.Evaluate(before, after, rs), nil
}

// BreakBool reports whether Break's decision is a break.
func (d *Driver) BreakBool(before, after string, o Options) (bool, error) {
	dec, err := d.Break(before, after, o)
	if err != nil {
		return false, err
	}
	return dec.Op == rules.Break, nil
}

// dictionaryLocale reports the canonical dictionary locale to use for
// word-mode dispatch, if any (§4.6 dispatch rule: only for break=word).
func (d *Driver) dictionaryLocale(o Options) (string, bool) {
	if o.Kind != Word {
		return "", false
	}
	s, ok := localeresolve.AsDictionaryCandidate(o.Locale)
	if !ok {
		return "", false
	}
	return dict.Canonicalize(s)
}

// Next produces one segment, dispatching to the dictionary word-breaker
// when applicable, otherwise driving the rule evaluator codepoint by
// codepoint per the state machine in §4.7.
func (d *Driver) Next(s string, o Options) (segment, rest string, ok bool, err error) {
	if s == "" {
		return "", "", false, nil
	}

	if canon, isDict := d.dictionaryLocale(o); isDict {
		trie, derr := dict.Load(canon)
		if derr != nil {
			return "", "", false, derr
		}
		seg, rem, found := dict.Next(trie, s)
		if !found {
			return "", "", false, nil
		}
		if o.Trim && isWhitespaceOnly(seg) {
			return d.Next(rem, o)
		}
		return seg, rem, true, nil
	}

	loc, err := d.resolveLocale(o)
	if err != nil {
		return "", "", false, err
	}
	rs, err := d.catalog.RuleSet(loc, o.Kind, o.Suppressions)
	if err != nil {
		return "", "", false, err
	}

	before, after := firstRune(s)
	for {
		dec := rules.Evaluate(before, after, rs)
		if dec.Op == rules.Break {
			break
		}
		before += dec.Consumed
		after = dec.Remainder
		if after == "" {
			break
		}
	}

	seg, rem := before, after
	if o.Trim && isWhitespaceOnly(seg) {
		if rem == "" {
			return "", "", false, nil
		}
		return d.Next(rem, o)
	}
	return seg, rem, true, nil
}

// Split iterates Next to exhaustion (§4.7).
func (d *Driver) Split(s string, o Options) ([]string, error) {
	var out []string
	for s != "" {
		seg, rest, ok, err := d.Next(s, o)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, seg)
		s = rest
	}
	return out, nil
}

func firstRune(s string) (first, rest string) {
	for i := range s {
		if i == 0 {
			continue
		}
		return s[:i], s[i:]
	}
	return s, ""
}

func isWhitespaceOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !is.Whitespace(r) {
			return false
		}
	}
	return true
}

// KnownSegmentationLocales lists every locale with a packaged
// segmentation data file.
func (d *Driver) KnownSegmentationLocales() []string {
	locs := d.data.Known()
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = string(l)
	}
	return out
}

// Error is a structured error value carrying a kind, a message and the
// underlying error. The Driver's own operations do not wrap their errors
// in it: they return the loader, resolver, rule and dictionary errors
// directly, and the public segment package classifies those.
type Error struct {
	Kind    string
	Message string
	Err     error
}

func (e *Error) Error() string { return fmt.Sprintf("segment: %s: %s", e.Kind, e.Message) }
func (e *Error) Unwrap() error { return e.Err }
