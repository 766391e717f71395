// Package localeresolve is the Locale Resolver: it maps a caller-supplied
// locale identifier, in any of the accepted input forms, to the most
// specific segmentation or casing locale present in a known set, via the
// lang-Script-Region → lang-Region → lang-Script → lang → default
// fallback chain.
package localeresolve

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/gocldr/segment/internal/segdata"
)

// ErrUnknownLocale is returned by Resolve in strict mode when no candidate in a
// caller-supplied locale's fallback chain is present in the known set.
var ErrUnknownLocale = errors.New("localeresolve: unknown locale")

// DefaultSegmentation and DefaultCasing are the two domains' fallback
// locales when resolution exhausts every candidate (§4.6).
const (
	DefaultSegmentation = segdata.Locale("root")
	DefaultCasing       = segdata.Locale("any")
)

// tag is a parsed locale identifier's canonical (language, script,
// region) triple.
type tag struct {
	lang, script, region string
}

// Parse accepts any of the three input forms spec.md names: a BCP47-ish
// hyphen string ("en-US", "zh-Hant-HK"), an underscore symbolic form
// ("en_US"), or anything implementing StructuredTag. It canonicalizes
// casing per §4.6 step 1 (language lowercase, script titlecase, region
// uppercase) via golang.org/x/text/language's tag parser.
func Parse(locale any) (tag, error) {
	s, err := asString(locale)
	if err != nil {
		return tag{}, err
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || strings.EqualFold(s, "root") {
		return tag{}, nil
	}

	t, err := language.Parse(s)
	if err != nil {
		// Fall back to a permissive hand-parse: language.Parse rejects
		// some CLDR-only pseudo-codes our data files may still use.
		return handParse(s), nil
	}
	base, script, region := t.Raw()
	out := tag{lang: strings.ToLower(base.String())}
	if !script.IsNil() {
		out.script = script.String()
	}
	if region.String() != "ZZ" && region.String() != "" {
		out.region = region.String()
	}
	return out, nil
}

// StructuredTag is the "structured language tag" input form spec.md's
// Locale Resolver accepts: any value exposing canonical_name,
// cldr_name and language. The only field this resolver actually needs
// is the canonical form, reachable either via CanonicalName() or
// String().
type StructuredTag interface {
	CanonicalName() string
}

// AsDictionaryCandidate reduces a caller-supplied locale value to its raw
// string form, for callers (the driver's word-mode dispatch) that need to
// test it against a fixed set of dictionary locale prefixes rather than
// run it through the segmentation fallback chain.
func AsDictionaryCandidate(locale any) (string, bool) {
	s, err := asString(locale)
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}

func asString(locale any) (string, error) {
	switch v := locale.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case segdata.Locale:
		return string(v), nil
	case StructuredTag:
		return v.CanonicalName(), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("localeresolve: unsupported locale value of type %T", locale)
	}
}

func handParse(s string) tag {
	parts := strings.Split(s, "-")
	out := tag{}
	if len(parts) > 0 {
		out.lang = strings.ToLower(parts[0])
	}
	for _, p := range parts[1:] {
		switch {
		case len(p) == 4:
			out.script = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
		case len(p) == 2:
			out.region = strings.ToUpper(p)
		}
	}
	return out
}

// Lang returns the parsed locale's bare language subtag, e.g. "tr" for
// "tr-TR". Casing callers use this to pick a SpecialCasing locale hook
// without running the segmentation fallback chain.
func (t tag) Lang() string { return t.lang }

// candidates returns the fallback chain, most specific first, per §4.6
// step 2: lang-Script-Region → lang-Region → lang-Script → lang.
func (t tag) candidates() []segdata.Locale {
	if t.lang == "" {
		return nil
	}
	var out []segdata.Locale
	join := func(parts ...string) segdata.Locale {
		var nonEmpty []string
		for _, p := range parts {
			if p != "" {
				nonEmpty = append(nonEmpty, p)
			}
		}
		return segdata.Locale(strings.Join(nonEmpty, "-"))
	}
	if t.script != "" && t.region != "" {
		out = append(out, join(t.lang, t.script, t.region))
	}
	if t.region != "" {
		out = append(out, join(t.lang, t.region))
	}
	if t.script != "" {
		out = append(out, join(t.lang, t.script))
	}
	out = append(out, join(t.lang))
	return dedupe(out)
}

func dedupe(in []segdata.Locale) []segdata.Locale {
	seen := make(map[segdata.Locale]bool, len(in))
	out := in[:0]
	for _, l := range in {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// KnownSet is a membership test over the locales a particular domain
// (segmentation or casing) has actual data for.
type KnownSet interface {
	Has(segdata.Locale) bool
}

// Resolve runs the fallback chain against known, returning the first
// candidate known contains, or def if none match and strict is false.
// If strict is true and no candidate matches, it returns ErrUnknownLocale.
func Resolve(locale any, known KnownSet, def segdata.Locale, strict bool) (segdata.Locale, error) {
	t, err := Parse(locale)
	if err != nil {
		return "", err
	}
	for _, cand := range t.candidates() {
		if known.Has(cand) {
			return cand, nil
		}
	}
	if strict && t.lang != "" {
		return "", fmt.Errorf("%w: %v", ErrUnknownLocale, locale)
	}
	return def, nil
}

// Segmentation resolves locale against a segmentation catalog's known
// set, defaulting to root.
func Segmentation(locale any, known KnownSet, strict bool) (segdata.Locale, error) {
	return Resolve(locale, known, DefaultSegmentation, strict)
}

// Casing resolves locale against a casing known set, defaulting to
// "any" (no locale-specific casing rules).
func Casing(locale any, known KnownSet, strict bool) (segdata.Locale, error) {
	return Resolve(locale, known, DefaultCasing, strict)
}
