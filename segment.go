package segment

import (
	"sync"

	"github.com/gocldr/segment/internal/casefold"
	"github.com/gocldr/segment/internal/casemap"
	"github.com/gocldr/segment/internal/driver"
	"github.com/gocldr/segment/internal/localeresolve"
)

// BreakKind selects which of the four segmentation modes Split, Next, and
// Stream operate in.
type BreakKind = driver.Kind

const (
	BreakGrapheme = driver.Grapheme
	BreakWord     = driver.Word
	BreakSentence = driver.Sentence
	BreakLine     = driver.Line
)

// Options configures a segmentation or casing operation. The zero value
// is not directly usable; build one with New().
type Options struct {
	d driver.Options
}

// New returns Options with spec.md's defaults: locale unspecified (root
// for segmentation, any for casing), break=word, suppressions=true,
// trim=false.
func New() Options {
	return Options{d: driver.NewOptions()}
}

// WithLocale sets an explicit locale. Accepts a string ("en-US"), a
// symbolic form ("en_US"), a Locale, or any localeresolve.StructuredTag.
// An explicit locale this package cannot resolve is a hard error rather
// than a silent fallback (§7).
func (o Options) WithLocale(locale any) Options {
	o.d = o.d.WithLocale(locale)
	return o
}

// WithBreak sets the segmentation mode.
func (o Options) WithBreak(kind BreakKind) Options {
	o.d.Kind = kind
	return o
}

// WithSuppressions toggles sentence-break abbreviation suppression.
func (o Options) WithSuppressions(enabled bool) Options {
	o.d.Suppressions = enabled
	return o
}

// WithTrim toggles omission of whitespace-only segments from Split, and
// skipping them in Next/Stream.
func (o Options) WithTrim(trim bool) Options {
	o.d.Trim = trim
	return o
}

var (
	defaultDriver     *driver.Driver
	defaultDriverErr  error
	defaultDriverOnce sync.Once
)

func theDriver() (*driver.Driver, error) {
	defaultDriverOnce.Do(func() {
		defaultDriver, defaultDriverErr = driver.New()
	})
	return defaultDriver, defaultDriverErr
}

// Break runs the evaluator once over (before, after) and returns the raw
// decision.
func Break(before, after string, o Options) (driver.Decision, error) {
	d, err := theDriver()
	if err != nil {
		return driver.Decision{}, classify(err)
	}
	dec, err := d.Break(before, after, o.d)
	if err != nil {
		return driver.Decision{}, classify(err)
	}
	return dec, nil
}

// BreakBool reports whether Break's decision is a break. It cannot
// surface an error (§7), so an internal failure is treated as a break.
func BreakBool(before, after string, o Options) bool {
	d, err := theDriver()
	if err != nil {
		return true
	}
	ok, err := d.BreakBool(before, after, o.d)
	if err != nil {
		return true
	}
	return ok
}

// Next produces one segment, or ok=false once s is exhausted.
func Next(s string, o Options) (segment, rest string, ok bool, err error) {
	d, derr := theDriver()
	if derr != nil {
		return "", "", false, classify(derr)
	}
	segment, rest, ok, err = d.Next(s, o.d)
	if err != nil {
		return "", "", false, classify(err)
	}
	return segment, rest, ok, nil
}

// Split segments s into an ordered list of substrings.
func Split(s string, o Options) ([]string, error) {
	d, err := theDriver()
	if err != nil {
		return nil, classify(err)
	}
	out, err := d.Split(s, o.d)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// Splitter is a restartable lazy sequence over s's segments.
type Splitter struct {
	sp  *driver.Splitter
	err error // driver initialization failure, if any
}

// Next advances the splitter.
func (s *Splitter) Next() (segment string, ok bool) { return s.sp.Next() }

// Err returns the first error Next encountered, if any.
func (s *Splitter) Err() error {
	if s.err != nil {
		return classify(s.err)
	}
	if err := s.sp.Err(); err != nil {
		return classify(err)
	}
	return nil
}

// NewSplitter returns a Splitter over s. If the driver itself fails to
// initialize, every Next call reports exhaustion and Err reports why.
func NewSplitter(s string, o Options) *Splitter {
	d, err := theDriver()
	if err != nil {
		return &Splitter{sp: &driver.Splitter{}, err: err}
	}
	return &Splitter{sp: d.Stream(s, o.d)}
}

// KnownSegmentationLocales returns every locale with packaged
// segmentation data.
func KnownSegmentationLocales() ([]string, error) {
	d, err := theDriver()
	if err != nil {
		return nil, classify(err)
	}
	return d.KnownSegmentationLocales(), nil
}

// KnownDictionaryLocales returns the canonical dictionary locales the
// Dictionary Word-Breaker recognizes.
func KnownDictionaryLocales() []string {
	return []string{"zh", "th", "lo", "km", "my"}
}

// SpecialCasingLocales returns the locales with dedicated case-mapping
// hooks.
func SpecialCasingLocales() []string {
	return append([]string{}, casemap.SpecialCasingLocales...)
}

// --- Case folding ---

// Fold applies the Unicode CaseFolding table codepoint by codepoint.
// With no locale/mode, it uses Full folding; a Turkic locale ("tr",
// "az") or an explicit casefold.Turkic mode substitutes the T-status
// rows for I/İ.
func Fold(s string, localeOrMode ...any) string {
	mode := resolveFoldMode(localeOrMode)
	return casefold.Fold(s, mode)
}

// EqualsIgnoringCase reports whether a and b fold to the same string.
func EqualsIgnoringCase(a, b string, localeOrMode ...any) bool {
	mode := resolveFoldMode(localeOrMode)
	return casefold.EqualsIgnoringCase(a, b, mode)
}

func resolveFoldMode(args []any) casefold.Mode {
	if len(args) == 0 {
		return casefold.Full
	}
	switch v := args[0].(type) {
	case casefold.Mode:
		return v
	case string:
		lang := languageOf(v)
		return casefold.ModeForLanguage(lang)
	default:
		return casefold.Full
	}
}

// --- Case mapping ---

// Upcase converts s to uppercase under o's locale.
func Upcase(s string, o Options) string {
	return casemap.Upcase(s, casingLocale(o))
}

// Downcase converts s to lowercase under o's locale.
func Downcase(s string, o Options) string {
	return casemap.Downcase(s, casingLocale(o))
}

// Titlecase splits s with the word segmenter, titlecasing the first
// codepoint of each segment and downcasing the rest (§4.8). Non-word
// segments (whitespace, punctuation) pass through unchanged.
func Titlecase(s string, o Options) (string, error) {
	// The locale is passed to the word segmenter without the strict
	// flag, so a casing-only locale such as "nl" segments with root's
	// word rules instead of failing to resolve.
	wordOpts := New()
	wordOpts.d.Locale = o.d.Locale

	d, err := theDriver()
	if err != nil {
		return "", classify(err)
	}
	segs, err := d.Split(s, wordOpts.d)
	if err != nil {
		return "", classify(err)
	}

	loc := casingLocale(o)
	var out []byte
	for _, seg := range segs {
		out = append(out, casemap.TitlecaseWord(seg, loc)...)
	}
	return string(out), nil
}

func casingLocale(o Options) string {
	s, ok := localeresolve.AsDictionaryCandidate(o.d.Locale)
	if !ok {
		return string(localeresolve.DefaultCasing)
	}
	lang := languageOf(s)
	for _, l := range casemap.SpecialCasingLocales {
		if l == lang {
			return l
		}
	}
	return string(localeresolve.DefaultCasing)
}

func languageOf(s string) string {
	t, err := localeresolve.Parse(s)
	if err != nil {
		return ""
	}
	return t.Lang()
}
