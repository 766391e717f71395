// Package sentences segments text into sentences at Unicode
// sentence-break boundaries (UAX #29), with locale-specific abbreviation
// suppression (e.g. "Mr." does not end a sentence).
package sentences

import seg "github.com/gocldr/segment"

// Split segments s into sentences, using root's default rules with
// suppressions enabled.
func Split(s string) ([]string, error) {
	return seg.Split(s, seg.New().WithBreak(seg.BreakSentence))
}

// SplitLocale segments s into sentences under locale's rules.
func SplitLocale(s string, locale any) ([]string, error) {
	return seg.Split(s, seg.New().WithBreak(seg.BreakSentence).WithLocale(locale))
}

// FromString returns a restartable iterator over s's sentences.
func FromString(s string) *Iterator {
	return newIterator(s, seg.New().WithBreak(seg.BreakSentence))
}

// FromStringLocale is FromString under an explicit locale.
func FromStringLocale(s string, locale any) *Iterator {
	return newIterator(s, seg.New().WithBreak(seg.BreakSentence).WithLocale(locale))
}
