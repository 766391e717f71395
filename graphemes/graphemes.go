// Package graphemes segments text into grapheme clusters (user-perceived
// characters) at Unicode extended grapheme cluster boundaries (UAX #29).
package graphemes

import seg "github.com/gocldr/segment"

// Split segments s into grapheme clusters.
func Split(s string) ([]string, error) {
	return seg.Split(s, seg.New().WithBreak(seg.BreakGrapheme))
}

// SplitLocale segments s into grapheme clusters under locale's rules.
func SplitLocale(s string, locale any) ([]string, error) {
	return seg.Split(s, seg.New().WithBreak(seg.BreakGrapheme).WithLocale(locale))
}

// FromString returns a restartable iterator over s's grapheme clusters.
func FromString(s string) *Iterator {
	return newIterator(s, seg.New().WithBreak(seg.BreakGrapheme))
}

// FromStringLocale is FromString under an explicit locale.
func FromStringLocale(s string, locale any) *Iterator {
	return newIterator(s, seg.New().WithBreak(seg.BreakGrapheme).WithLocale(locale))
}
