// Package linebreak segments text into line-break opportunities: the
// positions where a line-wrapping algorithm may legally break, not the
// newlines themselves.
package linebreak

import seg "github.com/gocldr/segment"

// Split segments s into line-break opportunity segments.
func Split(s string) ([]string, error) {
	return seg.Split(s, seg.New().WithBreak(seg.BreakLine))
}

// SplitLocale segments s into line-break opportunity segments under
// locale's rules.
func SplitLocale(s string, locale any) ([]string, error) {
	return seg.Split(s, seg.New().WithBreak(seg.BreakLine).WithLocale(locale))
}

// FromString returns a restartable iterator over s's line-break segments.
func FromString(s string) *Iterator {
	return newIterator(s, seg.New().WithBreak(seg.BreakLine))
}

// FromStringLocale is FromString under an explicit locale.
func FromStringLocale(s string, locale any) *Iterator {
	return newIterator(s, seg.New().WithBreak(seg.BreakLine).WithLocale(locale))
}
