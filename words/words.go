// Package words segments text into words at Unicode word-break
// boundaries (UAX #29, as refined by locale data), dispatching to the
// Dictionary Word-Breaker for scripts with no whitespace between words.
package words

import seg "github.com/gocldr/segment"

// Split segments s into words, using root's default rules.
func Split(s string) ([]string, error) {
	return seg.Split(s, seg.New().WithBreak(seg.BreakWord))
}

// SplitLocale segments s into words under locale's rules (or
// dictionary, for a recognized dictionary locale).
func SplitLocale(s string, locale any) ([]string, error) {
	return seg.Split(s, seg.New().WithBreak(seg.BreakWord).WithLocale(locale))
}

// FromString returns a restartable iterator over s's words.
func FromString(s string) *Iterator {
	return newIterator(s, seg.New().WithBreak(seg.BreakWord))
}

// FromStringLocale is FromString under an explicit locale.
func FromStringLocale(s string, locale any) *Iterator {
	return newIterator(s, seg.New().WithBreak(seg.BreakWord).WithLocale(locale))
}
