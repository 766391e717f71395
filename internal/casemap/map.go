// Package casemap is the Case Mapper (§4.8): upcase, downcase, and the
// titlecase-of-a-word helper the Segmenter Driver composes with the word
// segmenter, including the SpecialCasing conditional contexts and the
// tr/az/lt/nl/el locale hooks.
package casemap

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gocldr/segment/is"
)

// SpecialCasingLocales lists the locales this package carries dedicated
// hooks for (§6: known_special_casing_locales).
var SpecialCasingLocales = []string{"tr", "az", "lt", "nl", "el"}

// Upcase converts s to uppercase under locale's rules.
func Upcase(s string, locale string) string {
	switch locale {
	case "el":
		s = greekStripDiacritics(s)
	}
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := range runes {
		b.WriteString(upcaseRune(runes, i, locale))
	}
	return b.String()
}

// Downcase converts s to lowercase under locale's rules.
func Downcase(s string, locale string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := range runes {
		b.WriteString(downcaseRune(runes, i, locale))
	}
	return b.String()
}

// TitlecaseWord titlecases a single segment: the first codepoint
// titlecased, the rest downcased (§4.8, "titlecase the first codepoint
// of each segment and downcase the rest"). The nl hook recognizes a
// leading ij/IJ digraph and titlecases both letters.
func TitlecaseWord(word string, locale string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}

	if locale == "nl" && len(runes) >= 2 {
		a, b := runes[0], runes[1]
		if (a == 'i' || a == 'I') && (b == 'j' || b == 'J') {
			rest := Downcase(string(runes[2:]), locale)
			return "IJ" + rest
		}
	}

	first := titlecaseRune(runes[0])
	rest := Downcase(string(runes[1:]), locale)
	return string(first) + rest
}

// ASCII fast path: locale "any" excludes tr/az's I/i repurposing, so a
// plain bytewise transform handles every ASCII codepoint (§4.8).
func isPlainASCIIFast(locale string) bool {
	return locale == "" || locale == "any"
}

func upcaseRune(runes []rune, i int, locale string) string {
	r := runes[i]

	if isPlainASCIIFast(locale) && r <= 0x7E {
		if r >= 'a' && r <= 'z' {
			return string(r - 0x20)
		}
		return string(r)
	}

	if hook, ok := localeUpcaseHook(r, locale); ok {
		return hook
	}

	if up, ok := upperOf[r]; ok {
		return string(up)
	}
	if r == 0x00DF { // ß -> SS
		return "SS"
	}
	return string(r)
}

func downcaseRune(runes []rune, i int, locale string) string {
	r := runes[i]

	if isPlainASCIIFast(locale) && r <= 0x7E {
		if r >= 'A' && r <= 'Z' {
			return string(r + 0x20)
		}
		return string(r)
	}

	if hook, ok := localeDowncaseHook(runes, i, locale); ok {
		return hook
	}

	// After_I (root default, all locales): a standalone combining dot
	// above is dropped when it follows a plain I with no combining mark
	// above in between, so downcasing I+0307 doesn't produce a doubled
	// dot.
	if r == 0x0307 && afterI(runes, i) {
		return ""
	}

	// final_sigma: capital sigma downcases to ς at the end of a "word"
	// (preceding context cased, ignoring case-ignorables; following
	// context not cased, ignoring case-ignorables), else to σ.
	if r == 0x03A3 {
		if precedingIsCased(runes, i) && !followingIsCased(runes, i) {
			return string(rune(0x03C2))
		}
		return string(rune(0x03C3))
	}

	if lo, ok := lowerOf[r]; ok {
		return string(lo)
	}
	return string(r)
}

func titlecaseRune(r rune) rune {
	if up, ok := upperOf[r]; ok {
		return up
	}
	return r
}

// precedingIsCased/followingIsCased implement the "cased (case_ignorable)*"
// / "(case_ignorable)* cased" context tests final_sigma needs, skipping
// case-ignorable codepoints.
func precedingIsCased(runes []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if is.CaseIgnorable(runes[j]) {
			continue
		}
		return is.Cased(runes[j])
	}
	return false
}

func followingIsCased(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		if is.CaseIgnorable(runes[j]) {
			continue
		}
		return is.Cased(runes[j])
	}
	return false
}

// notBeforeDot reports whether the following context, after skipping
// case-ignorables, does NOT start with a combining dot above (U+0307).
func notBeforeDot(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		if runes[j] == 0x0307 {
			return false
		}
		if is.CaseIgnorable(runes[j]) {
			continue
		}
		return true
	}
	return true
}

// moreAbove reports whether the following context contains a combining
// mark above before the next non-combining codepoint.
func moreAbove(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		if is.CombiningAbove(runes[j]) {
			return true
		}
		if !is.CaseIgnorable(runes[j]) {
			return false
		}
	}
	return false
}

// afterSoftDotted reports whether the preceding context contains a
// soft-dotted codepoint with no intervening combining mark above.
func afterSoftDotted(runes []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if is.SoftDotted(runes[j]) {
			return true
		}
		if is.CombiningAbove(runes[j]) {
			return false
		}
		if !is.CaseIgnorable(runes[j]) {
			return false
		}
	}
	return false
}

// afterI reports whether the preceding context is a plain I with no
// intervening combining mark above.
func afterI(runes []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if runes[j] == 'I' {
			return true
		}
		if is.CombiningAbove(runes[j]) {
			return false
		}
		if !is.CaseIgnorable(runes[j]) {
			return false
		}
	}
	return false
}

// greekStripDiacritics implements the el upcase pipeline: NFD, strip
// combining diacritics above and the iota-subscript from Greek letters,
// recompose NFC (§4.8).
func greekStripDiacritics(s string) string {
	d := norm.NFD.String(s)
	runes := []rune(d)
	out := make([]rune, 0, len(runes))
	for i, r := range runes {
		if (is.GreekDiacriticAbove(r) || r == 0x0345) && precedesOrFollowsGreekLetter(runes, i) {
			continue
		}
		out = append(out, r)
	}
	return norm.NFC.String(string(out))
}

func precedesOrFollowsGreekLetter(runes []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if is.GreekLetter(runes[j]) {
			return true
		}
		if !is.CombiningAbove(runes[j]) && runes[j] != 0x0345 {
			return false
		}
	}
	return false
}
