// Package is provides Unicode property predicates used by the segmentation
// data layer and the casing engine: whitespace (for trimming), and the
// case-related derived properties (Cased, Case_Ignorable, Soft_Dotted,
// combining-mark-above) that the standard unicode package does not expose
// directly.
package is

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Whitespace reports whether r has the Unicode White_Space property. It
// backs the Segmenter Driver's trim predicate (a segment is whitespace-only
// if every rune satisfies this).
func Whitespace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.White_Space, r)
}

// softDotted lists the Soft_Dotted codepoints relevant to special casing:
// dotted letters whose dot is removed when a combining mark above is added
// (e.g. i + combining dot above).
var softDotted = rangetable.New(
	'i', 'j',
	0x012F, // LATIN SMALL LETTER I WITH OGONEK
	0x0268, // LATIN SMALL LETTER I WITH STROKE
	0x0456, // CYRILLIC SMALL LETTER BYELORUSSIAN-UKRAINIAN I
	0x0458, // CYRILLIC SMALL LETTER JE
	0x1D62, // LATIN SUBSCRIPT SMALL LETTER I
	0x1E2D, // LATIN SMALL LETTER I WITH TILDE BELOW
	0x1ECB, // LATIN SMALL LETTER I WITH DOT BELOW
)

// SoftDotted reports whether r is a Soft_Dotted codepoint: its lowercase
// form carries an explicit dot that a following combining mark above would
// otherwise collide with. Used by the after_soft_dotted special-casing context.
func SoftDotted(r rune) bool {
	return unicode.Is(softDotted, r)
}

// caseIgnorable lists word-medial punctuation that special-casing contexts
// skip over when scanning for the nearest cased neighbor.
var caseIgnorable = rangetable.New(
	'\'', '.', ':', '·', '’',
)

// CaseIgnorable reports whether r should be skipped when scanning for a
// preceding or following cased letter (final_sigma, after_i, after_soft_dotted).
func CaseIgnorable(r rune) bool {
	if unicode.Is(caseIgnorable, r) {
		return true
	}
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Cf, r)
}

// Cased approximates the derived Cased property: codepoints that have an
// uppercase, lowercase, or titlecase form, or are flagged
// Other_Uppercase/Other_Lowercase.
func Cased(r rune) bool {
	switch {
	case unicode.IsUpper(r), unicode.IsLower(r), unicode.IsTitle(r):
		return true
	case unicode.Is(unicode.Other_Uppercase, r), unicode.Is(unicode.Other_Lowercase, r):
		return true
	}
	return false
}

// combiningAbove lists the combining marks consulted by the more_above,
// after_soft_dotted and after_i contexts: accents and breathing marks,
// which render above the base letter, plus the Greek iota subscript
// (U+0345), which renders below it.
var combiningAbove = rangetable.New(
	0x0300, 0x0301, 0x0302, 0x0303, 0x0304, 0x0305, 0x0306, 0x0307,
	0x0308, 0x0309, 0x030A, 0x030B, 0x030C, 0x030D, 0x030E, 0x030F,
	0x0310, 0x0311, 0x0312, 0x0313, 0x0314, 0x0315,
	0x033D, 0x033E, 0x033F,
	0x0342, 0x0345, // Greek perispomeni, iota subscript
)

// CombiningAbove reports whether r is one of the combining-mark-above
// codepoints.
func CombiningAbove(r rune) bool {
	return unicode.Is(combiningAbove, r)
}

// GreekDiacriticAbove reports whether r is a combining mark stripped during
// Greek upcasing: accents, breathing marks, and the iota subscript.
func GreekDiacriticAbove(r rune) bool {
	switch r {
	case 0x0300, 0x0301, 0x0304, 0x0306, 0x0308, 0x0313, 0x0314, 0x0342, 0x0345:
		return true
	}
	return false
}

// GreekLetter reports whether r is a base Greek letter (the scope within
// which diacritic stripping applies during upcasing).
func GreekLetter(r rune) bool {
	return unicode.Is(unicode.Greek, r)
}
