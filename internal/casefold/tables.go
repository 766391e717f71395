package casefold

// commonFold holds CaseFolding.txt's status-C rows: one-to-one,
// context-free folds. It also stands in for status-F rows whose full
// fold happens to be a single codepoint (the common case).
//
// This is a curated subset spanning ASCII, Latin-1 Supplement, Latin
// Extended-A, Greek, and Cyrillic, rather than the complete UCD table;
// see cmd/gentables for how a full table would be regenerated from
// CaseFolding.txt.
var commonFold = buildCommonFold()

// fullFold holds status-F rows whose fold expands to more than one
// codepoint (e.g. ß → "ss"), plus İ's default (non-Turkic) fold.
var fullFold = map[rune]string{
	0x00DF: "ss",     // LATIN SMALL LETTER SHARP S
	0x0130: "i̇", // LATIN CAPITAL LETTER I WITH DOT ABOVE
	0xFB00: "ff",
	0xFB01: "fi",
	0xFB02: "fl",
	0xFB03: "ffi",
	0xFB04: "ffl",
	0x0149: "ʼn", // LATIN SMALL LETTER N PRECEDED BY APOSTROPHE
}

// turkicFold holds status-T rows, substituted for C/F when the caller
// requests Turkic mode (§4.8).
var turkicFold = map[rune]string{
	0x0049: "ı", // I -> dotless i
	0x0130: "i",       // İ -> i (drop the combining dot)
}

func buildCommonFold() map[rune]rune {
	m := make(map[rune]rune, 512)

	for r := 'A'; r <= 'Z'; r++ {
		m[r] = r + ('a' - 'A')
	}

	// Latin-1 Supplement: À-Þ (skip × at 0x00D7) -> à-þ. ß and ÿ have no
	// simple C fold (ß is F-only; ÿ already lowercase).
	for r := rune(0x00C0); r <= 0x00DE; r++ {
		if r == 0x00D7 {
			continue
		}
		m[r] = r + 0x20
	}
	m[0x00B5] = 0x03BC // MICRO SIGN -> GREEK SMALL LETTER MU

	// Latin Extended-A: mostly alternating capital/small pairs.
	for r := rune(0x0100); r <= 0x0137; r += 2 {
		m[r] = r + 1
	}
	for r := rune(0x0139); r <= 0x0148; r += 2 {
		m[r] = r + 1
	}
	for r := rune(0x014A); r <= 0x0177; r += 2 {
		m[r] = r + 1
	}
	m[0x0178] = 0x00FF // Ÿ -> ÿ
	for r := rune(0x0179); r <= 0x017E; r += 2 {
		m[r] = r + 1
	}

	// Greek: capital alpha..omega -> small, skipping the unassigned slot
	// at 0x03A2; final sigma folds to sigma.
	for r := rune(0x0391); r <= 0x03A9; r++ {
		if r == 0x03A2 {
			continue
		}
		m[r] = r + 0x20
	}
	m[0x03C2] = 0x03C3 // final sigma -> sigma

	// Cyrillic.
	for r := rune(0x0410); r <= 0x042F; r++ {
		m[r] = r + 0x20
	}
	for r := rune(0x0400); r <= 0x040F; r++ {
		m[r] = r + 0x50
	}

	return m
}
