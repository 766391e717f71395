package rules

import (
	"regexp"
	"strings"
)

// suppressionRuleID sits ahead of this module's structural sentence-break
// rule (id 10), so an abbreviation like "Mr." is checked before the
// generic "$STerm $Sp ÷" rule gets a chance to fire (§4.4's id=10.5
// example assumes a final break rule numbered above 10; this data's
// final break rule is the 10, so the suppression rule id sits below it
// instead, at 9.5).
const suppressionRuleID = 9.5

// hardcoded fragments mirroring the $Close/$Sp/$ParaSep/$SpacesBefore
// variables a sentence_break data file defines, since the suppression
// template (§4.4) is synthesized independently of a locale's own
// variable set.
const (
	suppClose  = `[)\]"'\x{2019}]`
	suppSp     = `[\p{Zs}]`
	suppPara   = `[\n\r\x{2029}]`
	suppSpaces = `[\p{Zs}]`
)

// compileSuppressionRule builds the dynamic no-break rule that keeps a
// sentence-break evaluator from splitting after a known abbreviation:
// "$SpacesBefore? <abbrev> $Close* $Sp* $ParaSep?" as a no-break left
// pattern, ANY on the right.
func compileSuppressionRule(abbrevs []string) (Rule, error) {
	alts := make([]string, len(abbrevs))
	for i, a := range abbrevs {
		alts[i] = regexp.QuoteMeta(a)
	}
	body := suppSpaces + `?(?:` + strings.Join(alts, "|") + `)` + suppClose + `*` + suppSp + `*` + suppPara + `?`

	left, err := regexp.Compile(regexFlags + `(?i)(?:` + body + `)\z`)
	if err != nil {
		return Rule{}, err
	}
	return Rule{ID: suppressionRuleID, Op: NoBreak, Left: left, Right: nil}, nil
}
