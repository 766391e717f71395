package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gocldr/segment/internal/segdata"
)

const (
	opBreak   = "÷"
	opNoBreak = "×"
)

// regexFlags is prepended to every compiled side: (?s) makes "." match
// newline too (spec.md's "dot matches newline"); Go's regexp is already
// Unicode-aware and RE2 already treats "$" as end-of-text-only when used
// without (?m), which this compiler never sets, matching "dollar matches
// end only". Go has no "Unicode line-break recognition" flag distinct
// from its default behavior, so none is added; anchors use \A/\z rather
// than ^/$ to make that explicit regardless.
const regexFlags = "(?s)"

// Compile turns one locale's effective (ancestor-merged) raw segment data
// into a RuleSet, with suppression handling controlled by
// suppressionsEnabled (§4.4: suppressions may be turned off by caller
// option).
func Compile(data segdata.RawSegmentData, suppressionsEnabled bool) (*RuleSet, error) {
	vars, err := expandVariables(data.Variables)
	if err != nil {
		return nil, err
	}

	rs := &RuleSet{}
	for _, raw := range data.Rules {
		rule, err := compileRule(raw, vars)
		if err != nil {
			return nil, err
		}
		rs.Rules = append(rs.Rules, rule)
	}

	if suppressionsEnabled && len(data.Suppressions) > 0 {
		supp, err := compileSuppressionRule(data.Suppressions)
		if err != nil {
			return nil, err
		}
		rs.Rules = append(rs.Rules, supp)
	}

	sortRules(rs.Rules)
	return rs, nil
}

func compileRule(raw segdata.RawRule, vars map[string]string) (Rule, error) {
	text, err := expandText(raw.Text, vars)
	if err != nil {
		return Rule{}, fmt.Errorf("rules: rule %v: %w", raw.ID, err)
	}

	left, op, right, err := splitOnOperator(text)
	if err != nil {
		return Rule{}, fmt.Errorf("rules: rule %v: %w", raw.ID, err)
	}

	leftRe, err := compileSide(left, false)
	if err != nil {
		return Rule{}, fmt.Errorf("rules: rule %v: %w: %v", raw.ID, ErrRegexCompile, err)
	}
	rightRe, err := compileSide(right, true)
	if err != nil {
		return Rule{}, fmt.Errorf("rules: rule %v: %w: %v", raw.ID, ErrRegexCompile, err)
	}

	return Rule{ID: raw.ID, Op: op, Left: leftRe, Right: rightRe}, nil
}

// splitOnOperator splits rule text on its single ÷ or × token, trimming
// surrounding whitespace from both sides. Exactly one operator must be
// present (§3: "a single occurrence of the ÷ or × operator").
func splitOnOperator(text string) (left string, op Op, right string, err error) {
	text = strings.TrimSpace(text)
	bi := strings.Index(text, opBreak)
	ni := strings.Index(text, opNoBreak)
	switch {
	case strings.Count(text, opBreak)+strings.Count(text, opNoBreak) > 1:
		return "", 0, "", fmt.Errorf("%w: more than one ÷ or × in %q", ErrInvalidRule, text)
	case bi >= 0:
		return strings.TrimSpace(text[:bi]), Break, strings.TrimSpace(text[bi+len(opBreak):]), nil
	case ni >= 0:
		return strings.TrimSpace(text[:ni]), NoBreak, strings.TrimSpace(text[ni+len(opNoBreak):]), nil
	default:
		return "", 0, "", fmt.Errorf("%w: no ÷ or × in %q", ErrInvalidRule, text)
	}
}

// compileSide compiles one side of a rule. An empty side is ANY (nil
// regex, matches unconditionally). anchorStart selects \A (right side,
// start-of-text) vs \z (left side, end-of-text).
func compileSide(side string, anchorStart bool) (*regexp.Regexp, error) {
	side = stripExtendedWhitespace(side)
	if side == "" {
		return nil, nil
	}
	var pattern string
	if anchorStart {
		pattern = regexFlags + `\A(?:` + side + `)`
	} else {
		pattern = regexFlags + `(?:` + side + `)\z`
	}
	return regexp.Compile(pattern)
}

// sortRules orders rules ascending by id (lower fires first, §3).
func sortRules(rules []Rule) {
	for i := 1; i < len(rules); i++ {
		for j := i; j > 0 && rules[j-1].ID > rules[j].ID; j-- {
			rules[j-1], rules[j] = rules[j], rules[j-1]
		}
	}
}
