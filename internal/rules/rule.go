// Package rules is the Rule Compiler and Rule Evaluator: it turns a
// locale's raw segment data into compiled regexes and walks those regexes
// against a string's already-accumulated prefix and not-yet-consumed
// suffix to decide where a segmentation mode breaks.
package rules

import "regexp"

// Op is a rule's operator: break or no-break.
type Op int

const (
	NoBreak Op = iota
	Break
)

func (op Op) String() string {
	if op == Break {
		return "÷"
	}
	return "×"
}

// Rule is one compiled rule. Left is anchored at end-of-string, Right at
// start-of-string; either may be nil, meaning ANY (matches the empty
// string unconditionally, per spec.md's ANY sentinel).
type Rule struct {
	ID    float64
	Op    Op
	Left  *regexp.Regexp
	Right *regexp.Regexp
}

// RuleSet is every compiled rule for one (locale, kind) pair, in
// ascending id order, plus the synthesized suppression rule (if any).
type RuleSet struct {
	Rules []Rule
}
