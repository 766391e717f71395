package rules

import "regexp"

// Decision is the Rule Evaluator's output: which operator fired, and how
// `after` splits into the consumed piece and the remainder.
type Decision struct {
	Op        Op
	Consumed  string
	Remainder string
}

// Evaluate walks rs in ascending id order and returns the first rule that
// fires, per §4.3. If after is empty, the decision is always Break with
// nothing consumed. If no rule fires while after is nonempty, the default
// rule splits off after's first codepoint.
func Evaluate(before, after string, rs *RuleSet) Decision {
	if after == "" {
		return Decision{Op: Break}
	}

	for _, rule := range rs.Rules {
		if rule.Left == nil && rule.Right == nil {
			continue // degenerate: both ANY, never fires
		}
		if rule.Left != nil && !rule.Left.MatchString(before) {
			continue
		}
		consumed, remainder, ok := matchRight(rule.Right, after)
		if !ok {
			continue
		}
		return Decision{Op: rule.Op, Consumed: consumed, Remainder: remainder}
	}

	return firstCodepoint(after)
}

// matchRight reports whether right matches the start of after, and if so
// how much of after it consumed. A nil right is ANY: it always matches,
// consuming exactly the first codepoint.
func matchRight(right *regexp.Regexp, after string) (consumed, remainder string, ok bool) {
	if right == nil {
		d := firstCodepoint(after)
		return d.Consumed, d.Remainder, true
	}
	loc := right.FindStringIndex(after)
	if loc == nil || loc[0] != 0 {
		return "", "", false
	}
	return after[:loc[1]], after[loc[1]:], true
}

func firstCodepoint(s string) Decision {
	for i := range s {
		if i == 0 {
			continue
		}
		return Decision{Op: Break, Consumed: s[:i], Remainder: s[i:]}
	}
	return Decision{Op: Break, Consumed: s, Remainder: ""}
}
