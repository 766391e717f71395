package rules

import "errors"

var (
	// ErrVariableNotFound is returned when a rule or variable references
	// a $name with no corresponding <variable> definition in scope.
	ErrVariableNotFound = errors.New("rules: variable not found")

	// ErrInvalidRule is returned when a rule's text doesn't split cleanly
	// on exactly one ÷ or × operator.
	ErrInvalidRule = errors.New("rules: invalid rule")

	// ErrRegexCompile wraps a regexp.Compile failure on an (expanded)
	// rule side, keeping the offending pattern attached via %w/%v chains.
	ErrRegexCompile = errors.New("rules: regex compile error")
)
