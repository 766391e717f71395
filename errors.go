package segment

import (
	"errors"
	"fmt"

	"github.com/gocldr/segment/internal/dict"
	"github.com/gocldr/segment/internal/localeresolve"
	"github.com/gocldr/segment/internal/rules"
	"github.com/gocldr/segment/internal/segdata"
)

// ErrorKind classifies the tagged errors this package returns (§7).
type ErrorKind string

const (
	ErrUnknownLocale      ErrorKind = "unknown_locale"
	ErrUnknownSegmentType ErrorKind = "unknown_segment_type"
	ErrInvalidBreakKind   ErrorKind = "invalid_break_kind"
	ErrVariableNotFound   ErrorKind = "variable_not_found"
	ErrInvalidRule        ErrorKind = "invalid_rule"
	ErrRegexCompileError  ErrorKind = "regex_compile_error"
	ErrDictionaryUnavail  ErrorKind = "dictionary_unavailable"
)

// Error is the structured error result every fallible operation other
// than BreakBool returns (§7: "break? raises... all other operations
// return a tagged result").
type Error struct {
	Kind ErrorKind
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("segment: %s: %v", e.Kind, e.err)
	}
	return fmt.Sprintf("segment: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.err }

// classify maps an internal error to its §7 ErrorKind by walking the
// sentinel chain each internal package exports.
func classify(err error) *Error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, segdata.ErrUnknownLocale), errors.Is(err, localeresolve.ErrUnknownLocale):
		return &Error{Kind: ErrUnknownLocale, err: err}
	case errors.Is(err, segdata.ErrUnknownSegmentType):
		return &Error{Kind: ErrUnknownSegmentType, err: err}
	case errors.Is(err, rules.ErrVariableNotFound):
		return &Error{Kind: ErrVariableNotFound, err: err}
	case errors.Is(err, rules.ErrInvalidRule):
		return &Error{Kind: ErrInvalidRule, err: err}
	case errors.Is(err, rules.ErrRegexCompile):
		return &Error{Kind: ErrRegexCompileError, err: err}
	case errors.Is(err, dict.ErrUnavailable):
		return &Error{Kind: ErrDictionaryUnavail, err: err}
	default:
		return &Error{Kind: ErrorKind("internal"), err: err}
	}
}
