package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gocldr/segment/internal/segdata"
)

// variableRef matches a $Name token in a variable pattern or rule text.
// Names are ASCII identifiers, matching the data files' $CamelCase
// convention (e.g. $ALetter, $MidNumLetQ).
var variableRef = regexp.MustCompile(`\$[A-Za-z][A-Za-z0-9]*`)

// expandVariables resolves every $name reference in vars transitively,
// so that a variable may reference one defined earlier in the same list
// (§4.2 step 1: "expand $name variable references transitively"). It
// returns a name→fully-expanded-pattern map.
func expandVariables(vars []segdata.Variable) (map[string]string, error) {
	raw := make(map[string]string, len(vars))
	order := make([]string, 0, len(vars))
	for _, v := range vars {
		name := strings.TrimPrefix(v.Name, "$")
		if _, dup := raw[name]; !dup {
			order = append(order, name)
		}
		raw[name] = v.Pattern
	}

	expanded := make(map[string]string, len(raw))
	var resolve func(name string, seen map[string]bool) (string, error)
	resolve = func(name string, seen map[string]bool) (string, error) {
		if done, ok := expanded[name]; ok {
			return done, nil
		}
		if seen[name] {
			return "", fmt.Errorf("rules: variable %s is defined in terms of itself", name)
		}
		pattern, ok := raw[name]
		if !ok {
			return "", fmt.Errorf("rules: %w: %s", ErrVariableNotFound, name)
		}
		seen[name] = true
		out := substitute(pattern, func(ref string) (string, error) {
			return resolve(ref, seen)
		})
		result, err := out()
		if err != nil {
			return "", err
		}
		expanded[name] = result
		return result, nil
	}

	for _, name := range order {
		if _, err := resolve(name, map[string]bool{}); err != nil {
			return nil, err
		}
	}
	return expanded, nil
}

// substitute replaces every $name token in s via lookup, returning a
// thunk so callers can surface the first error encountered.
func substitute(s string, lookup func(name string) (string, error)) func() (string, error) {
	return func() (string, error) {
		var firstErr error
		out := variableRef.ReplaceAllStringFunc(s, func(tok string) string {
			if firstErr != nil {
				return ""
			}
			val, err := lookup(tok[1:])
			if err != nil {
				firstErr = err
				return ""
			}
			return val
		})
		if firstErr != nil {
			return "", firstErr
		}
		return out, nil
	}
}

// expandText substitutes every $name in rule or template text using an
// already-fully-expanded variable map (no further recursion needed, since
// vars map's values are themselves fully expanded).
func expandText(text string, vars map[string]string) (string, error) {
	var firstErr error
	out := variableRef.ReplaceAllStringFunc(text, func(tok string) string {
		name := tok[1:]
		val, ok := vars[name]
		if !ok {
			firstErr = fmt.Errorf("rules: %w: %s", ErrVariableNotFound, name)
			return ""
		}
		return val
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// stripExtendedWhitespace removes unescaped, unbracketed whitespace from
// a pattern so rule authors can lay out long alternations legibly, since
// Go's regexp package has no (?x) extended mode. Whitespace inside a
// character class ([...]) is preserved; a backslash always escapes the
// following character.
func stripExtendedWhitespace(pattern string) string {
	var b strings.Builder
	inClass := false
	escaped := false
	for _, r := range pattern {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			b.WriteRune(r)
			escaped = true
		case r == '[':
			inClass = true
			b.WriteRune(r)
		case r == ']':
			inClass = false
			b.WriteRune(r)
		case !inClass && (r == ' ' || r == '\t' || r == '\n'):
			// drop
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
