package segment

import "github.com/gocldr/segment/internal/localeresolve"

// Locale is a canonicalized BCP47-ish locale identifier, e.g. "en-US" or
// "zh-Hant-HK". The zero value means "unspecified" (callers get the
// domain-appropriate default: root for segmentation, any for casing).
type Locale string

// String implements fmt.Stringer.
func (l Locale) String() string { return string(l) }

// MarshalText implements encoding.TextMarshaler.
func (l Locale) MarshalText() ([]byte, error) { return []byte(l), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Locale) UnmarshalText(b []byte) error {
	*l = Locale(b)
	return nil
}

// CanonicalName implements localeresolve.StructuredTag, so a Locale value
// round-trips through the resolver like any other accepted input form.
func (l Locale) CanonicalName() string { return string(l) }

var _ localeresolve.StructuredTag = Locale("")
