package segdata

import "errors"

// Sentinel errors returned by the loader, wrapped with the offending
// locale or kind via fmt.Errorf's %w so callers can errors.Is against them.
var (
	// ErrUnknownLocale is returned when a caller asks Segments or Segment
	// for a locale that has no data file of its own; ancestors' files are
	// not consulted.
	ErrUnknownLocale = errors.New("segdata: unknown locale")

	// ErrUnknownSegmentType is returned when a caller asks Segment for a
	// segment kind absent from a locale's own data file, or a data file
	// names a type this loader doesn't recognize.
	ErrUnknownSegmentType = errors.New("segdata: unknown segment type")
)
