package tablegrid

import "github.com/pkg/errors"

var (
	// ErrInvalidGeometry is returned when a bounding polygon has fewer than
	// three vertices or collapses to zero width or height.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidViewport is returned for viewports without a positive size.
	ErrInvalidViewport = errors.New("invalid viewport")

	// ErrNoRulings is returned when a page has no usable ruling lines.
	ErrNoRulings = errors.New("no ruling lines found")
)
