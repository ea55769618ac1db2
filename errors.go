package svgpath

import "errors"

var (
	// ErrInvalidReversal is returned when reversing a path with fewer than two segments.
	ErrInvalidReversal = errors.New("path must have at least two segments to be reversed")

	// ErrNegativeRadius is returned for arcs with a negative radius, usually after scaling by a negative factor.
	ErrNegativeRadius = errors.New("negative arc radius")
)
