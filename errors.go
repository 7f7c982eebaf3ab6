package dragon

import "errors"

var (
	// ErrInvalidOrder is returned for negative orders and orders whose vertex count
	// cannot be represented.
	ErrInvalidOrder = errors.New("dragon: invalid order")
	// ErrOrderLimit is returned for orders above the configured safety ceiling. See
	// [Options.MaxOrder].
	ErrOrderLimit = errors.New("dragon: order exceeds limit")
	// ErrDegenerateSegment is returned when the start and end points coincide.
	ErrDegenerateSegment = errors.New("dragon: start and end points coincide")
	// ErrInvalidPoint is returned for points with infinite or NaN coordinates.
	ErrInvalidPoint = errors.New("dragon: point is not finite")
	ErrUnknownStyle = errors.New("dragon: unknown render style")
	// ErrInvalidFactor is returned for round and skew factors outside their domain.
	ErrInvalidFactor = errors.New("dragon: factor out of range")
	ErrNoVertices    = errors.New("dragon: empty vertex sequence")
	// ErrNonUniformSegments is returned by the rounded encoder when the vertex sequence
	// contains segments of differing lengths.
	ErrNonUniformSegments = errors.New("dragon: segments differ in length")
)
