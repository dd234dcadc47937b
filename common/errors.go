package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorInvalidShape is returned when input rows do not have 2 or 3 columns.
	ErrorInvalidShape = errors.New("number of columns must be 2 or 3")
	// ErrorUnorderedTimestamps is returned when the timestamp column is not
	// non-decreasing.
	ErrorUnorderedTimestamps = errors.New("timestamps must be ordered")
	// ErrorOutOfRangeCoordinate is returned when the great-circle metric is
	// selected but latitude or longitude bounds are violated.
	ErrorOutOfRangeCoordinate = errors.New("coordinates out of range for great-circle distance")
	// ErrorInsufficientGraph is returned when the proximity graph ends up with
	// no edges. Provide a longer trajectory or increase r2.
	ErrorInsufficientGraph = errors.New("proximity graph has no edges")
)
