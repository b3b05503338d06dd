package structs

import "time"

type pointParams struct {
	x int
	y float64
}

type retrySpec struct {
	attempts int
	backoff  time.Duration
	clock    func() time.Time
}

type labelSchema struct {
	text string
}

// Taken already exists, so a schema generating it must be rejected.
type Taken int

type takenParams struct {
	n int
}

type embedsParams struct {
	pointParams
}

type notStruct int

type boxParams[T any] struct {
	v T
}
