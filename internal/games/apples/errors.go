package apples

import "errors"

var (
	// ErrOutOfBounds reports a coordinate outside the grid. Input adapters
	// clamp before calling in, so seeing this means a mapping bug upstream.
	ErrOutOfBounds = errors.New("apples: coordinate out of bounds")

	// ErrInvalidState reports a tick or selection outside a running round.
	ErrInvalidState = errors.New("apples: round is not running")
)
