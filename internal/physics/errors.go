package physics

import "errors"

var (
	// ErrWorldLocked is returned when a mutation is attempted mid-step.
	ErrWorldLocked = errors.New("physics: world is locked")

	// ErrUnknownBody is returned for handles that do not refer to a live body.
	ErrUnknownBody = errors.New("physics: unknown body")
)
