package physics

import "errors"

var (
	// ErrConfiguration is returned for invalid world or body parameters.
	ErrConfiguration = errors.New("physics: invalid configuration")
	// ErrWorldLocked is returned when a body is added or removed while the world is stepping.
	ErrWorldLocked = errors.New("physics: world is stepping")
	// ErrBodyNotFound is returned when removing a body the world does not hold.
	ErrBodyNotFound = errors.New("physics: body not in world")
)
