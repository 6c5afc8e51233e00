package game

import "errors"

// ErrInvalidGenerationParameters is returned in strict mode when a terrain
// draw yields a non-positive or out-of-range size.
var ErrInvalidGenerationParameters = errors.New("game: invalid generation parameters")
