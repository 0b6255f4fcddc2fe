package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidDimensions = errors.New("board dimensions out of range")

// ConfigError reports a board that cannot be built with the requested size.
type ConfigError struct {
	Width, Height int
}

// [*ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return fmt.Sprintf(
		"invalid board size %dx%d: each side must be in [1, %d]",
		e.Width, e.Height, MaxDimension,
	)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidDimensions
}

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
