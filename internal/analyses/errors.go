package analyses

import "errors"

var (
	// ErrNotFound signals an unknown analysis id.
	ErrNotFound = errors.New("analysis not found")

	// ErrInvalidInput signals an empty idea or claim after trimming.
	ErrInvalidInput = errors.New("idea and claim are required")
)
