package rolling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter reports non-positive lag or skip, a lag longer
	// than the sequence, a missing input array, or an unsupported moment
	// order. Validation runs before any output allocation.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrResourceExhausted reports that a call would exceed the configured
	// output allocation budget. The check covers every output array of the
	// call, so failure is all-or-nothing.
	ErrResourceExhausted = errors.New("resource exhausted")
)

// wrapInvalid tags a validation error with ErrInvalidParameter while
// keeping the failing constraint in the message.
func wrapInvalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
}
