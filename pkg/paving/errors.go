package paving

import (
	"errors"
	"fmt"
)

// Sentinel errors for the taxonomy in spec §7. Each is fatal for the
// call that produced it; none is silently recovered inside the core.
var (
	ErrDimensionMismatch = errors.New("paving: dimension mismatch")
	ErrGridMismatch      = errors.New("paving: grid mismatch")
	ErrInvalidState      = errors.New("paving: invalid internal state")
	ErrEmptyInterior     = errors.New("paving: box has non-positive width on some axis")
	ErrIO                = errors.New("paving: persistence I/O failure")
)

func dimensionMismatchf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrDimensionMismatch}, args...)...)
}

func gridMismatchf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrGridMismatch}, args...)...)
}

func invalidStatef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidState}, args...)...)
}

func emptyInteriorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrEmptyInterior}, args...)...)
}
