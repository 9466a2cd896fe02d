package mosaic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidResolution is returned for a grid resolution below one.
	ErrInvalidResolution = errors.New("invalid grid resolution")

	// ErrEmptyImage is returned when the source image has no pixels.
	ErrEmptyImage = errors.New("image has no pixels")

	// ErrInvariant is the kind shared by every *InvariantError.
	ErrInvariant = errors.New("mosaic invariant violated")
)

// InvariantError reports an internal defect: a cell outside the image, a
// sample point outside the image, or pixels covered zero or several times.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", ErrInvariant.Error(), e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvariant.Error(), e.Op, e.Msg)
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }

func invariantf(op, format string, args ...any) error {
	return &InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
