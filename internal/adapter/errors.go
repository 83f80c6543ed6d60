package adapter

import (
	"errors"
	"fmt"

	"github.com/dshills/cellwindow/internal/console"
)

// Adapter errors.
var (
	// ErrInitialization matches every error returned by New and Wrap.
	ErrInitialization = errors.New("window initialization failed")

	// ErrAlreadyInitialized indicates another adapter owns the root console.
	ErrAlreadyInitialized = errors.New("root console already in use")

	// ErrInvalidSize indicates a zero or negative window size.
	ErrInvalidSize = errors.New("invalid window size")

	// ErrEventDecode indicates a native event with no generic equivalent.
	ErrEventDecode = errors.New("unrecognized native event")
)

// InitializationError reports why a window could not be created.
type InitializationError struct {
	Op  string // Step that failed (e.g., "validate", "acquire", "init")
	Err error  // Underlying error
}

func newInitError(op string, err error) *InitializationError {
	return &InitializationError{Op: op, Err: err}
}

func (e *InitializationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", ErrInitialization, e.Op, e.Err)
	}
	return fmt.Sprintf("%v: %s", ErrInitialization, e.Op)
}

func (e *InitializationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for InitializationError.
// Matches ErrInitialization as well as the wrapped error.
func (e *InitializationError) Is(target error) bool {
	if e == nil {
		return false
	}
	if target == ErrInitialization {
		return true
	}
	if t, ok := target.(*InitializationError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}

// DecodeError describes a native event that mapped to input.Unknown.
// It is logged, never returned: polling always continues.
type DecodeError struct {
	Type   console.EventType
	Native string
}

func (e *DecodeError) Error() string {
	if e.Native != "" {
		return fmt.Sprintf("%v: %s (%s)", ErrEventDecode, e.Type, e.Native)
	}
	return fmt.Sprintf("%v: %s", ErrEventDecode, e.Type)
}

func (e *DecodeError) Unwrap() error {
	return ErrEventDecode
}
