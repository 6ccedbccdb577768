package gdsave

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidHeader is the error returned when a save buffer's
	// declared size is too small to contain the size header itself.
	ErrInvalidHeader = errors.New("invalid save header")

	// ErrInvalidKey is the error returned when a dictionary key
	// decodes to something other than a string or an integer.
	ErrInvalidKey = errors.New("dictionary key is not a string or integer")

	// ErrTooDeep is the error returned when a value's nesting exceeds
	// the depth limit. On decode this guards against corrupt or
	// adversarial buffers; on encode it catches cyclic values.
	ErrTooDeep = errors.New("value nesting exceeds depth limit")
)

// TypeError is the error returned when a value cannot be represented
// in the save wire format.
type TypeError struct {
	// Type is the name of the type that caused the error.
	Type string
	// Reason is an explanation of why the value isn't representable.
	Reason error
}

func (e TypeError) Error() string {
	return fmt.Sprintf("cannot serialize %s: %s", e.Type, e.Reason)
}

func (e TypeError) Unwrap() error {
	return e.Reason
}

func typeErr(v any, reason string, args ...any) error {
	ts := "nil"
	if t := reflect.TypeOf(v); t != nil {
		ts = t.String()
	}
	return TypeError{ts, fmt.Errorf(reason, args...)}
}
