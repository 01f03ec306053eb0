package record

import (
	"errors"
	"fmt"
)

// ErrRowFailed is matched by every row-local error kind.
var ErrRowFailed = errors.New("row expansion failed")

// MissingFieldError reports a mandatory field that is absent after normalization.
type MissingFieldError struct {
	Field  string
	Entity string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing mandatory field %q for %s", e.Field, e.Entity)
}

// Is reports whether target is ErrRowFailed.
func (e *MissingFieldError) Is(target error) bool { return target == ErrRowFailed }

// MalformedDateError reports an event date that cannot be resolved.
type MalformedDateError struct {
	Field  string
	Value  string
	Reason string
}

func (e *MalformedDateError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("malformed date in %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed date %q in %q: %s", e.Value, e.Field, e.Reason)
}

// Is reports whether target is ErrRowFailed.
func (e *MalformedDateError) Is(target error) bool { return target == ErrRowFailed }

// UnresolvedTermError reports a free-text value that maps to no vocabulary term.
type UnresolvedTermError struct {
	Vocabulary string
	Value      string
}

func (e *UnresolvedTermError) Error() string {
	return fmt.Sprintf("cannot resolve %q in vocabulary %s", e.Value, e.Vocabulary)
}

// Is reports whether target is ErrRowFailed.
func (e *UnresolvedTermError) Is(target error) bool { return target == ErrRowFailed }

// InvalidValueError reports a present value that does not parse as the kind
// the field requires, such as a non-numeric coordinate.
type InvalidValueError struct {
	Field  string
	Entity string
	Value  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q in field %q for %s", e.Value, e.Field, e.Entity)
}

// Is reports whether target is ErrRowFailed.
func (e *InvalidValueError) Is(target error) bool { return target == ErrRowFailed }
