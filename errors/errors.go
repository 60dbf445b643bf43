// Package errors provides a const-friendly error type and helpers for
// wrapping errors with sentinel causes.
package errors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrSeparator separates an error message from its cause in the rendered message.
const ErrSeparator = " -- "

// Error is a string based error type allowing errors to be defined as constants.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Is reports whether target carries this error, either exactly or as the
// sentinel prefix of a wrapped message.
func (e Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return e.Error() == target.Error() || strings.HasPrefix(target.Error(), e.Error()+ErrSeparator)
}

// As sets target to this error's value if target is a settable string based Error type.
func (e Error) As(target any) bool {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return false
	}

	elem := v.Elem()
	if elem.Kind() != reflect.String || elem.Type().Name() != "Error" || !elem.CanSet() {
		return false
	}

	elem.SetString(string(e))
	return true
}

// Wrap returns an error carrying this Error as its sentinel and err as its cause.
func (e Error) Wrap(err error) error {
	return wrappedError{sentinel: e, cause: err}
}

type wrappedError struct {
	sentinel Error
	cause    error
}

func (w wrappedError) Error() string {
	if w.cause == nil {
		return w.sentinel.Error()
	}
	return fmt.Sprintf("%s%s%v", w.sentinel.Error(), ErrSeparator, w.cause)
}

func (w wrappedError) Is(target error) bool {
	return w.sentinel.Is(target)
}

func (w wrappedError) As(target any) bool {
	return w.sentinel.As(target)
}

func (w wrappedError) Unwrap() error {
	return w.cause
}

// The below are wrappers as this package steals the stdlib errors namespace.

// Is reports whether any error in err's tree matches target.
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target and sets it.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns a new error with the specified message.
func New(message string) error {
	return errors.New(message)
}
