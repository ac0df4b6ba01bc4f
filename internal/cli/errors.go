package cli

import (
	"errors"
	"fmt"
)

// New creates a new CLI error
func New(message string) Err {
	return Err{message: message}
}

// NewWrapped creates a new CLI error with the wrapped cause's details
// hidden from the resulting error message
func NewWrapped(message string, err error) Err {
	return Err{message: message, cause: err}
}

// NewPrivileged creates a new CLI error with the wrapped cause's details
// exposed in the resulting error message
func NewPrivileged(message string, err error) PrivilegedErr {
	return PrivilegedErr{NewWrapped(message, err)}
}

// Err is a CLI error
type Err struct {
	message string
	cause   error
}

func (err Err) Error() string { return err.message }

// Unwrap returns the wrapped cause
func (err Err) Unwrap() error { return err.cause }

// RootCause returns the first non-CLI error in the chain of wrapped causes
func (err Err) RootCause() error { return findRootCause(err.cause) }

func (err Err) String() string {
	if err.cause == nil {
		return err.message
	}

	var cause string
	switch c := err.cause.(type) {
	case Err:
		cause = c.String()
	case PrivilegedErr:
		cause = c.String()
	default:
		cause = c.Error()
	}
	return fmt.Sprintf("%s: %s", err.message, cause)
}

// PrivilegedErr is a privileged CLI error
type PrivilegedErr struct {
	Err
}

func (err PrivilegedErr) Error() string {
	if err.cause == nil {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.message, err.RootCause().Error())
}

func findRootCause(err error) error {
	if err == nil {
		return nil
	}
	var cliErr Err
	switch e := err.(type) {
	case Err:
		cliErr = e
	case PrivilegedErr:
		cliErr = e.Err
	default:
		return err
	}
	if cliErr.cause == nil {
		return errors.New(cliErr.message)
	}
	return findRootCause(cliErr.cause)
}
