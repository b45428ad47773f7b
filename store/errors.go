package store

import (
	"errors"
	"fmt"
)

// The four error kinds every store operation may return. Controllers map
// them onto HTTP statuses; nothing in this package suppresses a
// data-mutating failure.

// ValidationError: malformed input (bad quantity, empty name, unknown store).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError: missing or not-owned row.
type NotFoundError struct {
	Kind string // "cart line", "list", ...
}

func (e *NotFoundError) Error() string { return e.Kind + " not found" }

// ConflictError: a merge reached a state it cannot resolve deterministically.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// TransientStorageError: the backing store failed; the request may be retried.
type TransientStorageError struct {
	Op  string
	Err error
}

func (e *TransientStorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *TransientStorageError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func IsTransient(err error) bool {
	var t *TransientStorageError
	return errors.As(err, &t)
}

// storageErr tags a database error with the operation it interrupted.
func storageErr(op string, err error) error {
	return &TransientStorageError{Op: op, Err: err}
}
