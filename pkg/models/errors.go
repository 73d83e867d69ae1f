// Package models defines the persisted entities of the ekan hierarchy
// (workspaces, pages, markdown entries) and the typed operations on them.
// All operations take a *gorm.DB so callers can pass either the shared
// connection or an open transaction.
package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound indicates that a referenced workspace, page, or markdown id
// does not resolve to a live row. Callers distinguish it with errors.Is.
var ErrNotFound = errors.New("record not found")

// ValidationError indicates caller-supplied data violated a precondition
// checked before any storage call was made.
type ValidationError struct {
	Entity string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Entity, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StorageError indicates the underlying store rejected a statement or was
// unavailable. It is never retried here; the caller decides what to do.
type StorageError struct {
	Entity string
	Op     string
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// storageErr maps a gorm error to the error taxonomy, attaching the entity
// and operation for logging. gorm.ErrRecordNotFound becomes ErrNotFound with
// the offending id preserved in the message.
func storageErr(entity, op string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
	}
	return &StorageError{Entity: entity, Op: op, Err: err}
}

// validationErr wraps an ozzo validation failure for the given entity.
func validationErr(entity string, err error) error {
	return &ValidationError{Entity: entity, Err: err}
}
