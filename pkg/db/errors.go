package db

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// NotFoundError indicates that a referenced row does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ConsistencyError indicates that a statement affected an unexpected number
// of rows where exactly one was required. Ids are unique, so this means the
// stored data itself is inconsistent.
type ConsistencyError struct {
	Op       string
	Expected int64
	Affected int64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s affected %d rows, expected %d", e.Op, e.Affected, e.Expected)
}

// SchemaError indicates the database schema is missing or malformed,
// typically because 'wallet init' has not been run against this file.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("database schema error (run 'wallet init' first): %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// IntegrityError indicates the storage layer rejected a statement because
// of a constraint, such as a transaction naming an unknown account.
type IntegrityError struct {
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity constraint violated: %v", e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// classify maps driver errors to the storage error taxonomy using the
// sqlite3 result codes rather than message text.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return &IntegrityError{Err: err}
		case sqlite3.ErrError:
			// SQLITE_ERROR covers statements against missing tables.
			return &SchemaError{Err: err}
		}
	}

	return err
}
