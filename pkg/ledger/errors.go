package ledger

import (
	"errors"
	"fmt"
)

// ErrInsufficientFunds indicates an outgoing transaction larger than the
// account's available balance, without the force override.
var ErrInsufficientFunds = errors.New("insufficient available funds")

// ErrNothingToUpdate indicates an edit that supplied no new values.
var ErrNothingToUpdate = errors.New("nothing to update")

// ValidationError indicates malformed or out-of-range input. Nothing is
// persisted when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PartialApplicationError indicates a transaction row was persisted but the
// owning account's balances could not be updated with it. It must never be
// silently dropped; the ledger needs a reconciliation pass.
type PartialApplicationError struct {
	TransactionID int64
	Err           error
}

func (e *PartialApplicationError) Error() string {
	return fmt.Sprintf(
		"transaction %d was recorded but the account balances were not updated: %v",
		e.TransactionID, e.Err,
	)
}

func (e *PartialApplicationError) Unwrap() error { return e.Err }
