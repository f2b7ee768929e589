// Package ledger implements the wallet's bookkeeping operations: creating
// and editing accounts, posting transactions, and deleting records, each
// enforcing the balance-consistency rules over the stores in pkg/db.
package ledger

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/hvergara/wallet/pkg/db"
	"github.com/hvergara/wallet/pkg/money"
)

// Ledger orchestrates account and transaction operations.
type Ledger struct {
	conn         *db.Connection
	accounts     *db.AccountStore
	transactions *db.TransactionStore
	now          func() time.Time
}

// New creates a Ledger over an open database connection.
func New(conn *db.Connection) *Ledger {
	return &Ledger{
		conn:         conn,
		accounts:     db.NewAccountStore(conn),
		transactions: db.NewTransactionStore(conn),
		now:          time.Now,
	}
}

// CreateAccount validates and inserts a new account. The first account ever
// created becomes the default account.
func (l *Ledger) CreateAccount(name string, initial money.Money) (*db.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Reason: "account name must not be empty"}
	}
	if initial.IsNegative() {
		return nil, &ValidationError{Reason: "initial balance must not be negative"}
	}

	return l.accounts.Insert(name, initial)
}

// SetDefaultAccount marks the account with the given id as default.
// The returned bool is false when the account already was the default,
// which is informational rather than an error.
func (l *Ledger) SetDefaultAccount(id int64) (*db.Account, bool, error) {
	account, err := l.accounts.FindByID(id)
	if err != nil {
		return nil, false, err
	}
	if account.IsDefault {
		return account, false, nil
	}

	if err := l.accounts.SetDefault(id); err != nil {
		return nil, false, err
	}

	account.IsDefault = true
	return account, true, nil
}

// EditAccount updates an account's name and/or balance. A balance edit
// shifts available by the same difference, so a manual correction keeps the
// gap between statement and available balance intact.
func (l *Ledger) EditAccount(id int64, newName *string, newBalance *money.Money) (*db.Account, error) {
	if newName == nil && newBalance == nil {
		return nil, ErrNothingToUpdate
	}

	account, err := l.accounts.FindByID(id)
	if err != nil {
		return nil, err
	}

	if newName != nil {
		name := strings.TrimSpace(*newName)
		if name == "" {
			return nil, &ValidationError{Reason: "account name must not be empty"}
		}
		account.Name = name
	}

	if newBalance != nil {
		if newBalance.IsNegative() {
			return nil, &ValidationError{Reason: "balance must not be negative"}
		}
		diff := *newBalance - account.Balance
		account.Balance = *newBalance
		account.Available += diff
	}

	if err := l.accounts.Update(account); err != nil {
		return nil, err
	}

	return account, nil
}

// PostParams describes a transaction to post.
type PostParams struct {
	Message string
	Value   money.Money
	Flow    db.FlowType
	Charged bool
	// Force posts an outgoing transaction even when it exceeds the
	// available balance.
	Force bool
	// AccountID targets a specific account; nil targets the default one.
	AccountID *int64
}

// PostTransaction appends a ledger entry and applies its balance effects to
// the owning account. The insert and the account update run inside one
// database transaction; a recorded entry whose balance update could not be
// rolled back surfaces as a PartialApplicationError.
func (l *Ledger) PostTransaction(p PostParams) (*db.Transaction, *db.Account, error) {
	if strings.TrimSpace(p.Message) == "" {
		return nil, nil, &ValidationError{Reason: "transaction message must not be empty"}
	}
	if p.Value < money.Cent {
		return nil, nil, &ValidationError{Reason: "transaction value must be at least 0.01"}
	}

	tx, err := l.conn.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	txn, account, err := l.postIn(tx, p)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			if txn != nil {
				// The entry was written but could not be rolled back
				// together with the missing balance update.
				return nil, nil, &PartialApplicationError{TransactionID: txn.ID, Err: err}
			}
			return nil, nil, fmt.Errorf("post error: %v, rollback error: %w", err, rbErr)
		}
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return txn, account, nil
}

func (l *Ledger) postIn(tx *sql.Tx, p PostParams) (*db.Transaction, *db.Account, error) {
	account, err := l.resolveAccount(tx, p.AccountID)
	if err != nil {
		return nil, nil, err
	}

	if p.Flow == db.FlowOutgoing && !p.Force && p.Value > account.Available {
		return nil, nil, ErrInsufficientFunds
	}

	// Incoming money clears immediately; the charged flag only matters for
	// outgoing transactions.
	charged := p.Charged
	if p.Flow == db.FlowIncoming {
		charged = true
	}

	txn, err := l.transactions.InsertIn(tx, &db.Transaction{
		Message:   strings.TrimSpace(p.Message),
		Value:     p.Value,
		Date:      l.now(),
		Charged:   charged,
		Flow:      p.Flow,
		AccountID: account.ID,
	})
	if err != nil {
		return nil, nil, err
	}

	switch p.Flow {
	case db.FlowIncoming:
		account.Available += p.Value
		account.Balance += p.Value
	default:
		account.Available -= p.Value
		if charged {
			account.Balance -= p.Value
		}
	}

	if err := l.accounts.UpdateIn(tx, account); err != nil {
		return txn, nil, err
	}

	return txn, account, nil
}

func (l *Ledger) resolveAccount(tx *sql.Tx, id *int64) (*db.Account, error) {
	if id != nil {
		return l.accounts.FindByIDIn(tx, *id)
	}
	return l.accounts.FindDefaultIn(tx)
}

// Transfer moves an amount between two accounts by posting a charged
// outgoing entry on the source and an incoming entry on the destination
// atomically. A nil sourceID means the default account.
func (l *Ledger) Transfer(sourceID *int64, destID int64, amount money.Money, force bool) (*db.Account, *db.Account, error) {
	if amount < money.Cent {
		return nil, nil, &ValidationError{Reason: "transfer amount must be at least 0.01"}
	}

	var source, dest *db.Account

	err := l.conn.Transaction(func(tx *sql.Tx) error {
		var err error
		source, err = l.resolveAccount(tx, sourceID)
		if err != nil {
			return err
		}
		dest, err = l.accounts.FindByIDIn(tx, destID)
		if err != nil {
			return err
		}
		if source.ID == dest.ID {
			return &ValidationError{Reason: "cannot transfer an account to itself"}
		}
		if !force && amount > source.Available {
			return ErrInsufficientFunds
		}

		date := l.now()
		_, err = l.transactions.InsertIn(tx, &db.Transaction{
			Message:   fmt.Sprintf("Transfer to %s", dest.Name),
			Value:     amount,
			Date:      date,
			Charged:   true,
			Flow:      db.FlowOutgoing,
			AccountID: source.ID,
		})
		if err != nil {
			return err
		}
		_, err = l.transactions.InsertIn(tx, &db.Transaction{
			Message:   fmt.Sprintf("Transfer from %s", source.Name),
			Value:     amount,
			Date:      date,
			Charged:   true,
			Flow:      db.FlowIncoming,
			AccountID: dest.ID,
		})
		if err != nil {
			return err
		}

		source.Available -= amount
		source.Balance -= amount
		dest.Available += amount
		dest.Balance += amount

		if err := l.accounts.UpdateIn(tx, source); err != nil {
			return err
		}
		return l.accounts.UpdateIn(tx, dest)
	})
	if err != nil {
		return nil, nil, err
	}

	return source, dest, nil
}

// DeleteAccount removes a single account. Deleting the default account is
// refused; use DeleteAllAccounts instead. Returns the removed-row count.
func (l *Ledger) DeleteAccount(id int64) (int64, error) {
	return l.accounts.Delete(id)
}

// DeleteAllAccounts removes every account, default included. The ledger
// entries referencing them go with them so the delete is unconditional.
func (l *Ledger) DeleteAllAccounts() (int64, error) {
	var removed int64

	err := l.conn.Transaction(func(tx *sql.Tx) error {
		if _, err := l.transactions.DeleteAllIn(tx); err != nil {
			return err
		}
		var err error
		removed, err = l.accounts.DeleteAllIn(tx)
		return err
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

// DeleteTransaction removes a single ledger entry. The account balances are
// intentionally left untouched; deletion is a maintenance operation, not a
// reversal.
func (l *Ledger) DeleteTransaction(id int64) (int64, error) {
	return l.transactions.Delete(id)
}

// DeleteAllTransactions removes every ledger entry.
func (l *Ledger) DeleteAllTransactions() (int64, error) {
	return l.transactions.DeleteAll()
}

// ListAccounts retrieves up to limit accounts in ascending-id order.
func (l *Ledger) ListAccounts(limit int64) ([]db.Account, error) {
	return l.accounts.List(limit)
}

// ListTransactions retrieves up to limit transactions in insertion order.
func (l *Ledger) ListTransactions(limit int64) ([]db.Transaction, error) {
	return l.transactions.List(limit)
}
