package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hvergara/wallet/pkg/money"
)

// ErrDefaultAccount indicates an attempt to delete the default account
// outside of a delete-all.
var ErrDefaultAccount = errors.New("the default account cannot be deleted")

// Account represents an accounts row.
type Account struct {
	ID        int64
	Name      string
	Balance   money.Money
	Available money.Money
	IsDefault bool
}

// AccountStore manages account persistence.
type AccountStore struct {
	conn *Connection
}

// NewAccountStore creates a new AccountStore instance.
func NewAccountStore(conn *Connection) *AccountStore {
	return &AccountStore{conn: conn}
}

const accountColumns = `id_account, name, balance, available, is_default`

func scanAccount(row *sql.Row) (*Account, error) {
	var account Account
	var balance, available int64
	var isDefault int64

	err := row.Scan(&account.ID, &account.Name, &balance, &available, &isDefault)
	if err != nil {
		return nil, err
	}

	account.Balance = money.Money(balance)
	account.Available = money.Money(available)
	account.IsDefault = isDefault != 0
	return &account, nil
}

// FindByID retrieves an account by id.
func (s *AccountStore) FindByID(id int64) (*Account, error) {
	return s.findByID(s.conn, id)
}

// FindByIDIn is FindByID running inside an open transaction.
func (s *AccountStore) FindByIDIn(tx *sql.Tx, id int64) (*Account, error) {
	return s.findByID(tx, id)
}

func (s *AccountStore) findByID(e Execer, id int64) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id_account = ?`, accountColumns)

	account, err := scanAccount(e.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Entity: "account", ID: id}
	}
	if err != nil {
		return nil, classify(fmt.Errorf("failed to find account: %w", err))
	}

	return account, nil
}

// FindDefault retrieves the account marked as default.
func (s *AccountStore) FindDefault() (*Account, error) {
	return s.findDefault(s.conn)
}

// FindDefaultIn is FindDefault running inside an open transaction.
func (s *AccountStore) FindDefaultIn(tx *sql.Tx) (*Account, error) {
	return s.findDefault(tx)
}

func (s *AccountStore) findDefault(e Execer) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE is_default = 1`, accountColumns)

	account, err := scanAccount(e.QueryRow(query))
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Entity: "default account"}
	}
	if err != nil {
		return nil, classify(fmt.Errorf("failed to find default account: %w", err))
	}

	return account, nil
}

// Count returns the number of stored accounts.
func (s *AccountStore) Count() (int64, error) {
	var count int64
	err := s.conn.QueryRow(`SELECT COUNT(*) FROM accounts`).Scan(&count)
	if err != nil {
		return 0, classify(fmt.Errorf("failed to count accounts: %w", err))
	}
	return count, nil
}

// Insert creates a new account with available = balance = initial.
// The first account ever inserted becomes the default account.
func (s *AccountStore) Insert(name string, initial money.Money) (*Account, error) {
	account := &Account{
		Name:      name,
		Balance:   initial,
		Available: initial,
	}

	err := s.conn.Transaction(func(tx *sql.Tx) error {
		var count int64
		if err := tx.QueryRow(`SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count accounts: %w", err)
		}
		account.IsDefault = count == 0

		isDefault := 0
		if account.IsDefault {
			isDefault = 1
		}

		result, err := tx.Exec(
			`INSERT INTO accounts (name, balance, available, is_default) VALUES (?, ?, ?, ?)`,
			account.Name, account.Balance.Cents(), account.Available.Cents(), isDefault,
		)
		if err != nil {
			return fmt.Errorf("failed to insert account: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted account id: %w", err)
		}
		account.ID = id
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	return account, nil
}

// Update overwrites name, balance and available for the row matching the
// account id. Updating anything but exactly one row is a ConsistencyError.
func (s *AccountStore) Update(account *Account) error {
	return s.update(s.conn, account)
}

// UpdateIn is Update running inside an open transaction.
func (s *AccountStore) UpdateIn(tx *sql.Tx, account *Account) error {
	return s.update(tx, account)
}

func (s *AccountStore) update(e Execer, account *Account) error {
	result, err := e.Exec(
		`UPDATE accounts SET name = ?, balance = ?, available = ? WHERE id_account = ?`,
		account.Name, account.Balance.Cents(), account.Available.Cents(), account.ID,
	)
	if err != nil {
		return classify(fmt.Errorf("failed to update account: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected != 1 {
		return &ConsistencyError{Op: "update account", Expected: 1, Affected: affected}
	}

	return nil
}

// SetDefault atomically clears the current default flag and sets it on the
// account with the given id.
func (s *AccountStore) SetDefault(id int64) error {
	err := s.conn.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`UPDATE accounts SET is_default = 0 WHERE is_default = 1`); err != nil {
			return fmt.Errorf("failed to clear default account: %w", err)
		}

		result, err := tx.Exec(`UPDATE accounts SET is_default = 1 WHERE id_account = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to set default account: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 0 {
			return &NotFoundError{Entity: "account", ID: id}
		}
		return nil
	})

	return classify(err)
}

// Delete removes the account with the given id. The default account is
// protected; it can only go away through DeleteAll.
// Returns the number of rows removed; zero means the id did not exist.
func (s *AccountStore) Delete(id int64) (int64, error) {
	var removed int64

	err := s.conn.Transaction(func(tx *sql.Tx) error {
		var isDefault int64
		err := tx.QueryRow(`SELECT is_default FROM accounts WHERE id_account = ?`, id).Scan(&isDefault)
		if err == sql.ErrNoRows {
			removed = 0
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to check account: %w", err)
		}
		if isDefault != 0 {
			return ErrDefaultAccount
		}

		result, err := tx.Exec(`DELETE FROM accounts WHERE id_account = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}

		removed, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, classify(err)
	}

	return removed, nil
}

// DeleteAll removes every account unconditionally, default included.
// Returns the number of rows removed.
func (s *AccountStore) DeleteAll() (int64, error) {
	return s.deleteAll(s.conn)
}

// DeleteAllIn is DeleteAll running inside an open transaction.
func (s *AccountStore) DeleteAllIn(tx *sql.Tx) (int64, error) {
	return s.deleteAll(tx)
}

func (s *AccountStore) deleteAll(e Execer) (int64, error) {
	result, err := e.Exec(`DELETE FROM accounts`)
	if err != nil {
		return 0, classify(fmt.Errorf("failed to delete accounts: %w", err))
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return removed, nil
}

// List retrieves accounts in ascending-id order, capped at limit.
// A limit of zero or below means no cap.
func (s *AccountStore) List(limit int64) ([]Account, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unlimited
	}

	query := fmt.Sprintf(`SELECT %s FROM accounts ORDER BY id_account ASC LIMIT ?`, accountColumns)
	rows, err := s.conn.Query(query, limit)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to list accounts: %w", err))
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var account Account
		var balance, available, isDefault int64

		if err := rows.Scan(&account.ID, &account.Name, &balance, &available, &isDefault); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		account.Balance = money.Money(balance)
		account.Available = money.Money(available)
		account.IsDefault = isDefault != 0
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}
