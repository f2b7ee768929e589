package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hvergara/wallet/pkg/money"
)

// FlowType is the direction of a transaction.
type FlowType int64

const (
	FlowOutgoing FlowType = 0
	FlowIncoming FlowType = 1
)

// String renders the flow direction for display.
func (f FlowType) String() string {
	if f == FlowIncoming {
		return "Incoming"
	}
	return "Outgoing"
}

// Transaction represents a transactions row. Dates carry day granularity
// and are persisted as days since the Unix epoch.
type Transaction struct {
	ID        int64
	Message   string
	Value     money.Money
	Date      time.Time
	Charged   bool
	Flow      FlowType
	AccountID int64
}

// daysSinceEpoch converts a timestamp to its day-count representation.
func daysSinceEpoch(t time.Time) int64 {
	return t.UTC().Unix() / 86400
}

// dateFromDays converts a stored day count back to a UTC midnight timestamp.
func dateFromDays(days int64) time.Time {
	return time.Unix(days*86400, 0).UTC()
}

// TransactionStore manages transaction persistence.
type TransactionStore struct {
	conn *Connection
}

// NewTransactionStore creates a new TransactionStore instance.
func NewTransactionStore(conn *Connection) *TransactionStore {
	return &TransactionStore{conn: conn}
}

// Insert appends a ledger entry. The referenced account must exist; a
// foreign key violation surfaces as an IntegrityError.
func (s *TransactionStore) Insert(txn *Transaction) (*Transaction, error) {
	return s.insert(s.conn, txn)
}

// InsertIn is Insert running inside an open transaction.
func (s *TransactionStore) InsertIn(tx *sql.Tx, txn *Transaction) (*Transaction, error) {
	return s.insert(tx, txn)
}

func (s *TransactionStore) insert(e Execer, txn *Transaction) (*Transaction, error) {
	charged := 0
	if txn.Charged {
		charged = 1
	}

	result, err := e.Exec(
		`INSERT INTO transactions (message, value, date, charged, flow_type, id_account)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		txn.Message, txn.Value.Cents(), daysSinceEpoch(txn.Date), charged, int64(txn.Flow), txn.AccountID,
	)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to insert transaction: %w", err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted transaction id: %w", err)
	}

	txn.ID = id
	return txn, nil
}

// Delete removes a single ledger entry by id.
// Returns the number of rows removed; zero means the id did not exist.
func (s *TransactionStore) Delete(id int64) (int64, error) {
	result, err := s.conn.Exec(`DELETE FROM transactions WHERE id_transaction = ?`, id)
	if err != nil {
		return 0, classify(fmt.Errorf("failed to delete transaction: %w", err))
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return removed, nil
}

// DeleteAll removes every ledger entry. Returns the number of rows removed.
func (s *TransactionStore) DeleteAll() (int64, error) {
	return s.deleteAll(s.conn)
}

// DeleteAllIn is DeleteAll running inside an open transaction.
func (s *TransactionStore) DeleteAllIn(tx *sql.Tx) (int64, error) {
	return s.deleteAll(tx)
}

func (s *TransactionStore) deleteAll(e Execer) (int64, error) {
	result, err := e.Exec(`DELETE FROM transactions`)
	if err != nil {
		return 0, classify(fmt.Errorf("failed to delete transactions: %w", err))
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return removed, nil
}

// List retrieves transactions in insertion order, capped at limit.
// A limit of zero or below means no cap.
func (s *TransactionStore) List(limit int64) ([]Transaction, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.conn.Query(
		`SELECT id_transaction, message, value, date, charged, flow_type, id_account
		 FROM transactions ORDER BY id_transaction ASC LIMIT ?`, limit)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to list transactions: %w", err))
	}
	defer rows.Close()

	var txns []Transaction
	for rows.Next() {
		var txn Transaction
		var value, date, charged, flow int64

		if err := rows.Scan(&txn.ID, &txn.Message, &value, &date, &charged, &flow, &txn.AccountID); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		txn.Value = money.Money(value)
		txn.Date = dateFromDays(date)
		txn.Charged = charged != 0
		txn.Flow = FlowType(flow)
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}
