// Package db provides SQLite storage for wallet accounts and transactions.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Accounts table
-- Money columns hold integer cents; is_default marks the account targeted
-- when a command names no account. At most one row has is_default = 1.
CREATE TABLE IF NOT EXISTS accounts (
    id_account  INTEGER PRIMARY KEY,
    name        TEXT NOT NULL,
    balance     INTEGER NOT NULL DEFAULT 0,   -- statement balance, cents
    available   INTEGER NOT NULL DEFAULT 0,   -- spendable balance, cents
    is_default  INTEGER NOT NULL DEFAULT 0
);

-- Transactions table
-- Append-only ledger entries. date is stored as days since the Unix epoch;
-- flow_type is 0 for outgoing, 1 for incoming.
CREATE TABLE IF NOT EXISTS transactions (
    id_transaction  INTEGER PRIMARY KEY,
    message         TEXT NOT NULL,
    value           INTEGER NOT NULL,         -- cents, always positive
    date            INTEGER NOT NULL,
    charged         INTEGER NOT NULL DEFAULT 0,
    flow_type       INTEGER NOT NULL,
    id_account      INTEGER NOT NULL,
    FOREIGN KEY (id_account) REFERENCES accounts (id_account)
);

CREATE INDEX IF NOT EXISTS idx_transactions_account
    ON transactions(id_account);

CREATE INDEX IF NOT EXISTS idx_transactions_date
    ON transactions(date);
`

// InitializeSchema creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
