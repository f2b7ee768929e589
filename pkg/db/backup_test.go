package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvergara/wallet/pkg/money"
)

func TestBackup(t *testing.T) {
	conn := openTestDB(t)

	store := NewAccountStore(conn)
	_, err := store.Insert("Main", money.Money(10000))
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	dest := filepath.Join(t.TempDir(), "backup.db")
	require.NoError(t, Backup(conn.GetPath(), dest))

	// The copy opens as a working database
	copyConn, err := Open(dest)
	require.NoError(t, err)
	defer copyConn.Close()

	account, err := NewAccountStore(copyConn).FindDefault()
	require.NoError(t, err)
	assert.Equal(t, "Main", account.Name)
}

func TestBackup_MissingDatabase(t *testing.T) {
	dir := t.TempDir()
	err := Backup(filepath.Join(dir, "missing.db"), filepath.Join(dir, "out.db"))

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)

	_, statErr := os.Stat(filepath.Join(dir, "out.db"))
	assert.True(t, os.IsNotExist(statErr))
}
