package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvergara/wallet/pkg/money"
)

func openTestDB(t *testing.T) *Connection {
	t.Helper()

	conn, err := Open(filepath.Join(t.TempDir(), "wallet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitializeSchema(conn))
	return conn
}

func TestAccountStore_InsertFirstBecomesDefault(t *testing.T) {
	store := NewAccountStore(openTestDB(t))

	first, err := store.Insert("Main", money.Money(10000))
	require.NoError(t, err)
	assert.True(t, first.IsDefault)
	assert.Equal(t, money.Money(10000), first.Balance)
	assert.Equal(t, money.Money(10000), first.Available)

	second, err := store.Insert("Savings", money.Zero)
	require.NoError(t, err)
	assert.False(t, second.IsDefault)
	assert.Greater(t, second.ID, first.ID)
}

func TestAccountStore_FindByID(t *testing.T) {
	store := NewAccountStore(openTestDB(t))

	created, err := store.Insert("Main", money.Money(500))
	require.NoError(t, err)

	found, err := store.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, created.Balance, found.Balance)
	assert.True(t, found.IsDefault)

	_, err = store.FindByID(999)
	assert.True(t, IsNotFound(err))
}

func TestAccountStore_FindDefault(t *testing.T) {
	store := NewAccountStore(openTestDB(t))

	_, err := store.FindDefault()
	assert.True(t, IsNotFound(err))

	created, err := store.Insert("Main", money.Zero)
	require.NoError(t, err)

	found, err := store.FindDefault()
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestAccountStore_SetDefault(t *testing.T) {
	store := NewAccountStore(openTestDB(t))

	first, err := store.Insert("Main", money.Zero)
	require.NoError(t, err)
	second, err := store.Insert("Savings", money.Zero)
	require.NoError(t, err)

	require.NoError(t, store.SetDefault(second.ID))

	// Exactly one default at any time
	def, err := store.FindDefault()
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)

	old, err := store.FindByID(first.ID)
	require.NoError(t, err)
	assert.False(t, old.IsDefault)

	err = store.SetDefault(999)
	assert.True(t, IsNotFound(err))
}

func TestAccountStore_Update(t *testing.T) {
	store := NewAccountStore(openTestDB(t))

	account, err := store.Insert("Main", money.Money(1000))
	require.NoError(t, err)

	account.Name = "Primary"
	account.Balance = money.Money(2000)
	account.Available = money.Money(1500)
	require.NoError(t, store.Update(account))

	found, err := store.FindByID(account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Primary", found.Name)
	assert.Equal(t, money.Money(2000), found.Balance)
	assert.Equal(t, money.Money(1500), found.Available)
}

func TestAccountStore_UpdateMissingRowIsConsistencyError(t *testing.T) {
	store := NewAccountStore(openTestDB(t))

	err := store.Update(&Account{ID: 42, Name: "ghost"})
	var consistency *ConsistencyError
	require.ErrorAs(t, err, &consistency)
	assert.Equal(t, int64(0), consistency.Affected)
}

func TestAccountStore_DeleteRefusesDefault(t *testing.T) {
	store := NewAccountStore(openTestDB(t))

	def, err := store.Insert("Main", money.Zero)
	require.NoError(t, err)
	other, err := store.Insert("Savings", money.Zero)
	require.NoError(t, err)

	_, err = store.Delete(def.ID)
	assert.ErrorIs(t, err, ErrDefaultAccount)

	removed, err := store.Delete(other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// Unknown id is reportable, not an error
	removed, err = store.Delete(999)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestAccountStore_DeleteAllIsUnconditional(t *testing.T) {
	store := NewAccountStore(openTestDB(t))

	_, err := store.Insert("Main", money.Zero)
	require.NoError(t, err)
	_, err = store.Insert("Savings", money.Zero)
	require.NoError(t, err)

	removed, err := store.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestAccountStore_List(t *testing.T) {
	store := NewAccountStore(openTestDB(t))

	for _, name := range []string{"A", "B", "C"} {
		_, err := store.Insert(name, money.Zero)
		require.NoError(t, err)
	}

	accounts, err := store.List(2)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "A", accounts[0].Name)
	assert.Equal(t, "B", accounts[1].Name)

	all, err := store.List(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMissingSchemaIsSchemaError(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "uninitialized.db"))
	require.NoError(t, err)
	defer conn.Close()

	store := NewAccountStore(conn)
	_, err = store.List(0)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, err.Error(), "wallet init")
}
