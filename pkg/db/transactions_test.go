package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvergara/wallet/pkg/money"
)

func TestTransactionStore_Insert(t *testing.T) {
	conn := openTestDB(t)
	accounts := NewAccountStore(conn)
	store := NewTransactionStore(conn)

	account, err := accounts.Insert("Main", money.Money(10000))
	require.NoError(t, err)

	txn, err := store.Insert(&Transaction{
		Message:   "groceries",
		Value:     money.Money(3000),
		Date:      time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC),
		Charged:   true,
		Flow:      FlowOutgoing,
		AccountID: account.ID,
	})
	require.NoError(t, err)
	assert.Greater(t, txn.ID, int64(0))

	txns, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, txns, 1)

	got := txns[0]
	assert.Equal(t, "groceries", got.Message)
	assert.Equal(t, money.Money(3000), got.Value)
	assert.Equal(t, FlowOutgoing, got.Flow)
	assert.True(t, got.Charged)
	assert.Equal(t, account.ID, got.AccountID)
	// Day granularity: the stored date is the UTC midnight of the same day
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), got.Date)
}

func TestTransactionStore_InsertUnknownAccountIsIntegrityError(t *testing.T) {
	store := NewTransactionStore(openTestDB(t))

	_, err := store.Insert(&Transaction{
		Message:   "orphan",
		Value:     money.Cent,
		Date:      time.Now(),
		Flow:      FlowIncoming,
		AccountID: 999,
	})

	var integrity *IntegrityError
	require.ErrorAs(t, err, &integrity)
}

func TestTransactionStore_ListOrderAndLimit(t *testing.T) {
	conn := openTestDB(t)
	accounts := NewAccountStore(conn)
	store := NewTransactionStore(conn)

	account, err := accounts.Insert("Main", money.Zero)
	require.NoError(t, err)

	for _, msg := range []string{"first", "second", "third"} {
		_, err := store.Insert(&Transaction{
			Message:   msg,
			Value:     money.Cent,
			Date:      time.Now(),
			Flow:      FlowIncoming,
			AccountID: account.ID,
		})
		require.NoError(t, err)
	}

	txns, err := store.List(2)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "first", txns[0].Message)
	assert.Equal(t, "second", txns[1].Message)
}

func TestTransactionStore_Delete(t *testing.T) {
	conn := openTestDB(t)
	accounts := NewAccountStore(conn)
	store := NewTransactionStore(conn)

	account, err := accounts.Insert("Main", money.Zero)
	require.NoError(t, err)

	txn, err := store.Insert(&Transaction{
		Message:   "to remove",
		Value:     money.Cent,
		Date:      time.Now(),
		Flow:      FlowIncoming,
		AccountID: account.ID,
	})
	require.NoError(t, err)

	removed, err := store.Delete(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = store.Delete(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestTransactionStore_DeleteAll(t *testing.T) {
	conn := openTestDB(t)
	accounts := NewAccountStore(conn)
	store := NewTransactionStore(conn)

	account, err := accounts.Insert("Main", money.Zero)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := store.Insert(&Transaction{
			Message:   "bulk",
			Value:     money.Cent,
			Date:      time.Now(),
			Flow:      FlowIncoming,
			AccountID: account.ID,
		})
		require.NoError(t, err)
	}

	removed, err := store.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestFlowTypeString(t *testing.T) {
	assert.Equal(t, "Outgoing", FlowOutgoing.String())
	assert.Equal(t, "Incoming", FlowIncoming.String())
}
