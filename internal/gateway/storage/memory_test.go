package storage_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-gateway/internal/gateway/storage"
	"payment-gateway/internal/models"
)

func pendingTransaction(id string) *models.Transaction {
	return &models.Transaction{
		ID:        id,
		Amount:    100,
		Currency:  "INR",
		OrderID:   "o1",
		SessionID: models.DirectPaymentSession,
		Method:    models.MethodUPI,
		Status:    models.StatusPending,
		Details:   models.UPIDetails{UPIID: "processing@dummypay"},
		CreatedAt: time.Now(),
	}
}

func TestSessionRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()

	session := &models.PaymentSession{ID: "session_abc", Amount: 10, OrderID: "o1", Status: models.StatusCreated}
	require.NoError(t, store.SaveSession(session))

	got, err := store.GetSession("session_abc")
	require.NoError(t, err)
	assert.Equal(t, session.OrderID, got.OrderID)

	_, err = store.GetSession("session_missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTransactionRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()

	require.NoError(t, store.SaveTransaction(pendingTransaction("txn_1")))

	got, err := store.GetTransaction("txn_1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)

	_, err = store.GetTransaction("txn_missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetTransactionReturnsIndependentCopy(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.SaveTransaction(pendingTransaction("txn_1")))

	first, err := store.GetTransaction("txn_1")
	require.NoError(t, err)
	first.Status = models.StatusFailed
	first.FailureReason = "mutated copy"

	second, err := store.GetTransaction("txn_1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, second.Status)
	assert.Empty(t, second.FailureReason)
}

func TestUpdateTransaction(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.SaveTransaction(pendingTransaction("txn_1")))

	updated, err := store.UpdateTransaction("txn_1", func(txn *models.Transaction) {
		txn.Status = models.StatusCompleted
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	got, err := store.GetTransaction("txn_1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)

	_, err = store.UpdateTransaction("txn_missing", func(*models.Transaction) {})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestConcurrentUpdatesResolveExactlyOnce(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.SaveTransaction(pendingTransaction("txn_1")))

	var resolutions int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.UpdateTransaction("txn_1", func(txn *models.Transaction) {
				if txn.Status != models.StatusPending {
					return
				}
				resolutions++
				txn.Status = models.StatusCompleted
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// The write lock serializes callbacks, so only the first sees pending.
	assert.Equal(t, 1, resolutions)

	got, err := store.GetTransaction("txn_1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
}

func TestRecordsShareOneIDSpace(t *testing.T) {
	store := storage.NewMemoryStore()

	session := &models.PaymentSession{ID: "session_abc", Amount: 10, OrderID: "o1", Status: models.StatusCreated}
	require.NoError(t, store.SaveSession(session))
	require.NoError(t, store.SaveTransaction(pendingTransaction("txn_1")))

	rec, err := store.GetRecord("session_abc")
	require.NoError(t, err)
	got, ok := rec.(*models.PaymentSession)
	require.True(t, ok)
	assert.Equal(t, "o1", got.OrderID)

	rec, err = store.GetRecord("txn_1")
	require.NoError(t, err)
	_, ok = rec.(*models.Transaction)
	assert.True(t, ok)

	_, err = store.GetRecord("txn_missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Typed accessors only see their own kind.
	_, err = store.GetTransaction("session_abc")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.GetSession("txn_1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.UpdateTransaction("session_abc", func(*models.Transaction) {})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetRecordReturnsIndependentCopy(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.SaveTransaction(pendingTransaction("txn_1")))

	rec, err := store.GetRecord("txn_1")
	require.NoError(t, err)
	rec.(*models.Transaction).Status = models.StatusFailed

	got, err := store.GetTransaction("txn_1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestHealthCheckAndClose(t *testing.T) {
	store := storage.NewMemoryStore()
	assert.NoError(t, store.HealthCheck())
	assert.NoError(t, store.Close())
}
