package storage

import (
	"errors"

	"payment-gateway/internal/models"
)

// ErrNotFound is returned when no record exists under the requested id.
var ErrNotFound = errors.New("not found")

// Store owns all session and transaction state for the gateway. Both
// record kinds share one store keyed by opaque id; GetRecord looks up
// either, the typed getters only their own kind. Implementations must make
// UpdateTransaction atomic with respect to concurrent calls on the same id.
type Store interface {
	// Session operations
	SaveSession(session *models.PaymentSession) error
	GetSession(id string) (*models.PaymentSession, error)

	// Transaction operations
	SaveTransaction(txn *models.Transaction) error
	GetTransaction(id string) (*models.Transaction, error)
	// GetRecord returns whatever record is stored under the id, session or
	// transaction.
	GetRecord(id string) (models.Record, error)
	// UpdateTransaction applies fn to the stored transaction under the
	// store's write lock and returns the updated record.
	UpdateTransaction(id string, fn func(*models.Transaction)) (*models.Transaction, error)

	// Health and maintenance
	HealthCheck() error
	Close() error
}
