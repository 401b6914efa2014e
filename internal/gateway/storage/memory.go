package storage

import (
	"sync"

	"payment-gateway/internal/models"
)

// MemoryStore keeps all gateway state in process memory. Sessions and
// transactions share the one id-keyed map, so a lookup by session id finds
// the session record. Records are never evicted or deleted; the store lives
// for the lifetime of the process. That is acceptable for a simulation and
// nothing more.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]models.Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]models.Record),
	}
}

func cloneRecord(rec models.Record) models.Record {
	switch r := rec.(type) {
	case *models.PaymentSession:
		// Sessions are immutable after creation; a shallow copy is enough.
		c := *r
		return &c
	case *models.Transaction:
		return r.Clone()
	}
	return rec
}

func (s *MemoryStore) SaveSession(session *models.PaymentSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[session.ID] = session
	return nil
}

func (s *MemoryStore) GetSession(id string) (*models.PaymentSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.records[id].(*models.PaymentSession)
	if !ok {
		return nil, ErrNotFound
	}
	c := *session
	return &c, nil
}

func (s *MemoryStore) SaveTransaction(txn *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[txn.ID] = txn
	return nil
}

func (s *MemoryStore) GetTransaction(id string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txn, ok := s.records[id].(*models.Transaction)
	if !ok {
		return nil, ErrNotFound
	}
	return txn.Clone(), nil
}

func (s *MemoryStore) GetRecord(id string) (models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneRecord(rec), nil
}

// UpdateTransaction runs fn on the stored record while holding the write
// lock, so concurrent updates on the same id serialize and fn observes the
// latest state. A session id is not an updatable transaction.
func (s *MemoryStore) UpdateTransaction(id string, fn func(*models.Transaction)) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.records[id].(*models.Transaction)
	if !ok {
		return nil, ErrNotFound
	}
	fn(txn)
	return txn.Clone(), nil
}

func (s *MemoryStore) HealthCheck() error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
