package gateway

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// OutcomeSource decides the probabilistic branches of the simulation.
// Tests substitute it to force either branch deterministically.
type OutcomeSource interface {
	// Approve returns true with the given probability.
	Approve(probability float64) bool
}

type randomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewOutcomeSource returns the default source, seeded from crypto/rand so
// separate processes do not replay the same outcome sequence.
func NewOutcomeSource() OutcomeSource {
	var seed [8]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		return &randomSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	}
	return &randomSource{rng: rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))}
}

func (s *randomSource) Approve(probability float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < probability
}
