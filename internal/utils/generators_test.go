package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"payment-gateway/internal/utils"
)

func TestGenerateSessionID(t *testing.T) {
	id := utils.GenerateSessionID()
	assert.True(t, strings.HasPrefix(id, "session_"))
	// 12 random bytes hex-encoded
	assert.Len(t, strings.TrimPrefix(id, "session_"), 24)
}

func TestGenerateTransactionID(t *testing.T) {
	id := utils.GenerateTransactionID()
	assert.True(t, strings.HasPrefix(id, "txn_"))
	assert.Len(t, strings.TrimPrefix(id, "txn_"), 24)
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := utils.GenerateTransactionID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
