package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// 12 random bytes gives 96 bits of entropy, enough to make id collisions
// negligible without caller-side coordination.
const idEntropyBytes = 12

func randomHex() string {
	buf := make([]byte, idEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		// Fallback to a timestamp-based id if the random source fails
		return fmt.Sprintf("%024x", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}

// GenerateSessionID mints an opaque checkout session identifier.
func GenerateSessionID() string {
	return "session_" + randomHex()
}

// GenerateTransactionID mints an opaque transaction identifier, in a
// namespace disjoint from session ids.
func GenerateTransactionID() string {
	return "txn_" + randomHex()
}
