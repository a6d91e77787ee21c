package ids

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns a fresh time-ordered identifier.
//
// IDs are UUIDv7: a millisecond timestamp followed by a monotonic
// sub-millisecond sequence and random bits, so IDs generated back to back
// in one process are distinct and sort in creation order.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fallback(time.Now())
	}
	return id.String()
}

// fallback builds an ID from the clock and crypto/rand when the UUID
// generator cannot read randomness.
func fallback(now time.Time) string {
	var suffix [8]byte
	// crypto/rand.Read never returns an error since Go 1.24; it crashes
	// the program if the system source fails.
	_, _ = rand.Read(suffix[:])
	return strings.ToLower(now.UTC().Format("20060102T150405.000000000")) + "-" + hex.EncodeToString(suffix[:])
}
