package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores serialized token sequences keyed by text hash, so the
// rich backend never re-annotates a chunk it has already seen within
// the TTL. Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a versioned cache key from a text chunk.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "glossa:v1:" + hex.EncodeToString(hash[:])
}
