package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a fast path over the durable chat store: replies already
// recorded for a (session, question) pair can be served without a
// database round trip. The store stays the source of truth; cache
// errors are logged by callers and never change observable replies.
type Cache interface {
	// GetReply returns the cached reply for key, or "" with found=false
	// on a miss.
	GetReply(ctx context.Context, key string) (reply string, found bool, err error)

	// SetReply stores a reply under key with the given TTL.
	SetReply(ctx context.Context, key string, reply string, ttl time.Duration) error

	// Close closes the cache connection.
	Close() error
}

// Key derives the cache key for a (session, question) pair. The pair is
// hashed exactly as given; any normalization here would diverge from the
// store's exact-match semantics.
func Key(session, question string) string {
	h := sha256.New()
	h.Write([]byte(session))
	h.Write([]byte{0})
	h.Write([]byte(question))
	return hex.EncodeToString(h.Sum(nil))
}
