// Package session is the client persistence layer: a key-value store
// scoped to a single storefront session, holding JSON-encoded values.
// It stands in for the browser's local storage, so a real backend can
// replace it without touching the state managers built on top.
package session

import (
	"context"
	"errors"
)

// Keys under which the state managers persist their data.
const (
	KeyCart    = "cart"
	KeyUser    = "user"
	KeyHistory = "browsing-history"
	KeyOrders  = "orders"
)

var ErrKeyNotFound = errors.New("session key not found")

// Store is the key-value port. Values are opaque JSON blobs; callers own
// encoding and must treat a value that fails to decode as absent.
type Store interface {
	Get(ctx context.Context, sessionID, key string) ([]byte, error)
	Set(ctx context.Context, sessionID, key string, value []byte) error
	Delete(ctx context.Context, sessionID, key string) error
}
