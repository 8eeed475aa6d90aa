package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no blob exists under the key.
var ErrNotFound = errors.New("store: key not found")

// Well-known keys used by the engine. Each key holds one JSON blob; there is
// no transactionality across keys.
const (
	KeyProducts  = "products"
	KeyInventory = "inventory"
	KeyCart      = "cart"
	KeySales     = "sales"
	KeySettings  = "settings"
)

// Store is a persistent key-value blob store. Writes are best-effort side
// effects of in-memory mutations: a failed Set is logged by the caller and
// never rolled back into engine state.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
