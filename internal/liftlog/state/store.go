package state

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("state key not found")

// The four logical keys of the persisted tracker state. Each one is
// rewritten in full on every change of the structure it holds.
const (
	KeyCurrentWeek = "liftlog||current-week"
	KeyCurrentDay  = "liftlog||current-day"
	KeyCatalog     = "liftlog||catalog"
	KeyHistory     = "liftlog||history"
)

// AllKeys lists every key the tracker persists, in no particular order.
var AllKeys = []string{KeyCurrentWeek, KeyCurrentDay, KeyCatalog, KeyHistory}

// Store is the external key-value collaborator holding the tracker state.
// Get returns ErrKeyNotFound for an absent key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, keys ...string) error
}
