package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/liftlog/catalog"
	"github.com/2beens/liftlog/internal/liftlog/history"
)

// Snapshot is the full in-memory tracker state, as loaded from or
// written to the store.
type Snapshot struct {
	Catalog         []catalog.Exercise
	History         history.History
	CurrentWeek     int
	CurrentDayIndex int
}

// DefaultSnapshot is the first-run state: seed catalog, empty history,
// week 1, first scheduled day.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Catalog:         catalog.Seed(),
		History:         history.History{},
		CurrentWeek:     1,
		CurrentDayIndex: 0,
	}
}

// Load reads the four state keys independently. An absent key yields its
// default; a malformed value is logged and also falls back to the default
// instead of failing the startup. Only store errors other than absence
// are returned.
func Load(ctx context.Context, store Store) (Snapshot, error) {
	snapshot := DefaultSnapshot()

	catalogBytes, err := store.Get(ctx, KeyCatalog)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		// first run, keep the seed catalog
	case err != nil:
		return Snapshot{}, fmt.Errorf("get catalog: %w", err)
	default:
		var cat []catalog.Exercise
		if err := json.Unmarshal(catalogBytes, &cat); err != nil {
			log.Errorf("malformed persisted catalog, falling back to seed: %s", err)
		} else {
			snapshot.Catalog = cat
		}
	}

	historyBytes, err := store.Get(ctx, KeyHistory)
	switch {
	case errors.Is(err, ErrKeyNotFound):
	case err != nil:
		return Snapshot{}, fmt.Errorf("get history: %w", err)
	default:
		var h history.History
		if err := json.Unmarshal(historyBytes, &h); err != nil {
			log.Errorf("malformed persisted history, falling back to empty: %s", err)
		} else {
			snapshot.History = h
		}
	}

	snapshot.CurrentWeek = loadInt(ctx, store, KeyCurrentWeek, snapshot.CurrentWeek)
	snapshot.CurrentDayIndex = loadInt(ctx, store, KeyCurrentDay, snapshot.CurrentDayIndex)

	return snapshot, nil
}

func loadInt(ctx context.Context, store Store, key string, fallback int) int {
	valBytes, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Errorf("get %s: %s", key, err)
		}
		return fallback
	}
	val, err := strconv.Atoi(string(valBytes))
	if err != nil {
		log.Errorf("malformed persisted value for %s [%q], falling back to %d", key, valBytes, fallback)
		return fallback
	}
	return val
}

// SaveCatalog rewrites the catalog key in full.
func SaveCatalog(ctx context.Context, store Store, cat []catalog.Exercise) error {
	catalogBytes, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	return store.Set(ctx, KeyCatalog, catalogBytes)
}

// SaveHistory rewrites the history key in full.
func SaveHistory(ctx context.Context, store Store, h history.History) error {
	historyBytes, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return store.Set(ctx, KeyHistory, historyBytes)
}

// SaveWeek rewrites the current week pointer, text-encoded.
func SaveWeek(ctx context.Context, store Store, week int) error {
	return store.Set(ctx, KeyCurrentWeek, []byte(strconv.Itoa(week)))
}

// SaveDayIndex rewrites the current day pointer, text-encoded.
func SaveDayIndex(ctx context.Context, store Store, dayIndex int) error {
	return store.Set(ctx, KeyCurrentDay, []byte(strconv.Itoa(dayIndex)))
}

// ClearAll wipes every persisted state key.
func ClearAll(ctx context.Context, store Store) error {
	return store.Clear(ctx, AllKeys...)
}
