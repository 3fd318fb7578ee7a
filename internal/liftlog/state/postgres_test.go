//go:build integration_test || all_tests

package state

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/liftlog/internal/db"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPostgresStoreSetup(t *testing.T) (*PostgresStore, func()) {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postres host: %s", host)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         "5432",
		DBName:         "liftlog",
		TracingEnabled: false,
	})
	require.NoError(t, err)

	store := NewPostgresStore(dbPool)
	require.NoError(t, store.EnsureSchema(timeoutCtx))

	return store, func() {
		dbPool.Close()
	}
}

func TestPostgresStore_BasicCRUD(t *testing.T) {
	store, shutdown := testPostgresStoreSetup(t)
	defer shutdown()

	ctx := context.Background()
	require.NoError(t, store.Clear(ctx, AllKeys...))

	_, err := store.Get(ctx, KeyCatalog)
	require.ErrorIs(t, err, ErrKeyNotFound)

	value := []byte(gofakeit.Sentence(10))
	require.NoError(t, store.Set(ctx, KeyCatalog, value))

	stored, err := store.Get(ctx, KeyCatalog)
	require.NoError(t, err)
	assert.Equal(t, value, stored)

	// set on an existing key overwrites
	newValue := []byte(gofakeit.Sentence(10))
	require.NoError(t, store.Set(ctx, KeyCatalog, newValue))
	stored, err = store.Get(ctx, KeyCatalog)
	require.NoError(t, err)
	assert.Equal(t, newValue, stored)

	require.NoError(t, store.Clear(ctx, KeyCatalog))
	_, err = store.Get(ctx, KeyCatalog)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestPostgresStore_ClearAll(t *testing.T) {
	store, shutdown := testPostgresStoreSetup(t)
	defer shutdown()

	ctx := context.Background()
	for _, key := range AllKeys {
		require.NoError(t, store.Set(ctx, key, []byte(gofakeit.Word())))
	}

	require.NoError(t, ClearAll(ctx, store))

	for _, key := range AllKeys {
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, ErrKeyNotFound)
	}
}
