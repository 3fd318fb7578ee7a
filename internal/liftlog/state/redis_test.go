package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/2beens/liftlog/internal/liftlog/state"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := state.NewRedisStore(db)
	ctx := context.Background()

	mock.ExpectGet(state.KeyHistory).SetVal(`{"chest-press":[]}`)
	val, err := store.Get(ctx, state.KeyHistory)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"chest-press":[]}`), val)

	mock.ExpectGet(state.KeyCatalog).SetErr(redis.Nil)
	_, err = store.Get(ctx, state.KeyCatalog)
	assert.ErrorIs(t, err, state.ErrKeyNotFound)

	forcedErr := errors.New("conn refused")
	mock.ExpectGet(state.KeyCatalog).SetErr(forcedErr)
	_, err = store.Get(ctx, state.KeyCatalog)
	assert.ErrorIs(t, err, forcedErr)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := state.NewRedisStore(db)

	mock.ExpectSet(state.KeyCurrentWeek, []byte("3"), 0).SetVal("OK")
	require.NoError(t, store.Set(context.Background(), state.KeyCurrentWeek, []byte("3")))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Clear(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := state.NewRedisStore(db)
	ctx := context.Background()

	mock.ExpectDel(state.AllKeys...).SetVal(int64(len(state.AllKeys)))
	require.NoError(t, store.Clear(ctx, state.AllKeys...))

	// no keys, no redis roundtrip
	require.NoError(t, store.Clear(ctx))

	require.NoError(t, mock.ExpectationsWereMet())
}
