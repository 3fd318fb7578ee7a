package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
)

var _ Store = (*PostgresStore)(nil)

// PostgresStore keeps the tracker state in a single key-value table,
// one row per logical key.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

// EnsureSchema creates the state table if it is not there yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(
		ctx,
		`CREATE TABLE IF NOT EXISTS liftlog_state (
			key   TEXT PRIMARY KEY,
			value BYTEA NOT NULL
		);`,
	)
	if err != nil {
		return fmt.Errorf("create liftlog_state table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.postgres.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	var value []byte
	err = s.db.QueryRow(
		ctx,
		`SELECT value FROM liftlog_state WHERE key = $1;`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("query state value: %w", err)
	}

	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.postgres.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO liftlog_state (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert state value: %w", err)
	}
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context, keys ...string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.postgres.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(keys) == 0 {
		return nil
	}

	_, err = s.db.Exec(
		ctx,
		`DELETE FROM liftlog_state WHERE key = ANY($1);`,
		keys,
	)
	if err != nil {
		return fmt.Errorf("delete state values: %w", err)
	}
	return nil
}
