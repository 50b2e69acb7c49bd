package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-showcase/internal/domain/kv"
)

type postgresKVStore struct {
	db *pgxpool.Pool
}

func NewPostgresKVStore(db *pgxpool.Pool) kv.Store {
	return &postgresKVStore{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func upsertKVQuery(key, value string) (string, []interface{}, error) {
	return psql.Insert("kv_entries").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
}

func (s *postgresKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := psql.Select("value").From("kv_entries").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, fmt.Errorf("failed to build read query for key %s: %w", key, err)
	}

	var value string
	if err := s.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *postgresKVStore) Set(ctx context.Context, key, value string) error {
	query, args, err := upsertKVQuery(key, value)
	if err != nil {
		return fmt.Errorf("failed to build write query for key %s: %w", key, err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *postgresKVStore) SetMany(ctx context.Context, entries map[string]string) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for key, value := range entries {
		query, args, err := upsertKVQuery(key, value)
		if err != nil {
			return fmt.Errorf("failed to build write query for key %s: %w", key, err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to write key %s: %w", key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *postgresKVStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query, args, err := psql.Delete("kv_entries").Where(sq.Eq{"key": keys}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to remove keys %v: %w", keys, err)
	}
	return nil
}

func (s *postgresKVStore) Close() error {
	s.db.Close()
	return nil
}
