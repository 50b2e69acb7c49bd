package persistence

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-showcase/internal/domain/kv"
)

func newSQLiteStore(t *testing.T) kv.Store {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	store, err := NewGormKVStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

var errDiskFull = errors.New("disk full")

// failingStore wraps a real store and rejects writes to the listed keys.
type failingStore struct {
	kv.Store
	failKeys map[string]bool
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.failKeys[key] {
		return errDiskFull
	}
	return s.Store.Set(ctx, key, value)
}
