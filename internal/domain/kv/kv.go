// Package kv is the storage capability the profile, interview and settings
// repositories are built on: string values under string keys, no ordering
// between independent keys.
package kv

import "context"

type Store interface {
	// Get reports found=false with a nil error when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes every listed key. Missing keys are not an error.
	Remove(ctx context.Context, keys ...string) error
	Close() error
}

// Batcher is implemented by backends that can apply several writes in one
// transaction.
type Batcher interface {
	SetMany(ctx context.Context, entries map[string]string) error
}
