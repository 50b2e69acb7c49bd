// Package idgen hands out the string ids stored on profile list items,
// interviews and their sub-records.
package idgen

import "github.com/google/uuid"

// New returns a UUIDv7 string. v7 keeps the creation-time ordering of the
// old millisecond ids while staying unique within the same millisecond.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
