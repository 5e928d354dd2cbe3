// Package metadata stores small key/value records in the client database.
// The session credential lives here under common.TokenMetadataKey.
package metadata

import (
	"context"
	"errors"
)

// ErrEmptyKey is returned when a blank key is passed to a write.
var ErrEmptyKey = errors.New("metadata key must not be empty")

// Repository is a key/value store. Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
