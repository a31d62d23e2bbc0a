// Package cache is the local key/value text storage the application falls
// back to when the remote record store is not available. Values are JSON
// documents stored under fixed keys.
package cache

import (
	"context"
	"errors"
)

var ErrMiss = errors.New("cache: key not found")

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
