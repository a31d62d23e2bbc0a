package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

// LoadList decodes the JSON array stored under key. A missing key is an
// empty list.
func LoadList[T any](ctx context.Context, c Cache, key string) ([]T, error) {
	raw, err := c.Get(ctx, key)
	if errors.Is(err, ErrMiss) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := make([]T, 0)
	if raw == "" {
		return items, nil
	}
	if err := sonic.UnmarshalString(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

func StoreList[T any](ctx context.Context, c Cache, key string, items []T) error {
	raw, err := sonic.MarshalString(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.Set(ctx, key, raw)
}
