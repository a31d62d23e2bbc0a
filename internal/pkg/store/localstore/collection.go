package localstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ougirez/rtrw/internal/pkg/cache"
	"github.com/ougirez/rtrw/internal/pkg/constants"
)

type record[T any] interface {
	*T
	GetID() string
	SetID(id string)
}

// Collection is a JSON array of records kept under one cache key.
// Writes are read-modify-write of the whole array, serialized per process.
type Collection[T any, P record[T]] struct {
	cache cache.Cache
	key   string
	mx    sync.Mutex
}

func NewCollection[T any, P record[T]](c cache.Cache, key string) *Collection[T, P] {
	return &Collection[T, P]{cache: c, key: key}
}

func (c *Collection[T, P]) Key() string {
	return c.key
}

func (c *Collection[T, P]) List(ctx context.Context) ([]*T, error) {
	items, err := cache.LoadList[T](ctx, c.cache, c.key)
	if err != nil {
		return nil, err
	}

	res := make([]*T, 0, len(items))
	for i := range items {
		res = append(res, &items[i])
	}
	return res, nil
}

func (c *Collection[T, P]) Find(ctx context.Context, id string) (*T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if P(item).GetID() == id {
			return item, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

// Insert appends item under a freshly generated id.
func (c *Collection[T, P]) Insert(ctx context.Context, item *T) (*T, error) {
	created := *item
	P(&created).SetID(uuid.NewString())

	err := c.Mutate(ctx, func(items []T) ([]T, error) {
		return append(items, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Collection[T, P]) Replace(ctx context.Context, item *T) (*T, error) {
	id := P(item).GetID()
	err := c.Mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if P(&items[i]).GetID() == id {
				items[i] = *item
				return items, nil
			}
		}
		return nil, constants.ErrDBNotFound
	})
	if err != nil {
		return nil, err
	}

	res := *item
	return &res, nil
}

// Remove deletes the record with the given id when allow accepts it.
// allow may be nil.
func (c *Collection[T, P]) Remove(ctx context.Context, id string, allow func(*T) error) error {
	return c.Mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if P(&items[i]).GetID() != id {
				continue
			}
			if allow != nil {
				if err := allow(&items[i]); err != nil {
					return nil, err
				}
			}
			return append(items[:i], items[i+1:]...), nil
		}
		return nil, constants.ErrDBNotFound
	})
}

func (c *Collection[T, P]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	items, err := cache.LoadList[T](ctx, c.cache, c.key)
	if err != nil {
		return err
	}

	items, err = fn(items)
	if err != nil {
		return err
	}

	return cache.StoreList(ctx, c.cache, c.key, items)
}

// Drain hands every stored record to fn and removes the key once fn
// returns nil. The collection stays locked until then, so writers block
// instead of appending records that the delete would drop.
func (c *Collection[T, P]) Drain(ctx context.Context, fn func(items []T) error) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	items, err := cache.LoadList[T](ctx, c.cache, c.key)
	if err != nil {
		return err
	}

	if err = fn(items); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	return c.cache.Delete(ctx, c.key)
}
