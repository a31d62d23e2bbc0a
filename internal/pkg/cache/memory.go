package cache

import (
	"context"
	"sync"
)

type memoryCache struct {
	mx     sync.RWMutex
	values map[string]string
}

// NewMemory returns a process-local cache. Data does not survive a restart.
func NewMemory() Cache {
	return &memoryCache{values: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	v, ok := c.values[key]
	if !ok {
		return "", ErrMiss
	}
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key, value string) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.values[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	delete(c.values, key)
	return nil
}

func (c *memoryCache) Ping(context.Context) error { return nil }

func (c *memoryCache) Close() error { return nil }
