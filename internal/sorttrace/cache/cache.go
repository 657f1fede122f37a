package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// InMemory memoizes computed values by the sha256 of their key. It keeps the
// first max entries and stops admitting new ones after that; concurrent
// misses for one key share a single computation.
type InMemory[V any] struct {
	mu     sync.RWMutex
	max    int
	items  map[string]V
	flight singleflight.Group
}

func NewInMemory[V any](max int) *InMemory[V] {
	if max < 0 {
		max = 0
	}
	return &InMemory[V]{
		max:   max,
		items: make(map[string]V, max),
	}
}

func (c *InMemory[V]) GetOrCompute(key string, fn func() (V, error)) (V, error) {
	h := hash(key)

	c.mu.RLock()
	if v, ok := c.items[h]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	out, err, _ := c.flight.Do(h, func() (any, error) {
		c.mu.RLock()
		if v, ok := c.items[h]; ok {
			c.mu.RUnlock()
			return v, nil
		}
		c.mu.RUnlock()

		v, err := safeCompute(fn)
		if err != nil {
			return v, err
		}

		c.mu.Lock()
		if len(c.items) < c.max {
			c.items[h] = v
		}
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ := out.(V)
	return v, nil
}

func (c *InMemory[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func safeCompute[V any](fn func() (V, error)) (v V, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cache compute panic: %v", r)
		}
	}()
	return fn()
}

func hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
