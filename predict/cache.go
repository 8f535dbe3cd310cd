package predict

import (
	"context"
	"sync"
)

// OpenFunc opens a predictor for one model and material.
type OpenFunc func(ctx context.Context, model Model, material string) (Predictor, error)

type cacheKey struct {
	model    string
	material string
}

// Cache opens each (model, material) predictor once and reuses it.
// It is safe for concurrent use.
type Cache struct {
	open OpenFunc

	mu      sync.Mutex
	entries map[cacheKey]Predictor
}

// NewCache creates a cache backed by open.
func NewCache(open OpenFunc) *Cache {
	return &Cache{
		open:    open,
		entries: make(map[cacheKey]Predictor),
	}
}

// Get returns the cached predictor or opens a new one. Unknown model or
// material names fail before open is called; failed opens are not cached.
func (c *Cache) Get(ctx context.Context, modelName, material string) (Predictor, error) {
	model, err := LookupModel(modelName)
	if err != nil {
		return nil, err
	}
	material, err = LookupMaterial(material)
	if err != nil {
		return nil, err
	}

	key := cacheKey{model: model.Name, material: material}

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.entries[key]; ok {
		return p, nil
	}
	p, err := c.open(ctx, model, material)
	if err != nil {
		return nil, err
	}
	c.entries[key] = p
	return p, nil
}

// Len returns the number of cached predictors.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
