package asset

import (
	"fmt"
	"image"
	"sync"

	"chance-dice/internal/dice"
)

// Key identifies one scaled rendition of an asset.
type Key struct {
	ID     dice.AssetID
	Width  int // target box, not the fitted size
	Height int
}

// Cache holds decoded sources and their scaled renditions for the life of
// the process. It is safe for concurrent use.
type Cache struct {
	src Source

	mu      sync.RWMutex
	sources map[dice.AssetID]*image.NRGBA
	scaled  map[Key]*image.NRGBA
}

// NewCache creates an image cache backed by src.
func NewCache(src Source) *Cache {
	return &Cache{
		src:     src,
		sources: make(map[dice.AssetID]*image.NRGBA),
		scaled:  make(map[Key]*image.NRGBA),
	}
}

// Get returns the asset fitted into a targetW×targetH box (see FitSize).
// Failed loads are not cached, so a file that appears later is picked up.
func (c *Cache) Get(id dice.AssetID, targetW, targetH int) (*image.NRGBA, error) {
	if targetW <= 0 || targetH <= 0 {
		return nil, fmt.Errorf("asset: %s: target %dx%d is empty", id, targetW, targetH)
	}
	key := Key{ID: id, Width: targetW, Height: targetH}

	// Fast path: read lock
	c.mu.RLock()
	if img, ok := c.scaled[key]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	src, haveSrc := c.sources[id]
	c.mu.RUnlock()

	// Slow path: decode and scale outside the lock
	if !haveSrc {
		var err error
		src, err = Load(c.src, id)
		if err != nil {
			return nil, err
		}
	}
	b := src.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), targetW, targetH)
	img := Resize(src, w, h)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.scaled[key]; ok {
		return existing, nil
	}
	if _, ok := c.sources[id]; !ok {
		c.sources[id] = src
	}
	c.scaled[key] = img
	return img, nil
}

// Len returns the number of scaled renditions held.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.scaled)
}
