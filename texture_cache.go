package lutshader

import "github.com/gogpu/lutshader/internal/cache"

// TextureKey identifies a packed texture. Packing depends only on the
// LUT contents and the texture geometry.
type TextureKey struct {
	CacheID string
	Width   int
	Height  int
}

// TextureCacheStats reports TextureCache activity.
type TextureCacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// TextureCache memoizes PackChannels results across compilations.
// It is safe for concurrent use; a nil *TextureCache packs every time.
type TextureCache struct {
	lru *cache.LRU[TextureKey, []float32]
}

// NewTextureCache returns a cache holding at most capacity packed
// textures. A non-positive capacity selects a default.
func NewTextureCache(capacity int) *TextureCache {
	return &TextureCache{lru: cache.New[TextureKey, []float32](capacity)}
}

// Pack returns PackChannels(width, height, values), reusing an earlier
// result for the same cache ID and geometry. An empty cacheID bypasses
// the cache. The returned slice is shared and must not be modified.
func (c *TextureCache) Pack(cacheID string, width, height int, values []float32) ([]float32, error) {
	if c == nil || cacheID == "" {
		return PackChannels(width, height, values)
	}
	key := TextureKey{CacheID: cacheID, Width: width, Height: height}
	packed, hit, err := c.lru.GetOrCreate(key, func() ([]float32, error) {
		return PackChannels(width, height, values)
	})
	if err != nil {
		return nil, err
	}
	if hit {
		Logger().Debug("lutshader: packed texture reused", "cache_id", cacheID, "width", width, "height", height)
	}
	return packed, nil
}

// Forget drops every cached texture packed for cacheID, whatever its
// geometry, and returns how many were dropped. Callers use it when the
// LUT behind an explicit cache ID changes.
func (c *TextureCache) Forget(cacheID string) int {
	if c == nil || cacheID == "" {
		return 0
	}
	return c.lru.DeleteFunc(func(k TextureKey) bool { return k.CacheID == cacheID })
}

// Clear drops every cached texture. Statistics are kept.
func (c *TextureCache) Clear() {
	if c == nil {
		return
	}
	c.lru.Clear()
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// Stats returns a snapshot of the cache counters.
func (c *TextureCache) Stats() TextureCacheStats {
	if c == nil {
		return TextureCacheStats{}
	}
	s := c.lru.Stats()
	return TextureCacheStats{
		Len:       s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}
