// Package cache provides the LRU cache used to memoize packed LUT
// textures.
//
// Packing is a pure function of the LUT contents and the texture
// geometry, so results can be shared between compilations that register
// the same LUT:
//
//	c := cache.New[Key, []float32](64)
//	values, hit, err := c.GetOrCreate(key, func() ([]float32, error) {
//		return pack(key)
//	})
//
// # Thread Safety
//
// LRU is safe for concurrent use and must not be copied after creation.
package cache
