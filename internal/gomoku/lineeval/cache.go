package lineeval

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"
	"golang.org/x/sync/singleflight"
)

// shapeCache is a bounded cache from a line or window string to a computed
// int (a line's total score, or a boolean four-detection packed as 0/1).
// It is shared across every Evaluator in a process: the shape-score of a
// given 9-char window never depends on which game it came from, so the
// hottest windows (a handful of near-empty-board shapes) amortize across
// every concurrent search.
//
// The cache is keyed by an xxhash of the string rather than the string
// itself, for a smaller, cheaper hash table; the stored entry still carries
// the original key so a collision degrades to a cache miss instead of a
// wrong score.
type shapeCache struct {
	rc *ristretto.Cache[uint64, cacheEntry]
	sf singleflight.Group
}

type cacheEntry struct {
	key   string
	value int
}

func newShapeCache(maxCost int64) *shapeCache {
	rc, err := ristretto.NewCache(&ristretto.Config[uint64, cacheEntry]{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		// Config above is static and always valid; ristretto only returns an
		// error for malformed configuration.
		panic(err)
	}
	return &shapeCache{rc: rc}
}

// get looks up key, computing and storing it via compute on a miss.
// Concurrent misses on the same key share a single compute call (shared
// caches are read by every engine's search goroutine); a key that is later
// evicted or not admitted is computed again on its next miss.
func (c *shapeCache) get(key string, compute func() int) int {
	h := xxhash.Sum64String(key)

	if v, ok := c.rc.Get(h); ok && v.key == key {
		return v.value
	}

	v, _, _ := c.sf.Do(key, func() (interface{}, error) {
		if v, ok := c.rc.Get(h); ok && v.key == key {
			return v.value, nil
		}
		value := compute()
		c.rc.Set(h, cacheEntry{key: key, value: value}, int64(len(key)))
		return value, nil
	})

	return v.(int)
}
