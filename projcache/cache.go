// SPDX-License-Identifier: MIT

// Package projcache memoizes projection results keyed by the exact content
// of the request: method, parameters, every sample bit and every label.
//
// Keys are 64-bit xxhash digests; a collision returns the cached result of
// a different request, which at 64 bits is treated as impossible.
// Cached *reduce.Result values are shared between callers and must be
// treated as read-only.
package projcache

import (
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/dimred/reduce"
)

// DefaultMaxEntries bounds a cache built with a non-positive size.
const DefaultMaxEntries = 128

// Params is the cache-relevant part of a projection request.
type Params struct {
	Method     reduce.Method
	Components int
	Neighbors  int // Isomap only; ignored in the key for other methods
	Seed       int64
}

// Options returns the engine options matching p.
func (p Params) Options() []reduce.Option {
	opts := []reduce.Option{reduce.WithSeed(p.Seed)}
	if p.Components > 0 {
		opts = append(opts, reduce.WithComponents(p.Components))
	}
	if p.Method == reduce.MethodIsomap && p.Neighbors > 0 {
		opts = append(opts, reduce.WithNeighbors(p.Neighbors))
	}

	return opts
}

// Key hashes p, data and labels. Labels are only mixed in for LDA.
func Key(p Params, data [][]float64, labels []int) uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = d.Write(buf[:])
	}

	_, _ = d.WriteString(string(p.Method))
	put(uint64(p.Components))
	if p.Method == reduce.MethodIsomap {
		put(uint64(p.Neighbors))
	}
	put(uint64(p.Seed))

	put(uint64(len(data)))
	for _, row := range data {
		put(uint64(len(row)))
		for _, v := range row {
			put(math.Float64bits(v))
		}
	}
	if p.Method == reduce.MethodLDA {
		put(uint64(len(labels)))
		for _, l := range labels {
			put(uint64(l))
		}
	}

	return d.Sum64()
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Entries   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache is a bounded, content-addressed result cache with FIFO eviction.
// Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64]*reduce.Result
	order   []uint64 // insertion order, oldest first
	max     int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New builds a cache holding at most maxEntries results
// (DefaultMaxEntries when maxEntries <= 0).
func New(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Cache{
		entries: make(map[uint64]*reduce.Result, maxEntries),
		order:   make([]uint64, 0, maxEntries),
		max:     maxEntries,
	}
}

// Get returns the cached result for key.
func (c *Cache) Get(key uint64) (*reduce.Result, bool) {
	c.mu.Lock()
	res, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}

	return res, ok
}

// Put stores res under key, evicting the oldest entry when full.
// Re-putting an existing key replaces the value and keeps its position.
func (c *Cache) Put(key uint64, res *reduce.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = res
		return
	}
	for len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		c.evictions.Add(1)
	}
	c.entries[key] = res
	c.order = append(c.order, key)
}

// GetOrCompute returns the cached result for key or stores the outcome of
// compute. Errors are not cached. Concurrent misses on the same key may
// each run compute; the last one stored wins.
func (c *Cache) GetOrCompute(key uint64, compute func() (*reduce.Result, error)) (*reduce.Result, error) {
	if res, ok := c.Get(key); ok {
		return res, nil
	}
	res, err := compute()
	if err != nil {
		return nil, err
	}
	c.Put(key, res)

	return res, nil
}

// Project runs the engine named by p.Method through the cache. extra
// options (a logger, say) are appended after the ones derived from p and
// must not change the result, since they are not part of the key.
func (c *Cache) Project(p Params, data [][]float64, labels []int, extra ...reduce.Option) (*reduce.Result, error) {
	opts := append(p.Options(), extra...)

	return c.GetOrCompute(Key(p, data, labels), func() (*reduce.Result, error) {
		switch p.Method {
		case reduce.MethodPCA:
			return reduce.PCA(data, opts...)
		case reduce.MethodLDA:
			return reduce.LDA(data, labels, opts...)
		case reduce.MethodIsomap:
			return reduce.Isomap(data, opts...)
		default:
			_, err := reduce.ParseMethod(string(p.Method))
			return nil, err
		}
	})
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Entries:   c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
