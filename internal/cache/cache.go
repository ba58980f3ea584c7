// Package cache memoizes shanten sub-computations using ristretto, since
// shanten's ukeire sweep recomputes shanten for many overlapping 34-count
// sub-hands (decomp does not compute shanten and does not use it). Grounded on
// lamyinia-GoMahjong/GoMahjong/common's use of dgraph-io/ristretto; a
// cache miss and hit must return identical results, so it is purely a
// performance knob and may be nil (disabled).
package cache

import (
	"strconv"
	"strings"

	"github.com/dgraph-io/ristretto"
)

// ShantenCache memoizes shanten results keyed by a hand's dense tile
// counts plus its called-meld count. The zero value is not usable;
// construct with New. A nil *ShantenCache is valid and always misses.
type ShantenCache struct {
	c *ristretto.Cache
}

// New builds a cache sized for a single evaluation's worth of shanten
// sub-calls (on the order of tens of thousands of entries).
func New() (*ShantenCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &ShantenCache{c: c}, nil
}

// Key builds a cache key from a dense 34-count array and a meld count.
func Key(counts [34]int, meldCount int) string {
	var b strings.Builder
	for _, n := range counts {
		b.WriteByte(byte('0' + n))
	}
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(meldCount))
	return b.String()
}

// Get returns the cached value for key, if present.
func (s *ShantenCache) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	return s.c.Get(key)
}

// Set stores value under key with a cost of 1 (each entry is a small
// fixed-size struct, so item count is the cost we care about).
func (s *ShantenCache) Set(key string, value any) {
	if s == nil {
		return
	}
	s.c.Set(key, value, 1)
}

// Close releases the cache's background goroutines.
func (s *ShantenCache) Close() {
	if s == nil {
		return
	}
	s.c.Close()
}
