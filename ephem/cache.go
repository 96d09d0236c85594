package ephem

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/echoflaresat/gbmgeometry/vectors"
	lru "github.com/hashicorp/golang-lru"
	"github.com/soniakeys/meeus/v3/coord"
)

// DefaultCacheSize is the number of lookups kept by Default.
const DefaultCacheSize = 256

type cacheKey struct {
	body   Body
	sec    int64
	nsec   int
	pos    vectors.Vec3
	hasPos bool
}

// Cached memoizes another Provider. Safe for concurrent use.
type Cached struct {
	next  Provider
	cache *lru.Cache // cacheKey -> coord.Equatorial
}

func NewCached(next Provider, size int) (*Cached, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("ephemeris cache: %w", err)
	}
	return &Cached{next: next, cache: c}, nil
}

// Default returns a Meeus provider behind a fresh cache.
func Default() Provider {
	c, err := NewCached(Meeus{}, DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Cached) Apparent(body Body, t time.Time, sc *vectors.Vec3) (coord.Equatorial, error) {
	key := cacheKey{body: body, sec: t.Unix(), nsec: t.Nanosecond()}
	if sc != nil {
		key.pos, key.hasPos = *sc, true
	}
	if v, ok := c.cache.Get(key); ok {
		return v.(coord.Equatorial), nil
	}

	eq, err := c.next.Apparent(body, t, sc)
	if err != nil {
		return coord.Equatorial{}, err
	}
	slog.Debug("ephemeris cache miss", "body", body, "time", t)
	c.cache.Add(key, eq)
	return eq, nil
}

// Len reports the number of cached lookups.
func (c *Cached) Len() int {
	return c.cache.Len()
}
