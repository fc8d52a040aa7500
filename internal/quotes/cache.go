package quotes

import (
	"context"
	"sync"
	"sync/atomic"
)

// Default caps: the reservoir bounds warm-up latency and memory, the per-tag
// cap keeps individual buckets from absorbing the whole corpus.
const (
	DefaultReservoirLimit = 120_000
	DefaultPerTagCap      = 50_000
)

// ----------------------------------------------------------------------------
// Options

type Option func(*Cache)

// WithReservoirLimit caps the number of records kept in memory. Values <= 0
// are ignored.
func WithReservoirLimit(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.reservoirLimit = n
		}
	}
}

// WithPerTagCap caps each tag bucket in the index. Values <= 0 are ignored.
func WithPerTagCap(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.perTagCap = n
		}
	}
}

// ----------------------------------------------------------------------------
// Cache

// Cache is a lazily built, write-once holder for the parsed corpus and its
// tag index. The expensive load happens at most once per Cache instance, on
// the first Ensure call; concurrent first callers block on the same build.
// Once ready the cache is immutable and requires no locking.
//
// Construct one Cache per process (or per test) and inject it; there is no
// package-level singleton.
type Cache struct {
	path           string
	reservoirLimit int
	perTagCap      int

	// loadFn is a seam for tests; production code uses Load.
	loadFn func(ctx context.Context, path string, limit int) ([]*Quote, int, error)

	once    sync.Once
	ready   atomic.Bool
	items   []*Quote
	total   int
	index   map[string][]*Quote
	loadErr error
}

// NewCache returns an unbuilt Cache reading from path. The corpus is not
// touched until the first Ensure call.
func NewCache(path string, opts ...Option) *Cache {
	c := &Cache{
		path:           path,
		reservoirLimit: DefaultReservoirLimit,
		perTagCap:      DefaultPerTagCap,
		loadFn:         Load,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Ensure builds the cache exactly once. Subsequent and concurrent calls are
// cheap no-ops once the build completes.
//
// Load errors are recovered locally: the cache becomes ready with whatever
// was read (possibly nothing) and the error is retained for LoadErr. The
// build runs detached from the caller's cancellation so a client that
// abandons the first request cannot freeze a truncated corpus into the
// process-lifetime cache; trace and log values on ctx still propagate.
func (c *Cache) Ensure(ctx context.Context) {
	c.once.Do(func() {
		ctx := context.WithoutCancel(ctx)
		items, total, err := c.loadFn(ctx, c.path, c.reservoirLimit)
		c.items = items
		c.total = total
		c.index = buildTagIndex(items, c.perTagCap)
		c.loadErr = err
		c.ready.Store(true)
	})
}

// Ready reports whether the cache has been built.
func (c *Cache) Ready() bool { return c.ready.Load() }

// Items returns the full ordered record list. Callers must not mutate it.
func (c *Cache) Items() []*Quote { return c.items }

// Len returns the number of cached records.
func (c *Cache) Len() int { return len(c.items) }

// Total returns the number of raw corpus lines scanned, including lines that
// were skipped or deduplicated.
func (c *Cache) Total() int { return c.total }

// Bucket returns the index bucket for a tag, or nil when the tag is unknown.
// Callers must not mutate the returned slice.
func (c *Cache) Bucket(tag string) []*Quote { return c.index[tag] }

// TagCounts returns the bucket size for every canonical tag, in vocabulary
// order. Tags with no records report zero.
func (c *Cache) TagCounts() []TagCount {
	out := make([]TagCount, 0, len(CanonicalTags))
	for _, t := range CanonicalTags {
		out = append(out, TagCount{Tag: t, Count: len(c.index[t])})
	}
	return out
}

// LoadErr returns the error retained from the corpus build, if any. A
// non-nil value means the cache holds a partial (or empty) corpus.
func (c *Cache) LoadErr() error { return c.loadErr }

// TagCount pairs a canonical tag with its indexed record count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
