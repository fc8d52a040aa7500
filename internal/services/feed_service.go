// Package services – FeedService
//
// This file implements the FeedService, which turns raw feed parameters into
// one page of the deterministically shuffled, filtered quote corpus. It
// normalizes paging inputs (defaults, clamps, seed coercion), ensures the
// warm cache is built, narrows candidates through the tag index and text
// filters, and re-derives the seed-stable permutation for the requested page.
// Each request independently reshuffles the full candidate set with the same
// seed; callers keep one seed per browsing session to page consistently.
package services

import (
	"context"

	"github.com/montasssar/briefreads/internal/quotes"
)

// Feed paging bounds. DefaultLimit matches the original card grid; MaxLimit
// bounds response size.
const (
	DefaultFeedLimit = 36
	MaxFeedLimit     = 50
)

// FeedParams carries the raw, already-parsed query inputs for one feed page.
// Callers resolve absent limit to DefaultFeedLimit before calling Feed; Feed
// then clamps Limit into [1, MaxFeedLimit], so an explicit zero or negative
// limit yields a single-record page rather than the default. Other zero
// values mean "not supplied" and are normalized by Feed.
type FeedParams struct {
	Query  string
	Author string
	Tags   []string
	Mode   quotes.Mode
	Page   int
	Limit  int
	Seed   uint32
}

// FeedService serves pages of the quote feed from an injected warm cache.
// It is safe for concurrent use; the cache build is single-flight and the
// cache is immutable afterwards.
type FeedService struct {
	Cache *quotes.Cache
}

// NewFeedService constructs a FeedService reading from cache.
func NewFeedService(cache *quotes.Cache) *FeedService {
	return &FeedService{Cache: cache}
}

// Feed returns one page of the filtered, seed-shuffled corpus plus a flag
// reporting whether records remain past it. An empty or absent corpus yields
// an empty page, never an error; the only error returned is the caller's own
// context cancellation, so abandoned requests stop before the shuffle.
func (s *FeedService) Feed(ctx context.Context, p FeedParams) (results []*quotes.Quote, page int, hasMore bool, err error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > MaxFeedLimit {
		p.Limit = MaxFeedLimit
	}
	if p.Mode != quotes.ModeAll {
		p.Mode = quotes.ModeAny
	}

	s.Cache.Ensure(ctx)
	if s.Cache.Len() == 0 {
		return nil, p.Page, false, nil
	}

	filtered := s.Cache.Filter(p.Query, p.Author, p.Tags, p.Mode)
	if err := ctx.Err(); err != nil {
		return nil, p.Page, false, err
	}

	permuted := quotes.Shuffle(filtered, p.Seed)
	results, hasMore = quotes.Paginate(permuted, p.Page, p.Limit)
	return results, p.Page, hasMore, nil
}

// Tags returns the canonical tag vocabulary with live bucket sizes, ensuring
// the cache first.
func (s *FeedService) Tags(ctx context.Context) []quotes.TagCount {
	s.Cache.Ensure(ctx)
	return s.Cache.TagCounts()
}
