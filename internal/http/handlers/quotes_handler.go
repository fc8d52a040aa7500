// Quote feed HTTP handlers.
//
// This file exposes the read-only feed endpoints:
//   - GET /quotes   (filtered, seed-shuffled, paginated feed)
//   - GET /tags     (canonical tag vocabulary with live counts)
//
// Handlers are transport-thin: they parse and clamp query parameters, call
// the feed service, and translate results into HTTP responses. The feed is
// idempotent and never fails for an empty or missing corpus; it simply
// returns an empty page.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/montasssar/briefreads/internal/domain"
	"github.com/montasssar/briefreads/internal/quotes"
	"github.com/montasssar/briefreads/internal/services"
	"github.com/montasssar/briefreads/internal/utils"
)

//
// Service contracts (context-aware)
//

// FeedService defines the quote-feed operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation.
type FeedService interface {
	// Feed returns one page of the filtered, seed-shuffled corpus.
	Feed(ctx context.Context, p services.FeedParams) (results []*quotes.Quote, page int, hasMore bool, err error)
	// Tags returns the canonical vocabulary with per-tag record counts.
	Tags(ctx context.Context) []quotes.TagCount
}

// SavedQuoteService defines the saved-quote operations consumed by HTTP
// handlers (see saved_handler.go).
type SavedQuoteService interface {
	// Toggle saves an unsaved quote or unsaves a saved one, keyed by text.
	Toggle(ctx context.Context, userID, text, author string, tags []string) (*services.ToggleResult, error)
	// ListPage returns a page of the user's saved quotes and the total count.
	ListPage(ctx context.Context, userID string, page, pageSize int) ([]domain.SavedQuote, int64, error)
}

//
// Handler wiring
//

// defaultIdempotencyTTL bounds how long a recorded Idempotency-Key replays
// when the caller does not configure one.
const defaultIdempotencyTTL = 24 * time.Hour

// Handlers groups HTTP endpoints for the feed and saved quotes. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	feedSvc  FeedService
	savedSvc SavedQuoteService
	idemTTL  time.Duration
}

// Option customizes a Handlers instance at construction time.
type Option func(*Handlers)

// WithIdempotencyTTL sets how long recorded Idempotency-Key results replay.
// Non-positive durations are ignored and the default is kept.
func WithIdempotencyTTL(d time.Duration) Option {
	return func(h *Handlers) {
		if d > 0 {
			h.idemTTL = d
		}
	}
}

// New constructs and returns a Handlers instance bound to the given services.
func New(feedSvc FeedService, savedSvc SavedQuoteService, opts ...Option) *Handlers {
	h := &Handlers{feedSvc: feedSvc, savedSvc: savedSvc, idemTTL: defaultIdempotencyTTL}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// userID extracts the authenticated user id from Gin context (set by upstream
// middleware). If absent, it falls back to "X-User-ID" header (tests use it),
// and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

//
// DTOs
//

// FeedResponse is the feed page envelope. The field casing is part of the
// public contract consumed by the existing web client.
type FeedResponse struct {
	Results []*quotes.Quote `json:"results"`
	Page    int             `json:"page"`
	HasMore bool            `json:"hasMore"`
}

// TagsResponse lists the canonical tags with their indexed record counts.
type TagsResponse struct {
	Tags []quotes.TagCount `json:"tags"`
}

//
// Helpers
//

// splitTags parses the comma-separated tags parameter into trimmed,
// lowercased, non-empty entries.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.ToLower(strings.TrimSpace(p)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

//
// Handlers
//

// GetFeed godoc
// @ID          getFeed
// @Summary     Quote feed
// @Description Returns one page of the quote feed, filtered by free text, author,
// @Description and tags, shuffled deterministically by the client-supplied seed.
// @Description Resubmit the same seed across pages to walk one stable permutation.
// @Tags        Quotes
// @Produce     json
//
// @Param       q       query  string  false "Free-text filter over text and author"
// @Param       author  query  string  false "Author substring filter"
// @Param       tags    query  string  false "Comma-separated tags"  example(love,hope)
// @Param       mode    query  string  false "Tag match mode"        Enums(any, all) default(any)
// @Param       page    query  int     false "Page number"           minimum(1) default(1)
// @Param       limit   query  int     false "Quotes per page"       minimum(1) maximum(50) default(36)
// @Param       seed    query  int     false "Shuffle seed (0/absent coerced to 1)"
//
// @Success     200  {object}  handlers.FeedResponse
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /quotes [get]
func (h *Handlers) GetFeed(c *gin.Context) {
	p := services.FeedParams{
		Query:  c.Query("q"),
		Author: c.Query("author"),
		Tags:   splitTags(c.Query("tags")),
		Mode:   quotes.ParseMode(c.Query("mode")),
		Page:   utils.AtoiDefault(c.Query("page"), 1),
		Limit:  utils.AtoiDefault(c.Query("limit"), services.DefaultFeedLimit),
		Seed:   utils.Uint32Default(c.Query("seed"), 1),
	}

	results, page, hasMore, err := h.feedSvc.Feed(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client is gone; nothing useful to write.
			c.Abort()
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeFeedFailed, err.Error())
		return
	}
	if results == nil {
		results = []*quotes.Quote{}
	}
	ok(c, http.StatusOK, FeedResponse{Results: results, Page: page, HasMore: hasMore})
}

// GetTags godoc
// @ID          getTags
// @Summary     Canonical tags
// @Description Returns the canonical tag vocabulary with the number of indexed quotes per tag.
// @Tags        Quotes
// @Produce     json
//
// @Success     200  {object}  handlers.TagsResponse
// @Router      /tags [get]
func (h *Handlers) GetTags(c *gin.Context) {
	ok(c, http.StatusOK, TagsResponse{Tags: h.feedSvc.Tags(c.Request.Context())})
}
