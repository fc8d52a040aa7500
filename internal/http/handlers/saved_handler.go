// Saved-quote HTTP handlers.
//
// This file exposes the per-user saved-quote endpoints:
//   - GET  /saved-quotes   (list, paginated, ETag support)
//   - POST /saved-quotes   (toggle save/unsave by quote text)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
//
// Idempotency:
// If the client supplies an Idempotency-Key header and a previous toggle
// outcome exists for (user, key), the handler returns that recorded outcome
// and sets `Idempotency-Replayed: true` instead of flipping the save again.
package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/montasssar/briefreads/internal/domain"
	"github.com/montasssar/briefreads/internal/http/middleware"
	"github.com/montasssar/briefreads/internal/repo"
	"github.com/montasssar/briefreads/internal/services"
	"github.com/montasssar/briefreads/internal/utils"
)

//
// DTOs
//

// ToggleSavedQuoteRequest is the JSON payload for toggling a saved quote.
// Text identifies the quote; author and tags are captured on save and
// ignored on unsave.
type ToggleSavedQuoteRequest struct {
	// Text is the quote text and the natural key for matching.
	Text string `json:"text" binding:"required,min=1" example:"A story of love and hope"`
	// Author optionally records who said it.
	Author string `json:"author" example:"Unknown"`
	// Tags optionally records the canonical tags shown on the card.
	Tags []string `json:"tags" example:"love,hope"`
}

// ToggleSavedQuoteResponse reports which way the toggle went. Quote is set
// when the toggle saved; ID carries the removed row id when it unsaved.
type ToggleSavedQuoteResponse struct {
	Saved bool               `json:"saved"`
	Quote *domain.SavedQuote `json:"quote,omitempty"`
	ID    string             `json:"id,omitempty"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListSavedQuotesResponse wraps a page of saved quotes and pagination
// information.
type ListSavedQuotesResponse struct {
	Quotes     []domain.SavedQuote `json:"quotes"`
	Pagination Pagination          `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// savedDB exposes the concrete service's DB handle for best-effort extras
// (ETag stats, idempotency records). Returns nil for stub services in tests.
func (h *Handlers) savedDB() *gorm.DB {
	if svc, ok := h.savedSvc.(*services.SavedQuoteService); ok {
		return svc.DB
	}
	return nil
}

//
// Handlers
//

// ListSavedQuotes godoc
// @ID          listSavedQuotes
// @Summary     List saved quotes (paginated)
// @Description Returns a page of the user's saved quotes, newest first.
// @Description Supports weak ETag via If-None-Match and may return 304.
// @Tags        SavedQuotes
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID (demo header)"       example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListSavedQuotesResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /saved-quotes [get]
func (h *Handlers) ListSavedQuotes(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	if db := h.savedDB(); db != nil {
		count, maxTS, err := repo.SavedQuotesStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"saved:%s:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.savedSvc.ListPage(ctx, uid, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListSavedQuotesResponse{
		Quotes: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// ToggleSavedQuote godoc
// @ID          toggleSavedQuote
// @Summary     Save or unsave a quote
// @Description Toggles the save state of a quote for the current user, matching by text.
// @Description Supports idempotency via the Idempotency-Key header (same key → same outcome).
// @Tags        SavedQuotes
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  false "User ID (demo header)"  example(user123)
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"
// @Param       body             body    handlers.ToggleSavedQuoteRequest  true  "Quote to toggle"
//
// @Success     200  {object}  handlers.ToggleSavedQuoteResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /saved-quotes [post]
func (h *Handlers) ToggleSavedQuote(c *gin.Context) {
	ctx := c.Request.Context()

	var req ToggleSavedQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text required")
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text required")
		return
	}
	author := strings.TrimSpace(req.Author)
	currentUser := userID(c)

	// Idempotency (replay path) – read validated key if present.
	idemKey, _ := middleware.GetIdempotencyKey(c)
	if idemKey != "" {
		if db := h.savedDB(); db != nil {
			if rec, err := repo.GetIdempotency(ctx, db, currentUser, idemKey, time.Now().UTC()); err == nil && rec != nil {
				resp := ToggleSavedQuoteResponse{Saved: rec.Saved}
				if rec.Saved {
					if sq, err2 := repo.GetSavedQuote(ctx, db, rec.QuoteID); err2 == nil {
						resp.Quote = sq
					}
				} else {
					resp.ID = rec.QuoteID
				}
				c.Header("Idempotency-Replayed", "true")
				ok(c, http.StatusOK, resp)
				return
			}
		}
	}

	res, err := h.savedSvc.Toggle(ctx, currentUser, text, author, req.Tags)
	if err != nil {
		switch err {
		case services.ErrEmptyText:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text required")
		case services.ErrTextTooLong:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest,
				fmt.Sprintf("text too long: max %d runes", services.MaxSavedTextRunes))
		default:
			fail(c, http.StatusInternalServerError, ErrCodeToggleFailed, err.Error())
		}
		return
	}

	resp := ToggleSavedQuoteResponse{Saved: res.Saved, Quote: res.Quote, ID: res.DeletedID}

	// Idempotency (store path) – best effort.
	if idemKey != "" {
		if db := h.savedDB(); db != nil {
			quoteID := res.DeletedID
			if res.Saved && res.Quote != nil {
				quoteID = res.Quote.ID
			}
			_, _ = repo.CreateIdempotency(ctx, db, currentUser, idemKey, quoteID, res.Saved, http.StatusOK, h.idemTTL)
		}
	}

	ok(c, http.StatusOK, resp)
}
