package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/montasssar/briefreads/internal/domain"
	"github.com/montasssar/briefreads/internal/http/middleware"
	"github.com/montasssar/briefreads/internal/repo"
	"github.com/montasssar/briefreads/internal/services"
)

// ---------- test DB ----------

func newSavedDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("saved_handlers_%s.db", uuid.NewString()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&domain.SavedQuote{}, &domain.Idempotency{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// ---------- ToggleSavedQuote ----------

func TestToggleSavedQuote_BadInput(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := New(stubFeedSvc{}, stubSavedSvc{})
	r := gin.New()
	r.POST("/saved-quotes", h.ToggleSavedQuote)

	for _, body := range []string{"{bad", `{}`, `{"text":"   "}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/saved-quotes", bytes.NewBufferString(body))
		req.Header.Set("X-User-ID", "u1")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q -> %d, want 400", body, w.Code)
		}
		var out ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("json: %v", err)
		}
		if out.Code != ErrCodeBadRequest {
			t.Fatalf("code = %q", out.Code)
		}
	}
}

func TestToggleSavedQuote_ServiceErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{services.ErrEmptyText, http.StatusBadRequest},
		{services.ErrTextTooLong, http.StatusBadRequest},
		{gorm.ErrInvalidField, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		h := New(stubFeedSvc{}, stubSavedSvc{
			toggle: func(context.Context, string, string, string, []string) (*services.ToggleResult, error) {
				return nil, tc.err
			},
		})
		r := gin.New()
		r.POST("/saved-quotes", h.ToggleSavedQuote)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/saved-quotes", bytes.NewBufferString(`{"text":"x"}`))
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("err %v -> %d, want %d", tc.err, w.Code, tc.want)
		}
	}
}

func TestToggleSavedQuote_SaveThenUnsave(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newSavedDB(t)
	h := New(stubFeedSvc{}, &services.SavedQuoteService{DB: db})
	r := gin.New()
	r.POST("/saved-quotes", h.ToggleSavedQuote)

	body := `{"text":"  Stay hungry  ","author":"Steve Jobs","tags":["motivation"]}`

	// First toggle saves; text is trimmed before persistence.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/saved-quotes", bytes.NewBufferString(body))
	req.Header.Set("X-User-ID", "u1")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("save -> %d body=%s", w.Code, w.Body.String())
	}
	var saved ToggleSavedQuoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !saved.Saved || saved.Quote == nil || saved.Quote.Text != "Stay hungry" {
		t.Fatalf("save response unexpected: %#v", saved)
	}

	// Second toggle unsaves and reports the removed id.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/saved-quotes", bytes.NewBufferString(body))
	req.Header.Set("X-User-ID", "u1")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("unsave -> %d body=%s", w.Code, w.Body.String())
	}
	var unsaved ToggleSavedQuoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &unsaved); err != nil {
		t.Fatalf("json: %v", err)
	}
	if unsaved.Saved || unsaved.Quote != nil || unsaved.ID != saved.Quote.ID {
		t.Fatalf("unsave response unexpected: %#v", unsaved)
	}
}

func TestToggleSavedQuote_IdempotencyReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newSavedDB(t)
	h := New(stubFeedSvc{}, &services.SavedQuoteService{DB: db})
	r := gin.New()
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, nil))
	r.POST("/saved-quotes", h.ToggleSavedQuote)

	key := uuid.NewString()
	post := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/saved-quotes",
			bytes.NewBufferString(`{"text":"replay me"}`))
		req.Header.Set("X-User-ID", "u1")
		req.Header.Set(middleware.HeaderIdempotencyKey, key)
		r.ServeHTTP(w, req)
		return w
	}

	// First request toggles and records the outcome under (user, key).
	w := post()
	if w.Code != http.StatusOK {
		t.Fatalf("first toggle -> %d body=%s", w.Code, w.Body.String())
	}
	if w.Header().Get("Idempotency-Replayed") != "" {
		t.Fatalf("first toggle should not be a replay")
	}
	var first ToggleSavedQuoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !first.Saved {
		t.Fatalf("first toggle should save: %#v", first)
	}

	// Retrying with the same key replays the recorded outcome instead of
	// flipping the save state back.
	w = post()
	if w.Code != http.StatusOK {
		t.Fatalf("replay -> %d body=%s", w.Code, w.Body.String())
	}
	if w.Header().Get("Idempotency-Replayed") != "true" {
		t.Fatalf("replay header missing")
	}
	var second ToggleSavedQuoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &second); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !second.Saved || second.Quote == nil || second.Quote.ID != first.Quote.ID {
		t.Fatalf("replay should return the original save: %#v", second)
	}

	// The row is still saved; the retry did not unsave it.
	if _, err := repo.FindSavedQuote(context.Background(), db, "u1", "replay me"); err != nil {
		t.Fatalf("row should still exist after replay: %v", err)
	}
}

func TestToggleSavedQuote_IdempotencyUnsaveReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newSavedDB(t)
	h := New(stubFeedSvc{}, &services.SavedQuoteService{DB: db})
	r := gin.New()
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, nil))
	r.POST("/saved-quotes", h.ToggleSavedQuote)

	// Seed a save without a key, then unsave with a key.
	seed := httptest.NewRecorder()
	reqSeed := httptest.NewRequest(http.MethodPost, "/saved-quotes",
		bytes.NewBufferString(`{"text":"unsave me"}`))
	reqSeed.Header.Set("X-User-ID", "u1")
	r.ServeHTTP(seed, reqSeed)
	var seeded ToggleSavedQuoteResponse
	_ = json.Unmarshal(seed.Body.Bytes(), &seeded)
	if !seeded.Saved {
		t.Fatalf("seed save failed: %s", seed.Body.String())
	}

	key := uuid.NewString()
	post := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/saved-quotes",
			bytes.NewBufferString(`{"text":"unsave me"}`))
		req.Header.Set("X-User-ID", "u1")
		req.Header.Set(middleware.HeaderIdempotencyKey, key)
		r.ServeHTTP(w, req)
		return w
	}

	w := post()
	var unsaved ToggleSavedQuoteResponse
	_ = json.Unmarshal(w.Body.Bytes(), &unsaved)
	if unsaved.Saved || unsaved.ID != seeded.Quote.ID {
		t.Fatalf("unsave unexpected: %#v", unsaved)
	}

	// Replay the unsave: same outcome, quote stays gone.
	w = post()
	if w.Header().Get("Idempotency-Replayed") != "true" {
		t.Fatalf("replay header missing")
	}
	var replayed ToggleSavedQuoteResponse
	_ = json.Unmarshal(w.Body.Bytes(), &replayed)
	if replayed.Saved || replayed.ID != seeded.Quote.ID {
		t.Fatalf("unsave replay unexpected: %#v", replayed)
	}
}

func TestToggleSavedQuote_IdempotencyTTLConfigurable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newSavedDB(t)
	h := New(stubFeedSvc{}, &services.SavedQuoteService{DB: db}, WithIdempotencyTTL(time.Minute))
	r := gin.New()
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, nil))
	r.POST("/saved-quotes", h.ToggleSavedQuote)

	key := uuid.NewString()
	before := time.Now().UTC()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/saved-quotes",
		bytes.NewBufferString(`{"text":"short ttl"}`))
	req.Header.Set("X-User-ID", "u1")
	req.Header.Set(middleware.HeaderIdempotencyKey, key)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle -> %d body=%s", w.Code, w.Body.String())
	}

	rec, err := repo.GetIdempotency(context.Background(), db, "u1", key, time.Now().UTC())
	if err != nil {
		t.Fatalf("idempotency record: %v", err)
	}
	// The record expires on the configured horizon, not the 24h default.
	ttl := rec.ExpiresAt.Sub(before)
	if ttl <= 0 || ttl > time.Minute+5*time.Second {
		t.Fatalf("expires %v after request; want about 1m", ttl)
	}
}

// ---------- ListSavedQuotes ----------

func TestListSavedQuotes_ETag304_and_SuccessPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newSavedDB(t)
	h := New(stubFeedSvc{}, &services.SavedQuoteService{DB: db})
	r := gin.New()
	r.GET("/saved-quotes", h.ListSavedQuotes)

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		sq := &domain.SavedQuote{
			ID:        uuid.NewString(),
			UserID:    "u1",
			Text:      fmt.Sprintf("quote %d", i),
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}
		if err := db.Create(sq).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	// Compute expected ETag from stats.
	count, maxTS, err := repo.SavedQuotesStats(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var ts int64
	if maxTS != nil {
		ts = maxTS.Unix()
	}
	etag := fmt.Sprintf(`W/"saved:%s:%d:%d"`, "u1", count, ts)

	// 304 path
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/saved-quotes", nil)
	req.Header.Set("X-User-ID", "u1")
	req.Header.Set("If-None-Match", etag)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotModified {
		t.Fatalf("etag 304 -> %d", w.Code)
	}

	// 200 with pagination, newest first
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/saved-quotes?page=1&page_size=2", nil)
	req.Header.Set("X-User-ID", "u1")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list -> %d body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("ETag"); got != etag {
		t.Fatalf("ETag = %q, want %q", got, etag)
	}
	var out ListSavedQuotesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if out.Pagination.Page != 1 || out.Pagination.PageSize != 2 || out.Pagination.Total != 3 {
		t.Fatalf("pagination mismatch: %#v", out.Pagination)
	}
	if out.Pagination.TotalPages != 2 || !out.Pagination.HasNext {
		t.Fatalf("pages/hasnext mismatch: %#v", out.Pagination)
	}
	if len(out.Quotes) != 2 || out.Quotes[0].Text != "quote 2" {
		t.Fatalf("page content mismatch: %#v", out.Quotes)
	}
}

func TestListSavedQuotes_StubSkipsETag_And_ListError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Stub service (not *services.SavedQuoteService) → db==nil → no ETag
	// pre-check; the service error surfaces as 500.
	h := New(stubFeedSvc{}, stubSavedSvc{
		listPage: func(context.Context, string, int, int) ([]domain.SavedQuote, int64, error) {
			return nil, 0, gorm.ErrInvalidField
		},
	})
	r := gin.New()
	r.GET("/saved-quotes", h.ListSavedQuotes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/saved-quotes", nil)
	req.Header.Set("If-None-Match", `W/"nope"`)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d body=%s", w.Code, w.Body.String())
	}
	if et := w.Header().Get("ETag"); et != "" {
		t.Fatalf("stub service should not set ETag, got %q", et)
	}
}

func TestListSavedQuotes_EmptyState_SetsETag_WithZeroTS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newSavedDB(t)
	h := New(stubFeedSvc{}, &services.SavedQuoteService{DB: db})
	r := gin.New()
	r.GET("/saved-quotes", h.ListSavedQuotes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/saved-quotes", nil)
	req.Header.Set("X-User-ID", "u2")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("empty list -> %d body=%s", w.Code, w.Body.String())
	}
	if et := w.Header().Get("ETag"); et != `W/"saved:u2:0:0"` {
		t.Fatalf(`expected ETag W/"saved:u2:0:0", got %q`, et)
	}
	var out ListSavedQuotesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if out.Pagination.Total != 0 || out.Pagination.TotalPages != 0 || out.Pagination.HasNext {
		t.Fatalf("unexpected pagination: %#v", out.Pagination)
	}
}
