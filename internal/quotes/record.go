// Package quotes implements the quote-serving core: a gzip JSONL corpus
// loader, a canonical tag vocabulary with keyword inference, a capped
// per-tag index, a lazily built process-wide warm cache, set-based tag
// filtering, and a seed-stable shuffle/paginator. It is intentionally small
// and free of transport concerns, but engineered with production-grade
// ergonomics:
//
//   - No logging in the library (callers decide how/what to log)
//   - Clear, documented types and functional options (Option pattern)
//   - Immutable, read-only cache after construction (safe for concurrent use)
//   - Deterministic filtering and permutation (same seed, same order)
//   - Sensible defaults (reservoir cap, per-tag bucket cap)
package quotes

import (
	"strings"

	"golang.org/x/text/cases"
)

// Quote is a single immutable corpus record. Text and Author are trimmed at
// construction; Tags is the canonical, deduplicated tag set. The folded forms
// are precomputed once so per-request substring matching never re-lowers the
// corpus.
type Quote struct {
	Text   string   `json:"text"`
	Author string   `json:"author"`
	Tags   []string `json:"tags,omitempty"`

	foldedText   string
	foldedAuthor string
}

// New constructs a Quote with trimmed fields and precomputed folded forms.
// Tags are stored as given; callers are expected to pass canonical tags
// (see Canonicalize).
func New(text, author string, tags []string) *Quote {
	text = strings.TrimSpace(text)
	author = strings.TrimSpace(author)
	return &Quote{
		Text:         text,
		Author:       author,
		Tags:         tags,
		foldedText:   Fold(text),
		foldedAuthor: Fold(author),
	}
}

// Key returns the content identity of the record: the pair of folded text and
// folded author. Two records with the same Key are duplicates for corpus
// deduplication purposes.
func (q *Quote) Key() string {
	return q.foldedText + "\x1f" + q.foldedAuthor
}

// matchesQuery reports whether the folded query is a substring of the folded
// text or the folded author. An empty query always matches.
func (q *Quote) matchesQuery(folded string) bool {
	if folded == "" {
		return true
	}
	return strings.Contains(q.foldedText, folded) || strings.Contains(q.foldedAuthor, folded)
}

// matchesAuthor reports whether the folded author filter is a substring of
// the folded author. An empty filter always matches.
func (q *Quote) matchesAuthor(folded string) bool {
	if folded == "" {
		return true
	}
	return strings.Contains(q.foldedAuthor, folded)
}

// Fold returns the Unicode case-folded form of s, the canonical input for
// every case-insensitive comparison in this package. A fresh Caser is built
// per call because cases.Caser is not safe for concurrent use.
func Fold(s string) string {
	return cases.Fold().String(s)
}
