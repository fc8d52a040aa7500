// Package services – SavedQuoteService
//
// This file implements the SavedQuoteService, which governs the per-user
// saved-quote collection. Saving is a toggle keyed by the exact quote text:
// toggling an unsaved quote creates a row, toggling a saved one deletes it.
// The check-then-write runs inside a transaction, and the race where two
// concurrent toggles both try to create is resolved by the (user_id, text)
// unique constraint.
package services

import (
	"context"
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/montasssar/briefreads/internal/domain"
	"github.com/montasssar/briefreads/internal/repo"
)

// MaxSavedTextRunes caps the accepted quote text length for a toggle.
const MaxSavedTextRunes = 2000

// ToggleResult reports the outcome of a save/unsave toggle. Saved tells
// which way the toggle went; Quote is set on save, DeletedID on unsave.
type ToggleResult struct {
	Saved     bool
	Quote     *domain.SavedQuote
	DeletedID string
}

// SavedQuoteService implements the use-cases around the saved-quote store.
type SavedQuoteService struct {
	// DB is the database handle used for all saved-quote operations.
	DB *gorm.DB
}

// Toggle saves the quote for userID when it is not yet saved, and unsaves it
// when it is. Matching uses the exact text as the natural key; author and
// tags are stored as provided on save and ignored on unsave.
//
// Errors:
//   - ErrEmptyUser when userID is blank.
//   - ErrEmptyText when text is blank.
//   - ErrTextTooLong when text exceeds MaxSavedTextRunes.
//   - The underlying DB error for unexpected failures.
func (s *SavedQuoteService) Toggle(ctx context.Context, userID, text, author string, tags []string) (*ToggleResult, error) {
	if userID == "" {
		return nil, ErrEmptyUser
	}
	if text == "" {
		return nil, ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxSavedTextRunes {
		return nil, ErrTextTooLong
	}

	var out ToggleResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := repo.FindSavedQuote(ctx, tx, userID, text)
		switch {
		case err == nil:
			// Already saved: unsave.
			if err := repo.DeleteSavedQuote(ctx, tx, existing.ID, userID); err != nil {
				return err
			}
			out = ToggleResult{Saved: false, DeletedID: existing.ID}
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			sq, err := repo.CreateSavedQuote(ctx, tx, userID, text, author, tags)
			if err != nil {
				return err
			}
			out = ToggleResult{Saved: true, Quote: sq}
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPage returns a page of the user's saved quotes, newest first, plus the
// total count. It applies defaults for invalid page/pageSize.
func (s *SavedQuoteService) ListPage(ctx context.Context, userID string, page, pageSize int) ([]domain.SavedQuote, int64, error) {
	if userID == "" {
		return nil, 0, ErrEmptyUser
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountSavedQuotes(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.SavedQuote{}, 0, nil
	}

	items, err := repo.ListSavedQuotesPage(ctx, s.DB, userID, offset, pageSize)
	return items, total, err
}
