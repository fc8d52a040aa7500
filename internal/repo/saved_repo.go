// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the SavedQuote
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a saved quote is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - Duplicate saves (same user_id, text) rely on the database unique
//     constraint; the raw gorm error is propagated for the service layer to
//     translate.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/montasssar/briefreads/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateSavedQuote inserts a saved quote for userID. Tags are stored as a
// comma-joined string, mirroring how the original UI persisted them.
// The row ID is a randomly generated UUID and CreatedAt is set to UTC.
func CreateSavedQuote(ctx context.Context, db *gorm.DB, userID, text, author string, tags []string) (*domain.SavedQuote, error) {
	sq := &domain.SavedQuote{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Author:    author,
		Tags:      strings.Join(tags, ","),
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(sq).Error; err != nil {
		return nil, err
	}
	return sq, nil
}

// FindSavedQuote fetches a user's saved quote by its natural key (the exact
// quote text). Returns ErrNotFound when the user has not saved that text.
func FindSavedQuote(ctx context.Context, db *gorm.DB, userID, text string) (*domain.SavedQuote, error) {
	var sq domain.SavedQuote
	err := db.WithContext(ctx).
		Where("user_id = ? AND text = ?", userID, text).
		First(&sq).Error
	if err != nil {
		return nil, err
	}
	return &sq, nil
}

// DeleteSavedQuote removes a saved quote by ID, enforcing user ownership.
// If no rows are affected (row missing or not owned by userID), it returns
// ErrNotFound.
func DeleteSavedQuote(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.SavedQuote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountSavedQuotes returns the total number of quotes saved by userID.
func CountSavedQuotes(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.SavedQuote{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListSavedQuotesPage returns a paginated slice of a user's saved quotes,
// ordered by creation time descending (most recent first). Use
// CountSavedQuotes to obtain the total for pagination metadata.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListSavedQuotesPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.SavedQuote, error) {
	var out []domain.SavedQuote
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetSavedQuote fetches a saved quote by ID regardless of owner. Used by the
// idempotency replay path, which already scopes records by user.
func GetSavedQuote(ctx context.Context, db *gorm.DB, id string) (*domain.SavedQuote, error) {
	var sq domain.SavedQuote
	if err := db.WithContext(ctx).First(&sq, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sq, nil
}

// IsDuplicate reports whether err is a unique-constraint violation, across
// drivers that may not map to gorm.ErrDuplicatedKey.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint") ||
		strings.Contains(low, "constraint failed: unique") ||
		strings.Contains(low, "duplicate key")
}
