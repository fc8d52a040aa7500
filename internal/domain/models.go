// Package domain defines the persistence models for saved quotes and
// idempotency records. These types are mapped with GORM and form the data
// layer of the BriefReads backend. The quote corpus itself is never
// persisted; only per-user saves are.
package domain

import "time"

// SavedQuote is one quote a user chose to keep. The quote text is the
// natural key for save/unsave matching, so (user_id, text) is unique.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - UserID: opaque identifier supplied by the auth collaborator; indexed.
//   - Text: full quote text; part of the per-user uniqueness key.
//   - Author: quote author as displayed; may be empty.
//   - Tags: comma-joined canonical tags captured at save time.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//
// Unsaving deletes the row outright. There is deliberately no soft-delete
// marker: a soft-deleted row would keep occupying the (user_id, text) unique
// index and block re-saving the same quote.
type SavedQuote struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:varchar(64);not null;index;uniqueIndex:ux_saved_user_text,priority:1"`
	Text      string    `json:"text"       gorm:"type:text;not null;uniqueIndex:ux_saved_user_text,priority:2"`
	Author    string    `json:"author"     gorm:"type:varchar(255);not null;default:''"`
	Tags      string    `json:"tags"       gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for SavedQuote.
func (SavedQuote) TableName() string { return "saved_quotes" }
