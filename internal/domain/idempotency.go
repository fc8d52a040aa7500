// Package domain defines the core persistence models for the application.
package domain

import "time"

// Idempotency records the outcome of a previously processed save/unsave
// toggle, keyed by (user_id, key). It enables safe retries of the toggle
// endpoint: replaying the same key returns the originally produced state
// instead of flipping the save again.
type Idempotency struct {
	ID        string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	UserID    string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_key,priority:1"`
	Key       string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_key,priority:2"`
	QuoteID   string    `gorm:"type:TEXT NOT NULL"`
	Saved     bool      `gorm:"type:BOOLEAN NOT NULL"`
	Status    int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
