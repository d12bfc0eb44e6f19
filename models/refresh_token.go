package models

import "time"

// RefreshToken stores the sha256 of a refresh token so raw tokens never touch
// the database. Rotation revokes the old row and inserts a new one.
type RefreshToken struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uint      `gorm:"index;not null"`
	TokenHash string    `gorm:"size:128;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"index;not null"`
	Revoked   bool      `gorm:"default:false"`
}
