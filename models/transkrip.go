package models

import "time"

// Transkrip is the recognized text of one uploaded handwriting image,
// owned by a user. One transcript per user+file.
type Transkrip struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uint   `gorm:"index;not null;uniqueIndex:idx_user_file"`
	FileName  string `gorm:"size:255;not null;uniqueIndex:idx_user_file"`
	Text      string `gorm:"type:text;not null"`
	Engine    string `gorm:"size:32;not null"` // which backend produced the text
}
