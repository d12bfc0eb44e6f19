package models

import "time"

// Profile represents a user's profile (one-to-one with User).
type Profile struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
	// Active is the soft-state flag; records are never physically deleted.
	Active  bool     `gorm:"default:true;not null"`
	UserID  uint     `gorm:"uniqueIndex;not null"`
	User    User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name    string   `gorm:"size:255;not null"`
	Email   string   `gorm:"size:255"`
	Phone   string   `gorm:"size:64"`
	Uploads []Upload `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}
