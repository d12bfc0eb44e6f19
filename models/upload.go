package models

import "time"

// Upload is one handwriting image stored for a profile. The file is kept even
// when recognition fails so the owner can retry or review it.
type Upload struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	FileName    string  `gorm:"size:255;not null"` // original client file name
	StorePath   string  `gorm:"column:store_path;size:512"`
	ProfileID   uint    `gorm:"index;not null"`
	Profile     Profile `gorm:"foreignKey:ProfileID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ContentType string  `gorm:"size:128"`
	TranskripID *uint   `gorm:"index"` // set once recognition succeeded
	// Recognition failure is recorded, not hidden; the record stays reviewable.
	Failed       bool   `gorm:"default:false;index"`
	FailedReason string `gorm:"size:255"`
}
