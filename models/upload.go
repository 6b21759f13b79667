package models

import (
	"time"
)

// Upload represents a screenshot uploaded for resident extraction. Failed
// uploads are kept (not deleted) so the front-end/admin can review them.
type Upload struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	FileName    string  `gorm:"size:255;not null"`
	StorePath   string  `gorm:"column:store_path;size:512"` // public relative path (e.g. public/screens/xxx.png)
	ProfileID   uint    `gorm:"index;not null"`
	Profile     Profile `gorm:"foreignKey:ProfileID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ContentType string  `gorm:"size:128"`
	// Number of resident candidates extracted from this screenshot.
	CandidateCount int    `gorm:"default:0"`
	Failed         bool   `gorm:"default:false;index"`
	FailedReason   string `gorm:"size:255"`
}
