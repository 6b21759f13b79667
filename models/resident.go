package models

import "time"

// Resident is an imported town resident with their current and dream jobs
// resolved against the store catalog. Name is unique; re-importing the same
// roster updates the existing row instead of duplicating it.
type Resident struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"size:255;not null;uniqueIndex" json:"name"`

	CurrentJobRaw     string  `gorm:"size:255" json:"currentJobRaw"`
	CurrentJobStoreID *string `gorm:"size:64;index" json:"currentJobStoreId"`
	CurrentStore      *Store  `gorm:"foreignKey:CurrentJobStoreID;references:ID" json:"-"`

	DreamJobRaw     string  `gorm:"size:255" json:"dreamJobRaw"`
	DreamJobStoreID *string `gorm:"size:64;index" json:"dreamJobStoreId"`
	DreamStore      *Store  `gorm:"foreignKey:DreamJobStoreID;references:ID" json:"-"`

	MatchConfidence float64 `json:"matchConfidence"`
	SourceFileName  string  `gorm:"size:255" json:"sourceFileName"`
}
