package models

import "time"

// Store is one catalog entry residents can work at. IDs are stable slugs
// (e.g. "cake-studio") coming from the game catalog, not generated keys.
type Store struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string   `gorm:"size:255;not null" json:"name"`
	Category  string   `gorm:"size:128" json:"category"`
	Products  []string `gorm:"serializer:json" json:"products"`
}
