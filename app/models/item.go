package models

import "time"

// Item is a catalogue product. Read-only through the API; rows come
// from the seeder.
type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name" validate:"required"`
	Price     float64   `gorm:"not null;default:0;check:price >= 0" json:"price" validate:"gte=0"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}
