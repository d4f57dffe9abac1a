package models

import "time"

// User is a registered storefront customer.
// Deleting a user cascades to their purchases (constraint declared on
// the Purchase side, where the foreign key lives).
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:100;not null" json:"name" validate:"required,min=2,max=100"`
	Email     string     `gorm:"uniqueIndex;size:255;not null" json:"email" validate:"required,email"`
	CreatedAt time.Time  `json:"createdAt,omitzero"`
	UpdatedAt time.Time  `json:"updatedAt,omitzero"`
	Purchases []Purchase `json:"Purchases,omitempty"`
}
