package models

import "time"

// Purchase links one User to one Item with a quantity.
// Both foreign keys cascade on delete and update, so removing a user or
// an item removes its purchases.
type Purchase struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	ItemID    uint      `gorm:"not null;index" json:"itemId"`
	Quantity  int       `gorm:"not null;default:1;check:quantity > 0" json:"quantity" validate:"nullable,gt=0"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`

	// Associations. Serialised under their model names, as the
	// storefront expects; nil when not eagerly loaded.
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:UserID" json:"User,omitempty"`
	Item *Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:ItemID" json:"Item,omitempty"`
}
