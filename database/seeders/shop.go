package seeders

import (
	"fmt"

	"papelaria/app/models"
	"papelaria/pkg/logger"
	"gorm.io/gorm"
)

func init() {
	Register("shop", SeedShop)
}

// SeedShop populates an empty store with the demo catalogue: 3 users,
// 6 items and 4 purchases linking them.
//
// The guard counts users and items; only when BOTH are zero does the
// seed run, which makes it idempotent across restarts. A store with
// users but no items (or the reverse) is intentionally left alone;
// partially wiped data is not reseeded.
func SeedShop(db *gorm.DB) error {
	var userCount, itemCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if err := db.Model(&models.Item{}).Count(&itemCount).Error; err != nil {
		return fmt.Errorf("count items: %w", err)
	}

	if userCount != 0 || itemCount != 0 {
		logger.Info("seed: store not empty, skipping", "users", userCount, "items", itemCount)
		return nil
	}

	users := []models.User{
		{Name: "Ana Souza", Email: "ana.souza@example.com"},
		{Name: "Bruno Lima", Email: "bruno.lima@example.com"},
		{Name: "Carla Mendes", Email: "carla.mendes@example.com"},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	items := []models.Item{
		{Name: "Caderno Espiral 96 folhas", Price: 24.90},
		{Name: "Caneta Esferográfica Azul", Price: 3.50},
		{Name: "Lápis Preto HB", Price: 1.75},
		{Name: "Borracha Branca", Price: 2.50},
		{Name: "Estojo Escolar", Price: 19.90},
		{Name: "Marcador Fluorescente", Price: 6.90},
	}
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("seed items: %w", err)
	}

	// Purchases reference the just-created rows positionally.
	purchases := []models.Purchase{
		{UserID: users[0].ID, ItemID: items[0].ID, Quantity: 2},
		{UserID: users[1].ID, ItemID: items[2].ID, Quantity: 1},
		{UserID: users[2].ID, ItemID: items[4].ID, Quantity: 1},
		{UserID: users[0].ID, ItemID: items[3].ID, Quantity: 3},
	}
	if err := db.Create(&purchases).Error; err != nil {
		return fmt.Errorf("seed purchases: %w", err)
	}

	logger.Info("seed: shop data created",
		"users", len(users), "items", len(items), "purchases", len(purchases))
	return nil
}
