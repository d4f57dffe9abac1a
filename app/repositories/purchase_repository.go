package repositories

import (
	"errors"
	"fmt"
	"time"

	"papelaria/app/models"
	"papelaria/pkg/apperr"
	"papelaria/pkg/metrics"
	"gorm.io/gorm"
)

// PurchaseRepository handles database operations for Purchase.
type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// All returns every purchase ordered by id descending, with the owning
// user projected to id/name/email and the item to id/name/price.
func (r *PurchaseRepository) All() ([]models.Purchase, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	purchases := []models.Purchase{} // non-nil so an empty table serialises as []
	err := r.db.Order("id DESC").
		Preload("User", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "email")
		}).
		Preload("Item", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "price")
		}).
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return purchases, nil
}

// Create inserts a purchase after explicitly checking that both the user
// and the item exist. The referential check runs before the insert so a
// missing reference surfaces as *apperr.NotFoundError rather than a
// driver-specific foreign-key failure. A zero quantity defaults to 1.
func (r *PurchaseRepository) Create(userID, itemID uint, quantity int) (models.Purchase, error) {
	if userID == 0 {
		return models.Purchase{}, apperr.MissingField("userId")
	}
	if itemID == 0 {
		return models.Purchase{}, apperr.MissingField("itemId")
	}

	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return models.Purchase{}, apperr.Validation(map[string]string{
			"quantity": "The quantity field must be greater than 0.",
		})
	}

	var user models.User
	err := r.db.Select("id", "name", "email").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Purchase{}, apperr.NotFound("User", userID)
	}
	if err != nil {
		return models.Purchase{}, fmt.Errorf("check user %d: %w", userID, err)
	}

	var item models.Item
	err = r.db.Select("id", "name", "price").First(&item, itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Purchase{}, apperr.NotFound("Item", itemID)
	}
	if err != nil {
		return models.Purchase{}, fmt.Errorf("check item %d: %w", itemID, err)
	}

	purchase := models.Purchase{UserID: userID, ItemID: itemID, Quantity: quantity}

	defer metrics.ObserveDBQuery("insert", time.Now())
	if err := r.db.Create(&purchase).Error; err != nil {
		return models.Purchase{}, fmt.Errorf("create purchase: %w", err)
	}

	// Attach the rows looked up during the referential check, already
	// projected to the shape the API returns.
	purchase.User = &user
	purchase.Item = &item

	return purchase, nil
}
