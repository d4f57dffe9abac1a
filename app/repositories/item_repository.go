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

// ItemRepository handles database operations for Item.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// All returns every item, ordered by name ascending regardless of
// insertion order.
func (r *ItemRepository) All() ([]models.Item, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	items := []models.Item{} // non-nil so an empty table serialises as []
	if err := r.db.Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// FindByID looks up an item by primary key.
func (r *ItemRepository) FindByID(id uint) (models.Item, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var item models.Item
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Item{}, apperr.NotFound("Item", id)
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("find item %d: %w", id, err)
	}
	return item, nil
}
