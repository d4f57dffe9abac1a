package repositories

import (
	"errors"
	"fmt"
	"time"

	"papelaria/app/models"
	"papelaria/pkg/apperr"
	"papelaria/pkg/metrics"
	"papelaria/pkg/validate"
	"gorm.io/gorm"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// All returns every user with purchases eagerly attached, each purchase
// carrying its item. No ordering is guaranteed.
func (r *UserRepository) All() ([]models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	users := []models.User{} // non-nil so an empty table serialises as []
	if err := r.db.Preload("Purchases").Preload("Purchases.Item").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, apperr.NotFound("User", id)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}

// Create validates and persists a new user. A duplicate email surfaces
// as apperr.ErrDuplicateEmail; field violations as *apperr.ValidationError.
func (r *UserRepository) Create(name, email string) (models.User, error) {
	user := models.User{Name: name, Email: email}

	if errs := validate.Struct(&user); validate.HasErrors(errs) {
		return models.User{}, apperr.Validation(errs)
	}

	defer metrics.ObserveDBQuery("insert", time.Now())

	if err := r.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, apperr.ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}
