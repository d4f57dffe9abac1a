package seeders_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"papelaria/app/models"
	"papelaria/database/seeders"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}, &models.Purchase{}))
	return db
}

func counts(t *testing.T, db *gorm.DB) (users, items, purchases int64) {
	t.Helper()
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Item{}).Count(&items).Error)
	require.NoError(t, db.Model(&models.Purchase{}).Count(&purchases).Error)
	return users, items, purchases
}

func TestSeedShopPopulatesEmptyStore(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, seeders.SeedShop(db))

	users, items, purchases := counts(t, db)
	require.EqualValues(t, 3, users)
	require.EqualValues(t, 6, items)
	require.EqualValues(t, 4, purchases)
}

func TestSeedShopFirstPurchaseLinksFirstRows(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, seeders.SeedShop(db))

	var firstUser models.User
	require.NoError(t, db.Order("id ASC").First(&firstUser).Error)
	var firstItem models.Item
	require.NoError(t, db.Order("id ASC").First(&firstItem).Error)

	var firstPurchase models.Purchase
	require.NoError(t, db.Order("id ASC").First(&firstPurchase).Error)

	require.Equal(t, firstUser.ID, firstPurchase.UserID)
	require.Equal(t, firstItem.ID, firstPurchase.ItemID)
	require.Equal(t, 2, firstPurchase.Quantity)
}

func TestSeedShopIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, seeders.SeedShop(db))
	require.NoError(t, seeders.SeedShop(db))

	users, items, purchases := counts(t, db)
	require.EqualValues(t, 3, users)
	require.EqualValues(t, 6, items)
	require.EqualValues(t, 4, purchases)
}

// A store with users but no items is left untouched. This mirrors the
// zero-count guard: partially wiped data is never reseeded.
func TestSeedShopSkipsPartiallySeededStore(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Name: "Ana", Email: "ana@x.com"}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, seeders.SeedShop(db))

	users, items, purchases := counts(t, db)
	require.EqualValues(t, 1, users)
	require.Zero(t, items)
	require.Zero(t, purchases)
}

func TestRunAllExecutesRegisteredSeeders(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, seeders.RunAll(db))

	users, items, purchases := counts(t, db)
	require.EqualValues(t, 3, users)
	require.EqualValues(t, 6, items)
	require.EqualValues(t, 4, purchases)
}
