package migrations

import (
	"papelaria/app/models"
	"papelaria/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260101000001_create_items_table", &CreateItemsTable{})
	migration.Register("20260101000002_create_purchases_table", &CreatePurchasesTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: items --------

type CreateItemsTable struct{}

func (m *CreateItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Item{})
}

func (m *CreateItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("items")
}

// -------- 0003: purchases --------
// Last, so both referenced tables exist when the FK constraints are created.

type CreatePurchasesTable struct{}

func (m *CreatePurchasesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Purchase{})
}

func (m *CreatePurchasesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("purchases")
}
