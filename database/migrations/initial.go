package migrations

import (
	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260105000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260105000001_create_orders_table", &CreateOrdersTable{})
	migration.Register("20260105000002_create_daily_stock_table", &CreateDailyStockTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: orders --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}

// -------- 0003: daily_stock --------

type CreateDailyStockTable struct{}

func (m *CreateDailyStockTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.StockEntry{})
}

func (m *CreateDailyStockTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("daily_stock")
}
