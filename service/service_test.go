package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gourmet-express/api/config"
	"github.com/gourmet-express/api/models"
	"github.com/gourmet-express/api/store"
)

// newTestServicesDB builds order and payment services over a fresh in-memory
// database seeded with the demo catalog, exposing the db for tests that need
// extra fixture rows.
func newTestServicesDB(t *testing.T) (*OrderService, *PaymentService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	if err := config.Seed(db); err != nil {
		t.Fatalf("failed to seed test db: %v", err)
	}

	ledger := store.NewOrderLedger(db)
	return NewOrderService(store.NewCatalogStore(db), ledger), NewPaymentService(ledger), db
}

func newTestServices(t *testing.T) (*OrderService, *PaymentService) {
	t.Helper()
	orders, payments, _ := newTestServicesDB(t)
	return orders, payments
}
