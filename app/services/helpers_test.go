package services_test

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/realtime"
	"github.com/damassweet/damas/app/repositories"
	"github.com/damassweet/damas/app/services"
	"github.com/damassweet/damas/pkg/auth"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.StockEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedUser inserts an account directly, bypassing the service layer.
func seedUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Name: name, Email: email, Password: hash, Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

// stack bundles the repositories and services under test around one database
// and one event recorder.
type stack struct {
	db       *gorm.DB
	events   *realtime.Recorder
	orders   *services.OrderService
	users    *services.UserService
	stock    *services.StockService
	reports  *services.ReportService
	authSvc  *services.AuthService
	orderRep *repositories.OrderRepository
}

func newStack(t *testing.T) *stack {
	t.Helper()

	db := newTestDB(t)
	rec := &realtime.Recorder{}

	userRepo := repositories.NewUserRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	stockRepo := repositories.NewStockRepository(db)

	return &stack{
		db:       db,
		events:   rec,
		orders:   services.NewOrderService(orderRepo, userRepo, rec),
		users:    services.NewUserService(userRepo, rec),
		stock:    services.NewStockService(stockRepo, userRepo, rec),
		reports:  services.NewReportService(stockRepo, orderRepo, userRepo),
		authSvc:  services.NewAuthService(userRepo),
		orderRep: orderRepo,
	}
}

// eventTypes flattens the recorder for easy assertions.
func eventTypes(rec *realtime.Recorder) []string {
	types := make([]string, len(rec.Events))
	for i, e := range rec.Events {
		types[i] = e.Type()
	}
	return types
}
