package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/repositories"
)

func newRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Order{}, &models.StockEntry{}))
	return db
}

func seedDriver(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "x", Role: models.RoleLivreur}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// The operational day is a half-open range: midnight of the day inclusive,
// midnight of the next day exclusive.
func TestDeliveredByDriverDayBoundaries(t *testing.T) {
	db := newRepoDB(t)
	repo := repositories.NewOrderRepository(db)
	ali := seedDriver(t, db, "Ali", "ali@damas.dz")

	mk := func(status string, driverID *uint, boxCount int, createdAt time.Time) {
		t.Helper()
		require.NoError(t, db.Create(&models.Order{
			ClientName: "Client",
			Commune:    "Hydra",
			BoxSize:    models.BoxSmall,
			BoxCount:   boxCount,
			Amount:     float64(boxCount) * 4500,
			Status:     status,
			DriverID:   driverID,
			CreatedAt:  createdAt,
		}).Error)
	}

	mk(models.StatusDelivered, &ali.ID, 2, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	mk(models.StatusDelivered, &ali.ID, 1, time.Date(2026, 8, 1, 23, 59, 59, 0, time.UTC))
	// Outside the day on both sides.
	mk(models.StatusDelivered, &ali.ID, 4, time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC))
	mk(models.StatusDelivered, &ali.ID, 8, time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC))
	// Same day, but not delivered or not assigned.
	mk(models.StatusDelivering, &ali.ID, 16, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	mk(models.StatusDelivered, nil, 32, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	rows, err := repo.DeliveredByDriver("2026-08-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.Equal(t, ali.ID, rows[0].DriverID)
	require.Equal(t, 3, rows[0].Boxes)
	require.Equal(t, 2, rows[0].Orders)
	require.Equal(t, 13500.0, rows[0].Amount)
}

func TestDeliveredByDriverRejectsBadDay(t *testing.T) {
	db := newRepoDB(t)
	repo := repositories.NewOrderRepository(db)

	_, err := repo.DeliveredByDriver("01/08/2026")
	require.Error(t, err)
}
