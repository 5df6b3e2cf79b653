package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/services"
)

// Orders are created "now", so the reconciliation day under test is today.
// UTC because the database groups by the UTC date of created_at.
func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func TestReconcileTakenVersusDelivered(t *testing.T) {
	s := newStack(t)
	ali := seedUser(t, s.db, "Ali", "ali@damas.dz", models.RoleLivreur)
	day := today()

	// Ali takes 7 boxes over two handouts.
	_, err := s.stock.Record(services.RecordHandoutInput{
		DriverID:      ali.ID,
		QuantitySmall: 3,
		QuantityLarge: 1,
		Date:          day,
	})
	require.NoError(t, err)
	_, err = s.stock.Record(services.RecordHandoutInput{
		DriverID:       ali.ID,
		QuantityMedium: 3,
		Date:           day,
	})
	require.NoError(t, err)

	// Ali delivers 4 of them across two orders; a third stays delivering.
	deliver := func(boxCount int, amount float64, status string) {
		t.Helper()
		order, err := s.orders.Create(services.CreateOrderInput{
			ClientName: "Client",
			Commune:    "Hydra",
			BoxSize:    models.BoxSmall,
			BoxCount:   boxCount,
			Amount:     amount,
		}, nil)
		require.NoError(t, err)
		_, err = s.orders.AssignDriver(order.ID, ali.ID)
		require.NoError(t, err)
		if status == models.StatusDelivered {
			_, err = s.orders.UpdateStatus(order.ID, status, "")
			require.NoError(t, err)
		}
	}
	deliver(1, 4500, models.StatusDelivered)
	deliver(3, 13500, models.StatusDelivered)
	deliver(2, 9000, models.StatusDelivering)

	report, err := s.reports.Reconcile(day)
	require.NoError(t, err)
	require.Len(t, report, 1)

	row := report[0]
	require.Equal(t, ali.ID, row.DriverID)
	require.Equal(t, "Ali", row.DriverName)
	require.Equal(t, 3, row.TakenSmall)
	require.Equal(t, 3, row.TakenMedium)
	require.Equal(t, 1, row.TakenLarge)
	require.Equal(t, 7, row.Taken)
	require.Equal(t, 4, row.Delivered)
	require.Equal(t, 3, row.Difference)
	require.Equal(t, 18000.0, row.Amount)
}

func TestReconcileDriverWithDeliveriesOnly(t *testing.T) {
	s := newStack(t)
	samir := seedUser(t, s.db, "Samir", "samir@damas.dz", models.RoleLivreur)

	order, err := s.orders.Create(services.CreateOrderInput{
		ClientName: "Client",
		Commune:    "Hydra",
		BoxSize:    models.BoxLarge,
		BoxCount:   2,
		Amount:     9000,
	}, nil)
	require.NoError(t, err)
	_, err = s.orders.AssignDriver(order.ID, samir.ID)
	require.NoError(t, err)
	_, err = s.orders.UpdateStatus(order.ID, models.StatusDelivered, "")
	require.NoError(t, err)

	report, err := s.reports.Reconcile(today())
	require.NoError(t, err)
	require.Len(t, report, 1)

	// A driver with deliveries but no handouts shows a negative difference.
	row := report[0]
	require.Equal(t, 0, row.Taken)
	require.Equal(t, 2, row.Delivered)
	require.Equal(t, -2, row.Difference)
}

func TestReconcileEmptyDay(t *testing.T) {
	s := newStack(t)

	report, err := s.reports.Reconcile("2020-01-01")
	require.NoError(t, err)
	require.Empty(t, report)
}

func TestReconcileSortsByDriverID(t *testing.T) {
	s := newStack(t)
	day := today()

	drivers := []models.User{
		seedUser(t, s.db, "Ali", "ali@damas.dz", models.RoleLivreur),
		seedUser(t, s.db, "Samir", "samir@damas.dz", models.RoleLivreur),
		seedUser(t, s.db, "Yacine", "yacine@damas.dz", models.RoleLivreur),
	}
	// Record in reverse to make sure the sort does the work.
	for i := len(drivers) - 1; i >= 0; i-- {
		_, err := s.stock.Record(services.RecordHandoutInput{
			DriverID:      drivers[i].ID,
			QuantitySmall: i + 1,
			Date:          day,
		})
		require.NoError(t, err)
	}

	report, err := s.reports.Reconcile(day)
	require.NoError(t, err)
	require.Len(t, report, 3)
	for i := 1; i < len(report); i++ {
		require.Less(t, report[i-1].DriverID, report[i].DriverID)
	}
}
