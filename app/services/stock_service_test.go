package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/realtime"
	"github.com/damassweet/damas/app/services"
)

func TestRecordHandout(t *testing.T) {
	s := newStack(t)
	ali := seedUser(t, s.db, "Ali", "ali@damas.dz", models.RoleLivreur)

	entry, err := s.stock.Record(services.RecordHandoutInput{
		DriverID:      ali.ID,
		QuantitySmall: 3,
		QuantityLarge: 1,
		Date:          "2026-08-01",
	})
	require.NoError(t, err)

	require.Equal(t, ali.ID, entry.DriverID)
	require.Equal(t, "Ali", entry.DriverName)
	require.Equal(t, 4, entry.Total())
	require.Equal(t, []string{realtime.TypeStockUpdated}, eventTypes(s.events))
}

func TestRecordHandoutUnknownDriver(t *testing.T) {
	s := newStack(t)

	_, err := s.stock.Record(services.RecordHandoutInput{
		DriverID: 123,
		Date:     "2026-08-01",
	})
	require.ErrorIs(t, err, services.ErrDriverNotFound)
	require.Empty(t, s.events.Events)
}

// A second handout for the same driver and date is a new row, never an
// update. The day's total is the sum over rows.
func TestHandoutsAreAppendOnly(t *testing.T) {
	s := newStack(t)
	ali := seedUser(t, s.db, "Ali", "ali@damas.dz", models.RoleLivreur)

	morning, err := s.stock.Record(services.RecordHandoutInput{
		DriverID:      ali.ID,
		QuantitySmall: 5,
		Date:          "2026-08-01",
	})
	require.NoError(t, err)

	afternoon, err := s.stock.Record(services.RecordHandoutInput{
		DriverID:      ali.ID,
		QuantitySmall: 2,
		Date:          "2026-08-01",
	})
	require.NoError(t, err)
	require.NotEqual(t, morning.ID, afternoon.ID)

	rows, err := s.stock.List("2026-08-01")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	total := 0
	for _, row := range rows {
		total += row.QuantitySmall
	}
	require.Equal(t, 7, total)
}

func TestListStock(t *testing.T) {
	s := newStack(t)
	ali := seedUser(t, s.db, "Ali", "ali@damas.dz", models.RoleLivreur)

	for _, day := range []string{"2026-08-01", "2026-08-01", "2026-08-02"} {
		_, err := s.stock.Record(services.RecordHandoutInput{
			DriverID:      ali.ID,
			QuantityLarge: 1,
			Date:          day,
		})
		require.NoError(t, err)
	}

	byDay, err := s.stock.List("2026-08-01")
	require.NoError(t, err)
	require.Len(t, byDay, 2)

	// Empty day returns the whole ledger, newest entry first.
	all, err := s.stock.List("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "2026-08-02", all[0].Date)
}
