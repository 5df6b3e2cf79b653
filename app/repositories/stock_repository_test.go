package repositories_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/repositories"
	"github.com/damassweet/damas/pkg/metrics"
)

// selectObservations reads the sample count of the "select" query histogram.
func selectObservations(t *testing.T) uint64 {
	t.Helper()

	obs, err := metrics.DBQueryDuration.GetMetricWithLabelValues("select")
	require.NoError(t, err)

	var m dto.Metric
	require.NoError(t, obs.(prometheus.Metric).Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestStockFindByIDResolvesDriverAndObserves(t *testing.T) {
	db := newRepoDB(t)
	repo := repositories.NewStockRepository(db)
	ali := seedDriver(t, db, "Ali", "ali@damas.dz")

	entry := models.StockEntry{DriverID: ali.ID, QuantitySmall: 3, Date: "2026-08-01"}
	require.NoError(t, repo.Create(&entry))

	before := selectObservations(t)
	got, err := repo.FindByID(entry.ID)
	require.NoError(t, err)

	require.Equal(t, "Ali", got.DriverName)
	require.Equal(t, 3, got.QuantitySmall)
	require.Equal(t, before+1, selectObservations(t),
		"FindByID must record one select observation")
}
