package services

import (
	"sort"
	"time"

	"github.com/damassweet/damas/app/repositories"
	"github.com/damassweet/damas/pkg/cache"
	"github.com/damassweet/damas/pkg/logger"
)

// reconciliationTTL bounds how stale a cached report can be. Mutations
// invalidate the day they touch, so the TTL only matters for writes that
// bypass the services (manual SQL, seeding).
const reconciliationTTL = 60 * time.Second

func reconciliationCacheKey(day string) string {
	return "reconciliation:" + day
}

// DriverReconciliation is one report row: boxes a driver took against boxes
// they delivered on an operational day.
type DriverReconciliation struct {
	DriverID    uint    `json:"driver_id"`
	DriverName  string  `json:"driver_name"`
	TakenSmall  int     `json:"taken_small"`
	TakenMedium int     `json:"taken_medium"`
	TakenLarge  int     `json:"taken_large"`
	Taken       int     `json:"taken"`
	Delivered   int     `json:"delivered"`
	Difference  int     `json:"difference"`
	Amount      float64 `json:"amount"`
}

// ReportService computes the comptable's read models. Nothing here is
// persisted; every report is an aggregation over the live ledger and orders,
// cached briefly in Redis.
type ReportService struct {
	stock  *repositories.StockRepository
	orders *repositories.OrderRepository
	users  *repositories.UserRepository
}

func NewReportService(stock *repositories.StockRepository, orders *repositories.OrderRepository, users *repositories.UserRepository) *ReportService {
	return &ReportService{stock: stock, orders: orders, users: users}
}

// Reconcile builds the per-driver report for one day: taken is the sum of
// all handout quantities, delivered the sum of box_count over that driver's
// delivered orders created that day, difference = taken − delivered.
// A driver appears when they have handouts, deliveries, or both.
func (s *ReportService) Reconcile(day string) ([]DriverReconciliation, error) {
	key := reconciliationCacheKey(day)

	var cached []DriverReconciliation
	if cache.Get(key, &cached) {
		return cached, nil
	}

	handouts, err := s.stock.TotalsByDriver(day)
	if err != nil {
		return nil, err
	}
	delivered, err := s.orders.DeliveredByDriver(day)
	if err != nil {
		return nil, err
	}

	byDriver := make(map[uint]*DriverReconciliation)
	rowFor := func(driverID uint) *DriverReconciliation {
		if row, ok := byDriver[driverID]; ok {
			return row
		}
		row := &DriverReconciliation{DriverID: driverID}
		if user, err := s.users.FindByID(driverID); err == nil {
			row.DriverName = user.Name
		}
		byDriver[driverID] = row
		return row
	}

	for _, h := range handouts {
		row := rowFor(h.DriverID)
		row.TakenSmall += h.Small
		row.TakenMedium += h.Medium
		row.TakenLarge += h.Large
		row.Taken += h.Small + h.Medium + h.Large
	}
	for _, d := range delivered {
		row := rowFor(d.DriverID)
		row.Delivered += d.Boxes
		row.Amount += d.Amount
	}

	report := make([]DriverReconciliation, 0, len(byDriver))
	for _, row := range byDriver {
		row.Difference = row.Taken - row.Delivered
		report = append(report, *row)
	}
	sort.Slice(report, func(i, j int) bool {
		return report[i].DriverID < report[j].DriverID
	})

	if err := cache.Set(key, report, reconciliationTTL); err != nil {
		logger.Warn("report: cache reconciliation", "day", day, "error", err)
	}

	return report, nil
}
