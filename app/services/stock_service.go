package services

import (
	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/realtime"
	"github.com/damassweet/damas/app/repositories"
	"github.com/damassweet/damas/pkg/cache"
)

// StockService manages the append-only handout ledger.
type StockService struct {
	stock     *repositories.StockRepository
	users     *repositories.UserRepository
	broadcast realtime.Broadcaster
}

func NewStockService(stock *repositories.StockRepository, users *repositories.UserRepository, b realtime.Broadcaster) *StockService {
	return &StockService{stock: stock, users: users, broadcast: b}
}

// RecordHandoutInput is the factory's handout form.
type RecordHandoutInput struct {
	DriverID       uint   `json:"driver_id" validate:"required,integer"`
	QuantitySmall  int    `json:"quantity_small" validate:"gte=0"`
	QuantityMedium int    `json:"quantity_medium" validate:"gte=0"`
	QuantityLarge  int    `json:"quantity_large" validate:"gte=0"`
	Date           string `json:"date" validate:"required,date"`
}

// Record appends a handout row. A second handout for the same driver and
// date is a new row; the day's total is always a sum over rows, which
// preserves the audit trail of morning and afternoon top-ups.
func (s *StockService) Record(in RecordHandoutInput) (models.StockEntry, error) {
	if _, err := s.users.FindByID(in.DriverID); err != nil {
		return models.StockEntry{}, ErrDriverNotFound
	}

	entry := models.StockEntry{
		DriverID:       in.DriverID,
		QuantitySmall:  in.QuantitySmall,
		QuantityMedium: in.QuantityMedium,
		QuantityLarge:  in.QuantityLarge,
		Date:           in.Date,
	}
	if err := s.stock.Create(&entry); err != nil {
		return models.StockEntry{}, err
	}

	fresh, err := s.stock.FindByID(entry.ID)
	if err != nil {
		return models.StockEntry{}, err
	}

	cache.Del(reconciliationCacheKey(fresh.Date)) //nolint:errcheck
	s.broadcast.Publish(realtime.StockUpdated(fresh))
	return fresh, nil
}

// List returns the handout rows for one operational day, or the whole
// ledger when day is empty.
func (s *StockService) List(day string) ([]models.StockEntry, error) {
	if day == "" {
		return s.stock.All()
	}
	return s.stock.ByDate(day)
}
