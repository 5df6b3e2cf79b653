package repositories

import (
	"time"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/pkg/metrics"
	"gorm.io/gorm"
)

// StockRepository handles the append-only daily_stock ledger.
type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

// Create appends a handout row. Existing rows are never updated.
func (r *StockRepository) Create(entry *models.StockEntry) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(entry).Error
}

// FindByID returns one handout row with driver_name resolved.
func (r *StockRepository) FindByID(id uint) (models.StockEntry, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var entry models.StockEntry
	err := r.joined().
		Where("daily_stock.id = ?", id).
		Take(&entry).Error
	return entry, err
}

// ByDate lists every handout row for one operational day, most recent
// first, with driver_name resolved.
func (r *StockRepository) ByDate(day string) ([]models.StockEntry, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var entries []models.StockEntry
	err := r.joined().
		Where("daily_stock.date = ?", day).
		Order("daily_stock.id DESC").
		Find(&entries).Error
	return entries, err
}

// All returns the entire ledger, most recent first. Unbounded; the ledger
// grows one row per handout.
func (r *StockRepository) All() ([]models.StockEntry, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var entries []models.StockEntry
	err := r.joined().
		Order("daily_stock.id DESC").
		Find(&entries).Error
	return entries, err
}

func (r *StockRepository) joined() *gorm.DB {
	return r.db.Model(&models.StockEntry{}).
		Select("daily_stock.*, users.name AS driver_name").
		Joins("LEFT JOIN users ON users.id = daily_stock.driver_id")
}

// HandoutTotals is one aggregation row: total boxes handed to a driver on a
// given day, summed across the day's append-only rows.
type HandoutTotals struct {
	DriverID uint `json:"driver_id"`
	Small    int  `json:"small"`
	Medium   int  `json:"medium"`
	Large    int  `json:"large"`
}

// TotalsByDriver sums a day's handouts per driver.
func (r *StockRepository) TotalsByDriver(day string) ([]HandoutTotals, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var rows []HandoutTotals
	err := r.db.Model(&models.StockEntry{}).
		Select("driver_id, SUM(quantity_small) AS small, SUM(quantity_medium) AS medium, SUM(quantity_large) AS large").
		Where("date = ?", day).
		Group("driver_id").
		Scan(&rows).Error
	return rows, err
}
