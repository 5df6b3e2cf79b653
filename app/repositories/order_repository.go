package repositories

import (
	"fmt"
	"time"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/pkg/metrics"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for Order. Every read joins
// users so DriverName arrives populated; callers never see a bare row.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// withDriver is the base query for order reads.
func (r *OrderRepository) withDriver() *gorm.DB {
	return r.db.Model(&models.Order{}).
		Select("orders.*, users.name AS driver_name").
		Joins("LEFT JOIN users ON users.id = orders.driver_id")
}

// FindByID returns a single order with driver_name resolved.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var order models.Order
	err := r.withDriver().Where("orders.id = ?", id).Take(&order).Error
	return order, err
}

// All returns every order, newest first, with driver_name resolved.
func (r *OrderRepository) All() ([]models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var orders []models.Order
	err := r.withDriver().Order("orders.created_at DESC").Find(&orders).Error
	return orders, err
}

// Create persists a new order.
func (r *OrderRepository) Create(order *models.Order) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(order).Error
}

// UpdateFields applies a partial update to one order. The column map keeps
// zero values (admin_confirmed = 0, empty failure_reason) intact, which a
// struct update would silently skip.
func (r *OrderRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(fields).Error
}

// DeliveredTotals is one aggregation row: delivered volume for a driver and
// box size on a given operational day.
type DeliveredTotals struct {
	DriverID uint    `json:"driver_id"`
	BoxSize  string  `json:"box_size"`
	Boxes    int     `json:"boxes"`
	Orders   int     `json:"orders"`
	Amount   float64 `json:"amount"`
}

// DeliveredByDriver aggregates delivered orders for one day, grouped by
// driver and box size. The operational day is the order's creation day,
// matched as a half-open UTC range; the supported dialects have no common
// DATE() function.
func (r *OrderRepository) DeliveredByDriver(day string) ([]DeliveredTotals, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	start, err := time.ParseInLocation("2006-01-02", day, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("orders: bad day %q: %w", day, err)
	}
	end := start.AddDate(0, 0, 1)

	var rows []DeliveredTotals
	err = r.db.Model(&models.Order{}).
		Select("driver_id, box_size, SUM(box_count) AS boxes, COUNT(*) AS orders, SUM(amount) AS amount").
		Where("status = ? AND driver_id IS NOT NULL AND created_at >= ? AND created_at < ?",
			models.StatusDelivered, start, end).
		Group("driver_id, box_size").
		Scan(&rows).Error
	return rows, err
}
