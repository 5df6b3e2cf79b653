package models

import "time"

// StockEntry records boxes handed to a driver for an operational day.
// Entries are append-only: a second handout for the same driver and date is a
// new row, never an update, so the day's total is always a sum over rows.
type StockEntry struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	DriverID       uint      `gorm:"not null;index" json:"driver_id"`
	DriverName     string    `gorm:"-:migration;->" json:"driver_name,omitempty"`
	QuantitySmall  int       `gorm:"not null;default:0" json:"quantity_small"`
	QuantityMedium int       `gorm:"not null;default:0" json:"quantity_medium"`
	QuantityLarge  int       `gorm:"not null;default:0" json:"quantity_large"`
	Date           string    `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD, the operational day
	CreatedAt      time.Time `json:"created_at"`
}

// TableName keeps the original table name.
func (StockEntry) TableName() string { return "daily_stock" }

// Total is the number of boxes in this handout across all sizes.
func (s StockEntry) Total() int {
	return s.QuantitySmall + s.QuantityMedium + s.QuantityLarge
}
