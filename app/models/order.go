package models

import "time"

// Order statuses.
const (
	StatusPending    = "pending"
	StatusDelivering = "delivering"
	StatusDelivered  = "delivered"
	StatusFailed     = "failed"
)

// Statuses lists every valid order status.
var Statuses = []string{StatusPending, StatusDelivering, StatusDelivered, StatusFailed}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

// Box sizes, kept in Arabic as stored by the business.
const (
	BoxSmall  = "صغير"
	BoxMedium = "متوسط"
	BoxLarge  = "كبير"
)

// BoxSizes lists the three package-size categories.
var BoxSizes = []string{BoxSmall, BoxMedium, BoxLarge}

// ValidBoxSize reports whether size is one of the three categories.
func ValidBoxSize(size string) bool {
	return size == BoxSmall || size == BoxMedium || size == BoxLarge
}

// DefaultProduct is the product label used when none is given.
const DefaultProduct = "البوكس الفاخر داماس"

// Failure reason codes a driver can pick; "other" carries custom text.
const (
	FailureClientAbsent  = "client_absent"
	FailureWrongAddress  = "wrong_address"
	FailureClientRefused = "client_refused"
	FailureNoAnswer      = "no_answer"
	FailureOther         = "other"
)

// Order is a delivery order. DriverName is populated by a LEFT JOIN on every
// read so clients always receive a human-readable driver label; it is not a
// column of the orders table.
type Order struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ClientName     string    `gorm:"size:255;not null" json:"client_name"`
	ClientPhone    string    `gorm:"size:50" json:"client_phone,omitempty"`
	Commune        string    `gorm:"size:100;not null" json:"commune"`
	Product        string    `gorm:"size:255;default:البوكس الفاخر داماس" json:"product"`
	BoxSize        string    `gorm:"size:20;not null" json:"box_size"`
	BoxCount       int       `gorm:"not null;default:1" json:"box_count"`
	Amount         float64   `gorm:"not null" json:"amount"`
	Status         string    `gorm:"size:20;not null;default:pending;index" json:"status"`
	FailureReason  string    `gorm:"size:255" json:"failure_reason,omitempty"`
	DriverID       *uint     `gorm:"index" json:"driver_id"`
	DriverName     *string   `gorm:"-:migration;->" json:"driver_name,omitempty"`
	Notes          string    `gorm:"type:text" json:"notes"`
	DriverNotes    string    `gorm:"type:text" json:"driver_notes,omitempty"`
	AdminConfirmed int       `gorm:"not null;default:0" json:"admin_confirmed"`
	CreatedBy      *uint     `json:"created_by,omitempty"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
