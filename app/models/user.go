package models

import "time"

// User roles. The factory role only records stock handouts; comptable is
// read-only reporting.
const (
	RoleAdmin         = "admin"
	RoleConfirmatrice = "confirmatrice"
	RoleLivreur       = "livreur"
	RoleComptable     = "comptable"
	RoleFactory       = "factory"
)

// Roles lists every valid user role.
var Roles = []string{RoleAdmin, RoleConfirmatrice, RoleLivreur, RoleComptable, RoleFactory}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an operator account. Deleting a user is a hard delete and does not
// cascade to orders that reference it; those references simply go dangling.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Role      string    `gorm:"size:50;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
