package seeders

import (
	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/config"
	"github.com/damassweet/damas/pkg/auth"
	"gorm.io/gorm"
)

func init() {
	Register("super-admin", SeedSuperAdmin)
}

// SeedSuperAdmin creates the initial admin account so a fresh install can
// log in. Skips silently when the email already exists.
func SeedSuperAdmin(db *gorm.DB) error {
	email := config.Get("ADMIN_EMAIL", "admin@damas.dz")

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(config.Get("ADMIN_PASSWORD", "admin1234"))
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:     "Super Admin",
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
	}).Error
}
