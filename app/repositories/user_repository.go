package repositories

import (
	"time"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/pkg/metrics"
	"gorm.io/gorm"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return user, err
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return user, err
}

// All returns every user, newest first.
func (r *UserRepository) All() ([]models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var users []models.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(user).Error
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(user *models.User) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(user).Error
}

// Delete removes a user row. Hard delete: orders keep their driver_id and
// simply lose the joined driver_name on subsequent reads.
func (r *UserRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Delete(&models.User{}, id).Error
}
