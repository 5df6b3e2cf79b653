package services

import (
	"fmt"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/realtime"
	"github.com/damassweet/damas/app/repositories"
	"github.com/damassweet/damas/pkg/auth"
)

// UserService manages operator accounts. Every successful mutation is
// broadcast so open dashboards keep their user list current.
type UserService struct {
	users     *repositories.UserRepository
	broadcast realtime.Broadcaster
}

func NewUserService(users *repositories.UserRepository, b realtime.Broadcaster) *UserService {
	return &UserService{users: users, broadcast: b}
}

// CreateUserInput carries the fields for a new account.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}

// UpdateUserInput carries a partial account update. Empty password means
// keep the current one.
type UpdateUserInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"nullable,min=6"`
	Role     string `json:"role" validate:"required"`
}

// List returns all accounts, newest first.
func (s *UserService) List() ([]models.User, error) {
	return s.users.All()
}

// Get returns one account by id.
func (s *UserService) Get(id uint) (models.User, error) {
	return s.users.FindByID(id)
}

// Create adds an account and broadcasts USER_ADDED.
func (s *UserService) Create(in CreateUserInput) (models.User, error) {
	if !models.ValidRole(in.Role) {
		return models.User{}, ErrUnknownRole
	}

	if _, err := s.users.FindByEmail(in.Email); err == nil {
		return models.User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     in.Role,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, err
	}

	s.broadcast.Publish(realtime.UserAdded(user))
	return user, nil
}

// Update edits an account and broadcasts USER_UPDATED.
func (s *UserService) Update(id uint, in UpdateUserInput) (models.User, error) {
	if !models.ValidRole(in.Role) {
		return models.User{}, ErrUnknownRole
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		return models.User{}, err
	}

	if in.Email != user.Email {
		if existing, err := s.users.FindByEmail(in.Email); err == nil && existing.ID != id {
			return models.User{}, ErrEmailTaken
		}
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Role = in.Role
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hash
	}

	if err := s.users.Update(&user); err != nil {
		return models.User{}, err
	}

	s.broadcast.Publish(realtime.UserUpdated(user))
	return user, nil
}

// Delete removes an account and broadcasts USER_DELETED. Orders referencing
// the user keep their driver_id; reads just stop resolving a driver_name.
func (s *UserService) Delete(id uint) error {
	if _, err := s.users.FindByID(id); err != nil {
		return err
	}

	if err := s.users.Delete(id); err != nil {
		return err
	}

	s.broadcast.Publish(realtime.UserDeleted(id))
	return nil
}
