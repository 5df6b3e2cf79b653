package services

import (
	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/repositories"
	"github.com/damassweet/damas/pkg/auth"
)

// AuthService checks credentials and issues tokens.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login verifies the credentials and returns the user plus a signed token.
// Unknown email and wrong password both return ErrInvalidCredentials so the
// response cannot be used to enumerate accounts.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role, user.Name, user.Email)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}
