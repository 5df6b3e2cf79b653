package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/realtime"
	"github.com/damassweet/damas/app/services"
	"github.com/damassweet/damas/pkg/auth"
)

func TestCreateUser(t *testing.T) {
	s := newStack(t)

	user, err := s.users.Create(services.CreateUserInput{
		Name:     "Amina",
		Email:    "amina@damas.dz",
		Password: "secret123",
		Role:     models.RoleConfirmatrice,
	})
	require.NoError(t, err)

	require.NotZero(t, user.ID)
	require.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
	require.True(t, auth.CheckPassword(user.Password, "secret123"))
	require.Equal(t, []string{realtime.TypeUserAdded}, eventTypes(s.events))
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	s := newStack(t)

	_, err := s.users.Create(services.CreateUserInput{
		Name:     "Amina",
		Email:    "amina@damas.dz",
		Password: "secret123",
		Role:     "superuser",
	})
	require.ErrorIs(t, err, services.ErrUnknownRole)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newStack(t)
	seedUser(t, s.db, "Amina", "amina@damas.dz", models.RoleConfirmatrice)

	_, err := s.users.Create(services.CreateUserInput{
		Name:     "Other",
		Email:    "amina@damas.dz",
		Password: "secret123",
		Role:     models.RoleLivreur,
	})
	require.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestUpdateUserKeepsPasswordWhenEmpty(t *testing.T) {
	s := newStack(t)
	user := seedUser(t, s.db, "Amina", "amina@damas.dz", models.RoleConfirmatrice)

	got, err := s.users.Update(user.ID, services.UpdateUserInput{
		Name:  "Amina K.",
		Email: "amina@damas.dz",
		Role:  models.RoleAdmin,
	})
	require.NoError(t, err)

	require.Equal(t, "Amina K.", got.Name)
	require.Equal(t, models.RoleAdmin, got.Role)
	require.True(t, auth.CheckPassword(got.Password, "secret123"), "empty password must keep the old hash")
	require.Equal(t, []string{realtime.TypeUserUpdated}, eventTypes(s.events))
}

func TestUpdateUserChangesPassword(t *testing.T) {
	s := newStack(t)
	user := seedUser(t, s.db, "Amina", "amina@damas.dz", models.RoleConfirmatrice)

	got, err := s.users.Update(user.ID, services.UpdateUserInput{
		Name:     "Amina",
		Email:    "amina@damas.dz",
		Password: "newsecret",
		Role:     models.RoleConfirmatrice,
	})
	require.NoError(t, err)
	require.True(t, auth.CheckPassword(got.Password, "newsecret"))
	require.False(t, auth.CheckPassword(got.Password, "secret123"))
}

// Deleting a driver is a hard delete: orders keep the dangling driver_id and
// simply stop resolving a driver_name.
func TestDeleteUserLeavesOrdersDangling(t *testing.T) {
	s := newStack(t)
	ali := seedUser(t, s.db, "Ali", "ali@damas.dz", models.RoleLivreur)

	order, err := s.orders.Create(services.CreateOrderInput{
		ClientName: "Karim B.",
		Commune:    "Hydra",
		BoxSize:    models.BoxSmall,
	}, nil)
	require.NoError(t, err)
	_, err = s.orders.AssignDriver(order.ID, ali.ID)
	require.NoError(t, err)

	require.NoError(t, s.users.Delete(ali.ID))

	got, err := s.orders.Get(order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DriverID)
	require.Equal(t, ali.ID, *got.DriverID)
	require.Nil(t, got.DriverName)
}

func TestDeleteMissingUser(t *testing.T) {
	s := newStack(t)
	require.ErrorIs(t, s.users.Delete(404), gorm.ErrRecordNotFound)
}

func TestLogin(t *testing.T) {
	s := newStack(t)
	seedUser(t, s.db, "Amina", "amina@damas.dz", models.RoleAdmin)

	user, token, err := s.authSvc.Login("amina@damas.dz", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, models.RoleAdmin, claims.Role)
}

// Unknown email and wrong password must be indistinguishable.
func TestLoginUniformFailure(t *testing.T) {
	s := newStack(t)
	seedUser(t, s.db, "Amina", "amina@damas.dz", models.RoleAdmin)

	_, _, errUnknown := s.authSvc.Login("nobody@damas.dz", "secret123")
	_, _, errWrong := s.authSvc.Login("amina@damas.dz", "wrongpass")

	require.ErrorIs(t, errUnknown, services.ErrInvalidCredentials)
	require.ErrorIs(t, errWrong, services.ErrInvalidCredentials)
	require.Equal(t, errUnknown.Error(), errWrong.Error())
}
