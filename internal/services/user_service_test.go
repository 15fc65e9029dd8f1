package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newTestDB(t))

	_, err := svc.CreateUser("admin", "password123")
	require.NoError(t, err)

	user, err := svc.Authenticate("admin", "password123")
	require.NoError(t, err)
	require.Equal(t, "admin", user.Username)

	_, err = svc.Authenticate("admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newTestDB(t))

	_, err := svc.CreateUser("admin", "a")
	require.NoError(t, err)

	_, err = svc.CreateUser("admin", "b")
	require.Error(t, err)
}
