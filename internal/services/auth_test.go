package services_test

import (
	"testing"

	"contest-backend/internal/services"
	"contest-backend/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestRegisterLoginAndValidate(t *testing.T) {
	svc := services.NewAuthService(testutil.OpenDB(t), "test-secret")

	token, err := svc.Register("user@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.NotZero(t, userID)

	token, err = svc.Login("user@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, err = svc.Login("user@example.com", "wrong-password")
	require.EqualError(t, err, "invalid credentials")

	_, err = svc.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := services.NewAuthService(testutil.OpenDB(t), "test-secret")

	_, err := svc.Register("user@example.com", "password123")
	require.NoError(t, err)

	// The unique index decides; the caller still gets the stable message.
	_, err = svc.Register("user@example.com", "other-password")
	require.EqualError(t, err, "email already registered")
}
