package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "rajubill/internal/errors"
	"rajubill/internal/testutil"
)

func TestService_RegisterIssuesTokenAndSetsFlag(t *testing.T) {
	svc := NewService(testutil.SetupTestStore(t))

	user, token, err := svc.Register("Raju", "raju@example.com", "secret123")
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "raju@example.com", user.Email)
	assert.True(t, svc.IsAuthenticated())
}

func TestService_RegisterDuplicateEmailFails(t *testing.T) {
	svc := NewService(testutil.SetupTestStore(t))

	_, _, err := svc.Register("Raju", "raju@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Register("Other", "raju@example.com", "different")
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestService_LoginWithValidCredentials(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewService(store)

	_, _, err := svc.Register("Raju", "raju@example.com", "secret123")
	require.NoError(t, err)

	// Accounts survive a restart; sessions do not.
	restarted := NewService(store)
	user, token, err := restarted.Login("raju@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Raju", user.Name)
}

func TestService_LoginWithWrongPasswordFails(t *testing.T) {
	svc := NewService(testutil.SetupTestStore(t))

	_, _, err := svc.Register("Raju", "raju@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login("raju@example.com", "wrong")
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestService_LoginUnknownEmailFails(t *testing.T) {
	svc := NewService(testutil.SetupTestStore(t))

	_, _, err := svc.Login("nobody@example.com", "secret123")
	assert.Error(t, err)
}

func TestService_CurrentUserResolvesToken(t *testing.T) {
	svc := NewService(testutil.SetupTestStore(t))

	registered, token, err := svc.Register("Raju", "raju@example.com", "secret123")
	require.NoError(t, err)

	user, err := svc.CurrentUser(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestService_CurrentUserRejectsUnknownToken(t *testing.T) {
	svc := NewService(testutil.SetupTestStore(t))

	_, err := svc.CurrentUser("bogus-token")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestService_LogoutClearsSessionAndFlag(t *testing.T) {
	svc := NewService(testutil.SetupTestStore(t))

	_, token, err := svc.Register("Raju", "raju@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(token))

	_, err = svc.CurrentUser(token)
	assert.Error(t, err)
	assert.False(t, svc.IsAuthenticated())
}
