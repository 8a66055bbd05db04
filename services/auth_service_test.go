package services

import (
	"testing"
	"time"

	"store/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Alice@Example.com ", "hunter2!", "Alice Doe", "5550001")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email, "email is normalized")
	assert.Equal(t, "customer", user.Role)
	assert.NotEqual(t, "hunter2!", user.Password, "password must be hashed")

	token, got, err := svc.Login("alice@example.com", "hunter2!")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("alice@example.com", "hunter2!", "Alice", "")
	require.NoError(t, err)

	_, err = svc.Register("ALICE@example.com", "other-pass", "Imposter", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("alice@example.com", "hunter2!", "Alice", "")
	require.NoError(t, err)

	_, _, err = svc.Login("alice@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("alice@example.com", "hunter2!", "Alice", "")
	require.NoError(t, err)

	for i := 0; i < maxFailedLogins; i++ {
		_, _, err := svc.Login("alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// Even the right password bounces while locked.
	_, _, err = svc.Login("alice@example.com", "hunter2!")
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestPasswordResetFlow(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("alice@example.com", "hunter2!", "Alice", "")
	require.NoError(t, err)

	user, token, err := svc.CreateResetToken("alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)

	require.NoError(t, svc.ResetPassword(token, "new-password"))

	_, _, err = svc.Login("alice@example.com", "hunter2!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("alice@example.com", "new-password")
	assert.NoError(t, err)

	// Tokens are single-use.
	assert.ErrorIs(t, svc.ResetPassword(token, "again"), ErrResetTokenInvalid)
}
