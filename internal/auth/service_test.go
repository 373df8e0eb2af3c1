package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamesKanneh/computer-literacy-app/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := storage.NewStore(filepath.Join(t.TempDir(), "users.json"))
	return NewService(NewCredentialStore(store), zerolog.Nop())
}

func TestSignupThenLogin(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Signup("ada", "secret123", "secret123"))

	identity, err := svc.Login("ada", "secret123")
	require.NoError(t, err)
	assert.Equal(t, RegisteredIdentity("ada"), identity)
	assert.True(t, identity.Registered())
}

func TestSignupValidation(t *testing.T) {
	svc := newTestService(t)

	assert.ErrorIs(t, svc.Signup("   ", "pw", "pw"), ErrEmptyUsername)
	assert.ErrorIs(t, svc.Signup("ada", "", ""), ErrEmptyPassword)
	assert.ErrorIs(t, svc.Signup("ada", "pw", "other"), ErrPasswordMismatch)
}

func TestSignupUsernameTaken(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Signup("ada", "secret123", "secret123"))
	assert.ErrorIs(t, svc.Signup("ada", "different", "different"), ErrUsernameTaken)
	assert.ErrorIs(t, svc.Signup(" ada ", "secret123", "secret123"), ErrUsernameTaken)
}

func TestLoginFailures(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Signup("ada", "secret123", "secret123"))

	_, err := svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrUnknownUser)

	_, err = svc.Login("ada", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)

	// A failed login must not change the stored record.
	users, err := svc.creds.Load()
	require.NoError(t, err)
	assert.Equal(t, HashPassword("secret123"), users["ada"].PasswordHash)
}

func TestSignupStoresDigestAndTimestamp(t *testing.T) {
	svc := newTestService(t)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, svc.Signup("ada", "secret123", "secret123"))

	users, err := svc.creds.Load()
	require.NoError(t, err)
	record := users["ada"]
	assert.Equal(t, HashPassword("secret123"), record.PasswordHash)
	assert.NotEqual(t, "secret123", record.PasswordHash)
	assert.Equal(t, "2025-03-01T12:00:00Z", record.CreatedAt)
}

func TestHashPasswordDeterministic(t *testing.T) {
	assert.Equal(t, HashPassword("secret123"), HashPassword("secret123"))
	assert.NotEqual(t, HashPassword("secret123"), HashPassword("secret124"))
	assert.Len(t, HashPassword("secret123"), 64) // sha256 hex
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("secret123")
	assert.True(t, VerifyPassword(digest, "secret123"))
	assert.False(t, VerifyPassword(digest, "wrong"))
}

func TestGuestIdentity(t *testing.T) {
	guest := GuestIdentity()
	assert.False(t, guest.Registered())
	assert.Equal(t, "Guest", guest.DisplayName())
}
