package auth

import (
	"testing"
	"time"

	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/clock"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testEmail = "chris@warehouse414.com"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginAndVerify(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(testEmail, hashPassword(t, "s3cret"), "signing-secret", time.Hour, clock.NewFixed(now))

	token, err := svc.Login(testEmail, "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, testEmail, subject)
}

func TestService_LoginRejections(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	hash := hashPassword(t, "s3cret")

	t.Run("wrong password", func(t *testing.T) {
		svc := NewService(testEmail, hash, "signing-secret", time.Hour, clock.NewFixed(now))
		_, err := svc.Login(testEmail, "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong email", func(t *testing.T) {
		svc := NewService(testEmail, hash, "signing-secret", time.Hour, clock.NewFixed(now))
		_, err := svc.Login("intruder@example.com", "s3cret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unconfigured identity", func(t *testing.T) {
		svc := NewService("", "", "signing-secret", time.Hour, clock.NewFixed(now))
		_, err := svc.Login(testEmail, "s3cret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestService_VerifyRejections(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	hash := hashPassword(t, "s3cret")

	t.Run("expired token", func(t *testing.T) {
		issuer := NewService(testEmail, hash, "signing-secret", time.Hour, clock.NewFixed(now))
		token, err := issuer.Login(testEmail, "s3cret")
		require.NoError(t, err)

		later := NewService(testEmail, hash, "signing-secret", time.Hour, clock.NewFixed(now.Add(2*time.Hour)))
		_, err = later.Verify(token)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong secret", func(t *testing.T) {
		issuer := NewService(testEmail, hash, "signing-secret", time.Hour, clock.NewFixed(now))
		token, err := issuer.Login(testEmail, "s3cret")
		require.NoError(t, err)

		other := NewService(testEmail, hash, "different-secret", time.Hour, clock.NewFixed(now))
		_, err = other.Verify(token)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewService(testEmail, hash, "signing-secret", time.Hour, clock.NewFixed(now))
		_, err := svc.Verify("not.a.jwt")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
