package auth

import (
	"testing"
	"time"

	apperrors "tebaba-backend/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret")

	raw, err := issuer.Issue("alice@example.com", "alice", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := issuer.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email())
	assert.Equal(t, "alice", claims.Username)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret")

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = issuer.Verify(raw)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	raw, err := NewTokenIssuer("secret-a").Issue("alice@example.com", "alice", time.Minute)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").Verify(raw)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyMissingSubject(t *testing.T) {
	secret := "unit-test-secret"
	claims := Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenIssuer(secret).Verify(raw)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret")

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.Verify(raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	}
}

func TestIssueDefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret")

	raw, err := issuer.Issue("alice@example.com", "", 0)
	require.NoError(t, err)

	claims, err := issuer.Verify(raw)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}
