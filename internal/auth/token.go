package auth

import (
	"time"

	apperrors "tebaba-backend/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by an access token. The subject claim holds the user's
// email; username is kept for tokens issued before email became the primary
// lookup key.
type Claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Email() string {
	return c.Subject
}

// TokenIssuer signs and verifies HMAC access tokens. It holds no state
// beyond the secret; tokens expire on their own and are never stored.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue signs a token for the given identity. A non-positive ttl falls back
// to 15 minutes; the login flow passes the configured lifetime.
func (i *TokenIssuer) Issue(email, username string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature and expiry and requires the email claim. Every
// failure maps to the same error so callers cannot leak which check failed.
func (i *TokenIssuer) Verify(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
