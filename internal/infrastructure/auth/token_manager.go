package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/shravanjnaidu/spicetrade/pkg/errors"
)

// TokenManager issues and verifies the bearer tokens handed out at login.
// Everything downstream of the middleware only ever sees the user id.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expirySeconds int64) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

func (m *TokenManager) Generate(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", errors.Internal("Failed to sign token", err)
	}
	return signed, nil
}

// Verify returns the user id carried by a valid token.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.Unauthorized("Invalid or expired token", err)
	}
	return claims.Subject, nil
}
