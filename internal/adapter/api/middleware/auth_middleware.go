package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/infrastructure/auth"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
	"github.com/shravanjnaidu/spicetrade/pkg/response"
)

type AuthMiddleware struct {
	tokenManager *auth.TokenManager
}

func NewAuthMiddleware(tokenManager *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{
		tokenManager: tokenManager,
	}
}

// Authenticate verifies the bearer token and puts the caller's user id on the
// context under "uid". Failures render the same {"error": ...} body every
// other endpoint failure does.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		userID, err := m.tokenManager.Verify(parts[1])
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		c.Set("uid", userID)
		return next(c)
	}
}
