package middleware

import (
	"strings"

	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContextKeyUser is the echo context key under which Authenticate stores the
// resolved user.
const ContextKeyUser = "authUser"

// AuthMiddleware authenticates requests carrying a bearer session token.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate validates the bearer token and stores the owning user on the
// context. Every failure is the same 401; the middleware never reveals
// whether the token was missing, forged, expired or orphaned.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "Authorization header is missing")
		}

		tokenValue := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenValue == authHeader {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid token format, must be Bearer token")
		}

		user, err := m.authUsecase.AuthenticateWithToken(c.Request().Context(), tokenValue)
		if err != nil {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid or expired token")
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}
