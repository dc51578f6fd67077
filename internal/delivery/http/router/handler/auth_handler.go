// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type userReply struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	LastAuthenticated time.Time `json:"lastAuthenticated"`
}

type loginReply struct {
	User  userReply `json:"user"`
	Token string    `json:"token"`
}

type logoutRequest struct {
	Token string `json:"token" validate:"required"`
}

func toUserReply(user *entity.User) userReply {
	return userReply{
		ID:                user.ID,
		Name:              user.Name,
		LastAuthenticated: user.LastAuthenticated,
	}
}

// Login handles the password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Name and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The bearer value is the only credential the client needs; the token's
	// identity fields stay server-side.
	return response.Success(c, http.StatusOK, loginReply{
		User:  toUserReply(output.User),
		Token: output.Token.Token,
	}, "Login successful")
}

// Logout handles session revocation. Revoking an unknown token still
// succeeds; the operation is idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	var input logoutRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Token is required")
	}

	if err := h.uc.Revoke(c.Request().Context(), input.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Me returns the user resolved by the bearer-token middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := c.Get(middleware.ContextKeyUser).(*entity.User)
	if !ok {
		return response.Unauthorized(c, "INVALID_CREDENTIALS", "Not authenticated")
	}

	return response.Success(c, http.StatusOK, toUserReply(user), "")
}
