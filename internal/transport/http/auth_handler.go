package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gounamur/travel-backend/internal/service"
	"github.com/gounamur/travel-backend/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	public := e.Group("/api/auth")
	public.POST("/register", handler.register)
	public.POST("/login", handler.login)

	account := e.Group("/api/users/me", RequireAuth(auth))
	account.GET("", handler.me)
	account.DELETE("", handler.deleteAccount)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	user, err := h.auth.Register(c.Request().Context(), service.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	zerolog.Ctx(c.Request().Context()).Info().Int64("user_id", user.ID).Msg("user registered")
	return c.JSON(http.StatusCreated, util.Envelope{
		"message": "User created",
		"user":    toUserResponse(user),
	})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	result, err := h.auth.Login(c.Request().Context(), req.login(), req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: result.Token,
		TokenType:   "bearer",
		ExpiresAt:   result.ExpiresAt.UTC(),
		UserEmail:   result.User.Email,
		UserName:    result.User.Name,
	})
}

func (h *AuthHandler) me(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c, "authentication required")
	}
	return c.JSON(http.StatusOK, util.Data("user", toUserResponse(user)))
}

func (h *AuthHandler) deleteAccount(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c, "authentication required")
	}
	if err := h.auth.DeleteAccount(c.Request().Context(), user.ID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("Account deleted"))
}
