package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gounamur/travel-backend/internal/service"
	"github.com/gounamur/travel-backend/internal/util"
)

const (
	reasonValidation         = "validation_error"
	reasonInvalidEmail       = "invalid_email"
	reasonWeakPassword       = "weak_password"
	reasonNotFound           = "not_found"
	reasonConflict           = "conflict"
	reasonInvalidCredentials = "invalid_credentials"
	reasonUnauthorized       = "unauthorized"
	reasonForbidden          = "forbidden"
	reasonInvalidImage       = "invalid_image"
	reasonStorageUnavailable = "storage_unavailable"
	reasonInternal           = "internal_error"
)

// writeError maps a service error to its status and envelope. Unexpected errors are logged
// and answered with a generic message.
func writeError(c echo.Context, err error) error {
	var policy *service.PasswordPolicyError
	var fields validator.ValidationErrors

	switch {
	case errors.As(err, &fields):
		body := util.Failure(reasonValidation, "request validation failed")
		body["details"] = validationDetails(fields)
		return c.JSON(http.StatusBadRequest, body)
	case errors.As(err, &policy):
		body := util.Failure(reasonWeakPassword, service.ErrPasswordTooWeak.Error())
		body["details"] = policy.Problems
		return c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, util.Failure(reasonValidation, detailMessage(err, service.ErrValidation)))
	case errors.Is(err, service.ErrInvalidEmail):
		return c.JSON(http.StatusBadRequest, util.Failure(reasonInvalidEmail, err.Error()))
	case errors.Is(err, service.ErrDestinationNotFound),
		errors.Is(err, service.ErrPackageNotFound),
		errors.Is(err, service.ErrFavoriteNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, util.Failure(reasonNotFound, err.Error()))
	case errors.Is(err, service.ErrFavoriteAlreadyExists), errors.Is(err, service.ErrEmailAlreadyUsed):
		return c.JSON(http.StatusBadRequest, util.Failure(reasonConflict, err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusBadRequest, util.Failure(reasonInvalidCredentials, err.Error()))
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorized(c, err.Error())
	case errors.Is(err, service.ErrInvalidImage):
		return c.JSON(http.StatusBadRequest, util.Failure(reasonInvalidImage, detailMessage(err, service.ErrInvalidImage)))
	case errors.Is(err, service.ErrImageStorageUnavailable):
		return c.JSON(http.StatusServiceUnavailable, util.Failure(reasonStorageUnavailable, err.Error()))
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request failed")
	return c.JSON(http.StatusInternalServerError, util.Failure(reasonInternal, "internal server error"))
}

func unauthorized(c echo.Context, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, util.Failure(reasonUnauthorized, message))
}

// detailMessage drops the sentinel prefix from "<sentinel>: <detail>".
func detailMessage(err, sentinel error) string {
	msg := err.Error()
	if trimmed := strings.TrimPrefix(msg, sentinel.Error()+": "); trimmed != "" {
		return trimmed
	}
	return msg
}

// httpErrorHandler renders echo's own errors (unknown route, wrong method, bind failures)
// with the same envelope as handler errors.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = writeError(c, err)
		return
	}

	message := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok && m != "" {
		message = m
	}
	reason := reasonInternal
	switch {
	case he.Code == http.StatusNotFound:
		reason = reasonNotFound
	case he.Code == http.StatusUnauthorized:
		reason = reasonUnauthorized
	case he.Code == http.StatusForbidden:
		reason = reasonForbidden
	case he.Code >= 400 && he.Code < 500:
		reason = reasonValidation
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code)
		return
	}
	_ = c.JSON(he.Code, util.Failure(reason, message))
}
