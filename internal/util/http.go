package util

import (
	"net/http"

	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Validatable is implemented by all request payloads and response types in internal/types.
type Validatable interface {
	Validate(formats strfmt.Registry) error
}

// BindAndValidateBody binds the request body into v and runs its validation.
// Binding errors are reported as 400, validation errors are returned as-is so the
// HTTP error handler can render them with details.
func BindAndValidateBody(c echo.Context, v Validatable) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, v); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to bind request body")
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to parse request body")
	}

	return v.Validate(strfmt.Default)
}

// BindAndValidatePathParams binds the path params of the request into v and validates them.
func BindAndValidatePathParams(c echo.Context, v Validatable) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindPathParams(c, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to parse path params")
	}

	return v.Validate(strfmt.Default)
}

// BindAndValidateQueryParams binds the query params of the request into v and validates them.
func BindAndValidateQueryParams(c echo.Context, v Validatable) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindQueryParams(c, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to parse query params")
	}

	return v.Validate(strfmt.Default)
}

// ValidateAndReturn validates the response type before writing it, so a broken
// response is caught as a 500 instead of leaking to clients.
func ValidateAndReturn(c echo.Context, code int, v Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromEchoContext(c).Error().Err(err).Msg("Response validation failed")
		return err
	}

	return c.JSON(code, v)
}

// LogFromEchoContext returns the request scoped logger of an echo context.
func LogFromEchoContext(c echo.Context) *zerolog.Logger {
	return LogFromContext(c.Request().Context())
}
