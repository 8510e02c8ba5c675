package router

import (
	"errors"
	"net/http"
	"strings"

	oerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/nft-mint/internal/api/httperrors"
	"github/chapool/nft-mint/internal/types"
	"github/chapool/nft-mint/internal/util"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandlerWithConfig renders every error returned by a handler as types.PublicHTTPError
// (or its validation variant). Internal details of 500s are only exposed when configured.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			he      *httperrors.HTTPError
			hve     *httperrors.HTTPValidationError
			echoErr *echo.HTTPError
			compErr *oerrors.CompositeError
			valErr  *oerrors.Validation
			payload any
			code    int
		)

		switch {
		case errors.As(err, &hve):
			code = int(*hve.Code)
			payload = hve
		case errors.As(err, &he):
			code = int(*he.Code)
			if code == http.StatusInternalServerError && config.HideInternalServerErrorDetails {
				he = httperrors.NewHTTPError(code, *he.Type, swag.StringValue(he.Title))
			}
			payload = he
		case errors.As(err, &compErr):
			code = http.StatusBadRequest
			payload = httperrors.NewHTTPValidationError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code), formatValidationErrors(compErr))
		case errors.As(err, &valErr):
			code = http.StatusBadRequest
			payload = httperrors.NewHTTPValidationError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code), formatValidationErrors(oerrors.CompositeValidationError(valErr)))
		case errors.As(err, &echoErr):
			code = echoErr.Code
			e := httperrors.NewFromEcho(echoErr)
			if msg, ok := echoErr.Message.(string); ok && code < http.StatusInternalServerError {
				e.Detail = msg
			}
			payload = e
		default:
			code = http.StatusInternalServerError
			e := httperrors.NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code))
			if !config.HideInternalServerErrorDetails {
				e.Detail = err.Error()
			}
			payload = e
		}

		log := util.LogFromEchoContext(c)
		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", code).Msg("Request failed")
		} else {
			log.Debug().Err(err).Int("status", code).Msg("Request failed")
		}

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, payload)
		}
		if err != nil {
			log.Warn().Err(err).Msg("Failed to write error response")
		}
	}
}

func formatValidationErrors(err *oerrors.CompositeError) []*types.HTTPValidationErrorDetail {
	details := make([]*types.HTTPValidationErrorDetail, 0, len(err.Errors))

	for _, e := range err.Errors {
		var (
			nested *oerrors.CompositeError
			valErr *oerrors.Validation
		)

		switch {
		case errors.As(e, &nested):
			details = append(details, formatValidationErrors(nested)...)
		case errors.As(e, &valErr):
			in := valErr.In
			if in == "" {
				in = "body"
			}
			details = append(details, &types.HTTPValidationErrorDetail{
				Key:   swag.String(strings.TrimPrefix(valErr.Name, ".")),
				In:    swag.String(in),
				Error: swag.String(valErr.Error()),
			})
		default:
			details = append(details, &types.HTTPValidationErrorDetail{
				Key:   swag.String(""),
				In:    swag.String("body"),
				Error: swag.String(e.Error()),
			})
		}
	}

	return details
}
