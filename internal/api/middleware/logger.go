package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/chapool/nft-mint/internal/util"
)

type LoggerConfig struct {
	Skipper echoMiddleware.Skipper
	// Level successful requests are logged at. 4xx are logged as warnings, 5xx as errors.
	Level zerolog.Level
	// Clock returns the current time, time.Now when nil.
	Clock func() time.Time
}

var DefaultLoggerConfig = LoggerConfig{
	Skipper: echoMiddleware.DefaultSkipper,
	Level:   zerolog.DebugLevel,
}

func Logger() echo.MiddlewareFunc {
	return LoggerWithConfig(DefaultLoggerConfig)
}

// LoggerWithConfig attaches a request scoped logger carrying the request id to the request
// context and logs every response.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultLoggerConfig.Skipper
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("id", id).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			ctx := context.WithValue(req.Context(), util.CTXKeyRequestID, id)
			c.SetRequest(req.WithContext(l.WithContext(ctx)))

			start := config.Clock()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			elapsed := config.Clock().Sub(start)

			status := res.Status
			level := config.Level
			switch {
			case status >= 500:
				level = zerolog.ErrorLevel
			case status >= 400:
				level = zerolog.WarnLevel
			}

			l.WithLevel(level).
				Int("status", status).
				Int64("bytes_out", res.Size).
				Str("remote_ip", c.RealIP()).
				Dur("duration", elapsed).
				Msg("Response")

			return nil
		}
	}
}

// BodyLogger logs request and/or response bodies at debug level on the request logger.
func BodyLogger(logRequest bool, logResponse bool) echo.MiddlewareFunc {
	return echoMiddleware.BodyDump(func(c echo.Context, reqBody []byte, resBody []byte) {
		e := util.LogFromEchoContext(c).Debug()
		if logRequest {
			e = e.Bytes("request_body", reqBody)
		}
		if logResponse {
			e = e.Bytes("response_body", resBody)
		}
		e.Msg("Request body dump")
	})
}
