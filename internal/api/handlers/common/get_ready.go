package common

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/util"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness check
// This endpoint returns 200 when our Service is ready to serve traffic (i.e. respond to queries).
// Note that /-/ready is typically public, we thus prevent information leakage here and only return `"Ready."`.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := util.LogFromEchoContext(c)

		// check if base server is ready
		if !s.Ready() {
			log.Warn().Msg("Readiness probe failed: server not ready")
			return c.String(521, "Not ready.")
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.ReadinessTimeout)
		defer cancel()

		if _, errs := ProbeReadiness(ctx, s.DB, s.Clock); len(errs) > 0 {
			log.Warn().Errs("errs", errs).Msg("Readiness probe failed")
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
