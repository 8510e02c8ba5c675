package common

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/util"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Liveness check
// This endpoint returns 200 when the service is healthy and prints the probe report.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.LivenessTimeout)
		defer cancel()

		report, errs := ProbeLiveness(ctx, s.DB, s.Clock)
		if len(errs) > 0 {
			util.LogFromEchoContext(c).Warn().Errs("errs", errs).Msg("Liveness probe failed")
			return c.String(521, report)
		}

		return c.String(http.StatusOK, report)
	}
}
