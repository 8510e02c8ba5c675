package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/api/handlers/allowlist"
	"github/chapool/nft-mint/internal/api/handlers/common"
	"github/chapool/nft-mint/internal/api/handlers/mints"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		allowlist.PostCheckAddressRoute(s),
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		mints.GetMintEventsRoute(s),
		mints.GetMintStatsRoute(s),
		mints.GetMinterRoute(s),
	}
}
