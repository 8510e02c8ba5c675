package mints

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/types"
	"github/chapool/nft-mint/internal/util"
)

func GetMintStatsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Mints.GET("/stats", getMintStatsHandler(s))
}

// getMintStatsHandler reports totals over all stored Minted events. lastBlock is -1 until the
// sync has processed its first batch.
func getMintStatsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		stats, err := s.MintStore.GetStats(ctx)
		if err != nil {
			util.LogFromContext(ctx).Error().Err(err).Msg("Failed to get mint stats")
			return err
		}

		scope := s.MintStore.Scope()

		response := &types.MintStats{
			ChainID:         swag.Int64(scope.ChainID),
			ContractAddress: swag.String(scope.Contract),
			LastBlock:       swag.Int64(-1),
			TotalEvents:     swag.Int64(stats.TotalEvents),
			TotalMinted:     swag.String(stats.TotalMinted.String()),
			UniqueMinters:   swag.Int64(stats.UniqueMinters),
		}
		if stats.LastBlock.Valid {
			response.LastBlock = swag.Int64(stats.LastBlock.Int64)
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
