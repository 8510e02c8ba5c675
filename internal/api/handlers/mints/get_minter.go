package mints

import (
	"net/http"
	"strings"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/api/httperrors"
	"github/chapool/nft-mint/internal/mint/eventsync"
	"github/chapool/nft-mint/internal/types"
	"github/chapool/nft-mint/internal/types/mints"
	"github/chapool/nft-mint/internal/util"
)

func GetMinterRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Mints.GET("/minters/:address", getMinterHandler(s))
}

func getMinterHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		params := mints.NewGetMinterRouteParams()
		if err := util.BindAndValidatePathParams(c, &params); err != nil {
			return httperrors.ErrBadRequestInvalidAddress
		}

		stats, err := s.MintStore.GetMinterStats(ctx, strings.ToLower(params.Address))
		if err != nil {
			if errors.Is(err, eventsync.ErrMinterNotFound) {
				return httperrors.ErrNotFoundMinter
			}

			util.LogFromContext(ctx).Error().Err(err).Str("minter", params.Address).Msg("Failed to get minter stats")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.MinterStats{
			Address:     swag.String(stats.Address),
			FirstBlock:  swag.Int64(int64(stats.FirstBlock)), //nolint:gosec // block numbers fit int64
			LastBlock:   swag.Int64(int64(stats.LastBlock)),  //nolint:gosec // block numbers fit int64
			MintCount:   swag.Int64(stats.MintCount),
			TotalMinted: swag.String(stats.TotalMinted.String()),
		})
	}
}
