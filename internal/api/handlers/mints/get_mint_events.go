package mints

import (
	"net/http"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/mint/eventsync"
	"github/chapool/nft-mint/internal/types"
	"github/chapool/nft-mint/internal/types/mints"
	"github/chapool/nft-mint/internal/util"
)

func GetMintEventsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Mints.GET("/events", getMintEventsHandler(s))
}

// getMintEventsHandler lists stored Minted events, newest first.
func getMintEventsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		params := mints.NewGetMintEventsRouteParams()
		if err := util.BindAndValidateQueryParams(c, &params); err != nil {
			return err
		}

		events, err := s.MintStore.ListEvents(ctx, eventsync.ListParams{
			Limit:  int(swag.Int64Value(params.Limit)),
			Offset: int(swag.Int64Value(params.Offset)),
			Minter: swag.StringValue(params.Minter),
		})
		if err != nil {
			util.LogFromContext(ctx).Error().Err(err).Msg("Failed to list mint events")
			return err
		}

		response := &types.MintEventList{
			Data:   make([]*types.MintEvent, 0, len(events)),
			Limit:  params.Limit,
			Offset: params.Offset,
		}

		for _, e := range events {
			createdAt := strfmt.DateTime(e.CreatedAt)
			response.Data = append(response.Data, &types.MintEvent{
				BlockHash:   swag.String(e.BlockHash),
				BlockNumber: swag.Int64(int64(e.BlockNumber)), //nolint:gosec // block numbers fit int64
				CreatedAt:   &createdAt,
				LogIndex:    swag.Int64(int64(e.LogIndex)),
				Minter:      swag.String(e.Minter),
				Quantity:    swag.String(e.Quantity.String()),
				TxHash:      swag.String(e.TxHash),
			})
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
