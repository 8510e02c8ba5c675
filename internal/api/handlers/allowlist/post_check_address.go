package allowlist

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/api/httperrors"
	"github/chapool/nft-mint/internal/metrics"
	"github/chapool/nft-mint/internal/types"
	"github/chapool/nft-mint/internal/util"
)

const (
	MessageInvalidAddress = "Invalid address"
	MessageNotAllowlisted = "Address not in the allowlist"
)

func PostCheckAddressRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/check-address", postCheckAddressHandler(s))
}

// postCheckAddressHandler answers with an allowlist signature for listed addresses.
// Rejections use the same body shape as successes so front-ends only check status.
func postCheckAddressHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostCheckAddressPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			log.Debug().Err(err).Msg("Rejecting invalid check-address body")
			return rejectInvalid(c, s)
		}

		address := *body.Address

		if !s.Allowlist.Contains(address) {
			log.Info().Str("address", address).Msg("Address not in the allowlist")
			s.Metrics.CheckAddress(metrics.ResultNotFound)

			return util.ValidateAndReturn(c, http.StatusOK, &types.CheckAddressResponse{
				Status:  swag.String(types.CheckAddressResponseStatusError),
				Message: MessageNotAllowlisted,
			})
		}

		sig, err := s.Signer.SignAllowlist(ctx, address)
		if err != nil {
			log.Error().Err(err).Str("address", address).Msg("Failed to sign allowlisted address")
			s.Metrics.CheckAddress(metrics.ResultFailed)
			return httperrors.NewSigningError(err)
		}

		log.Info().Str("address", sig.Address).Msg("Signed allowlisted address")
		s.Metrics.CheckAddress(metrics.ResultSigned)

		return util.ValidateAndReturn(c, http.StatusOK, &types.CheckAddressResponse{
			Status:      swag.String(types.CheckAddressResponseStatusSuccess),
			Signature:   hexutil.Encode(sig.Signature),
			MessageHash: sig.MessageHash.Hex(),
		})
	}
}

func rejectInvalid(c echo.Context, s *api.Server) error {
	s.Metrics.CheckAddress(metrics.ResultInvalid)

	return util.ValidateAndReturn(c, http.StatusBadRequest, &types.CheckAddressResponse{
		Status:  swag.String(types.CheckAddressResponseStatusError),
		Message: MessageInvalidAddress,
	})
}
