package mints_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/api/httperrors"
	"github/chapool/nft-mint/internal/test"
	"github/chapool/nft-mint/internal/types"
)

func TestGetMintStats(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/mints/stats", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.MintStats
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, test.ChainID, *response.ChainID)
		assert.Equal(t, test.ContractAddress, *response.ContractAddress)
		assert.Equal(t, int64(20), *response.LastBlock)
		assert.Equal(t, int64(3), *response.TotalEvents)
		assert.Equal(t, "15", *response.TotalMinted)
		assert.Equal(t, int64(2), *response.UniqueMinters)
	})
}

func TestGetMintStatsOtherContract(t *testing.T) {
	cfg := test.DefaultTestConfig()
	cfg.Contract.Address = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"

	test.WithTestServerConfigurable(t, cfg, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/mints/stats", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.MintStats
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, strings.ToLower(cfg.Contract.Address), *response.ContractAddress)
		assert.Equal(t, int64(-1), *response.LastBlock)
		assert.Equal(t, int64(0), *response.TotalEvents)
		assert.Equal(t, "0", *response.TotalMinted)
	})
}

func TestGetMinter(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		fix := test.Fixtures()

		// path lookup is case-insensitive
		res := test.PerformRequest(t, s, "GET", "/api/v1/mints/minters/0x70997970C51812dc3A010C7d01b50e0d17dc79C8", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.MinterStats
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, fix.FirstMinter, *response.Address)
		assert.Equal(t, int64(2), *response.MintCount)
		assert.Equal(t, "5", *response.TotalMinted)
		assert.Equal(t, int64(5), *response.FirstBlock)
		assert.Equal(t, int64(9), *response.LastBlock)
	})
}

func TestGetMinterNotFound(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/mints/minters/0x90f79bf6eb2c4f870365e785982e1f101e93b906", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundMinter)
	})
}

func TestGetMinterInvalidAddress(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/mints/minters/0x1234", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestInvalidAddress)
	})
}

func TestGetMintEvents(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/mints/events", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.MintEventList
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, int64(50), *response.Limit)
		assert.Equal(t, int64(0), *response.Offset)
		require.Len(t, response.Data, 3)

		// newest first
		assert.Equal(t, int64(12), *response.Data[0].BlockNumber)
		assert.Equal(t, "10", *response.Data[0].Quantity)
		assert.Equal(t, int64(9), *response.Data[1].BlockNumber)
		assert.Equal(t, int64(5), *response.Data[2].BlockNumber)
		assert.NotNil(t, response.Data[0].CreatedAt)
	})
}

func TestGetMintEventsPaginationAndFilter(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		fix := test.Fixtures()

		res := test.PerformRequestWithParams(t, s, "GET", "/api/v1/mints/events", nil, nil, map[string]string{
			"limit":  "1",
			"offset": "1",
		})
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var page types.MintEventList
		test.ParseResponseAndValidate(t, res, &page)
		require.Len(t, page.Data, 1)
		assert.Equal(t, int64(9), *page.Data[0].BlockNumber)

		res = test.PerformRequestWithParams(t, s, "GET", "/api/v1/mints/events", nil, nil, map[string]string{
			"minter": strings.ToUpper(fix.SecondMinter[2:]),
		})
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		res = test.PerformRequestWithParams(t, s, "GET", "/api/v1/mints/events", nil, nil, map[string]string{
			"minter": fix.SecondMinter,
		})
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var filtered types.MintEventList
		test.ParseResponseAndValidate(t, res, &filtered)
		require.Len(t, filtered.Data, 1)
		assert.Equal(t, fix.SecondMinter, *filtered.Data[0].Minter)
	})
}

func TestGetMintEventsLimitOutOfRange(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequestWithParams(t, s, "GET", "/api/v1/mints/events", nil, nil, map[string]string{
			"limit": "501",
		})
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}
