package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/test"
)

func TestGetReady(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Equal(t, "Ready.", res.Body.String())
	})
}

func TestGetReadyServerNotReady(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// a component missing from the wiring marks the server as not ready
		s.Signer = nil

		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		assert.Equal(t, "Not ready.", res.Body.String())
	})
}

func TestGetReadyDatabaseClosed(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		require.NoError(t, s.DB.Close())

		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		assert.Equal(t, "Not ready.", res.Body.String())
	})
}
