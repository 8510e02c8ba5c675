package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/test"
)

func TestGetHealthy(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		body := res.Body.String()
		assert.Contains(t, body, "Ready database: Ping succeeded")
		assert.Contains(t, body, "Alive database:")
		assert.Contains(t, body, "migrations applied")
	})
}

func TestGetHealthyDatabaseClosed(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		require.NoError(t, s.DB.Close())

		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), "Ping failed")
	})
}
