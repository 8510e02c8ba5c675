package api_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/config"
)

func TestNewAllowlistLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	cfg := config.Server{
		Allowlist: config.Allowlist{
			Source: config.AllowlistSourceEnv,
			Addresses: []string{
				"0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
				"0x70997970c51812dc3a010c7d01b50e0d17dc79c8",
			},
		},
	}

	list, err := api.NewAllowlist(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Len())

	assert.Equal(t, 1, strings.Count(buf.String(), "Allowlist loaded"))
	assert.Contains(t, buf.String(), `"source":"env"`)
}

func TestNewAllowlistDBSourceWithoutDatabase(t *testing.T) {
	_, err := api.NewAllowlist(config.Server{Allowlist: config.Allowlist{Source: config.AllowlistSourceDB}}, nil)
	require.Error(t, err)
}
