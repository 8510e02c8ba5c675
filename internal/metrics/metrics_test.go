package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/metrics"
)

func TestServiceCounters(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Contract.Address = "0x5fbdb2315678afecb367f032d93f642f64180aa3"

	m, err := metrics.New(cfg, nil)
	require.NoError(t, err)

	m.CheckAddress(metrics.ResultSigned)
	m.CheckAddress(metrics.ResultSigned)
	m.CheckAddress(metrics.ResultInvalid)
	m.MintEventsProcessed(3)
	m.SyncCheckpoint(42)

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				key := f.GetName()
				for _, l := range metric.GetLabel() {
					key += "/" + l.GetValue()
				}
				values[key] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				values[f.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}

	assert.InDelta(t, 2, values["nft_mint_check_address_requests_total/signed"], 0)
	assert.InDelta(t, 1, values["nft_mint_check_address_requests_total/invalid"], 0)
	assert.InDelta(t, 3, values["nft_mint_mint_events_processed_total"], 0)
	assert.InDelta(t, 42, values["nft_mint_sync_checkpoint_block"], 0)

	count, err := testutil.GatherAndCount(m.Registry, "nft_mint_sync_reconnects_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
