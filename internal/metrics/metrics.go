package metrics

import (
	"database/sql"

	"github.com/dlmiddlecote/sqlstats"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github/chapool/nft-mint/internal/config"
)

const namespace = "nft_mint"

// Results reported for check-address requests.
const (
	ResultSigned   = "signed"
	ResultNotFound = "not_allowlisted"
	ResultInvalid  = "invalid"
	ResultFailed   = "failed"
)

// Service owns the prometheus registry of the process. All collectors are
// registered on construction so handlers and the sync never race on registration.
type Service struct {
	Registry *prometheus.Registry

	checkAddressRequests *prometheus.CounterVec
	mintEventsProcessed  prometheus.Counter
	mintEventsRemoved    prometheus.Counter
	syncCheckpointBlock  prometheus.Gauge
	syncReconnects       prometheus.Counter
}

func New(cfg config.Server, db *sql.DB) (*Service, error) {
	s := &Service{
		Registry: prometheus.NewRegistry(),
		checkAddressRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "check_address_requests_total",
			Help:      "Allowlist check requests by result.",
		}, []string{"result"}),
		mintEventsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mint_events_processed_total",
			Help:      "Minted events newly stored by the event sync.",
		}),
		mintEventsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mint_events_removed_total",
			Help:      "Minted events deleted after a chain reorganisation.",
		}),
		syncCheckpointBlock: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "sync_checkpoint_block",
			Help:        "Last block fully processed by the event sync.",
			ConstLabels: prometheus.Labels{"contract": cfg.Contract.Address},
		}),
		syncReconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_reconnects_total",
			Help:      "Resubscriptions of the live Minted subscription.",
		}),
	}

	toRegister := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.checkAddressRequests,
		s.mintEventsProcessed,
		s.mintEventsRemoved,
		s.syncCheckpointBlock,
		s.syncReconnects,
	}

	if db != nil {
		toRegister = append(toRegister, sqlstats.NewStatsCollector(cfg.Database.Database, db))
	}

	for _, c := range toRegister {
		if err := s.Registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register metrics collector")
		}
	}

	return s, nil
}

func (s *Service) CheckAddress(result string) {
	s.checkAddressRequests.WithLabelValues(result).Inc()
}

func (s *Service) MintEventsProcessed(n int) {
	s.mintEventsProcessed.Add(float64(n))
}

func (s *Service) MintEventRemoved() {
	s.mintEventsRemoved.Inc()
}

func (s *Service) SyncCheckpoint(block uint64) {
	s.syncCheckpointBlock.Set(float64(block))
}

func (s *Service) SyncReconnect() {
	s.syncReconnects.Inc()
}
