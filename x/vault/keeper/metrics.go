package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// VaultMetrics holds all Prometheus metrics for the vault module
type VaultMetrics struct {
	MigrationsTotal      *prometheus.CounterVec
	RepliesTotal         *prometheus.CounterVec
	PendingContinuations prometheus.Gauge
}

var (
	vaultMetricsOnce sync.Once
	vaultMetrics     *VaultMetrics
)

// NewVaultMetrics creates and registers vault metrics (singleton pattern)
func NewVaultMetrics() *VaultMetrics {
	vaultMetricsOnce.Do(func() {
		vaultMetrics = &VaultMetrics{
			MigrationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pampit",
					Subsystem: "vault",
					Name:      "migrations_total",
					Help:      "Total number of migrations started, by play and outcome",
				},
				[]string{"play", "status"},
			),
			RepliesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pampit",
					Subsystem: "vault",
					Name:      "replies_total",
					Help:      "Total number of correlated replies handled, by continuation kind and outcome",
				},
				[]string{"kind", "status"},
			),
			PendingContinuations: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "pampit",
					Subsystem: "vault",
					Name:      "pending_continuations",
					Help:      "Continuations registered and not yet resolved",
				},
			),
		}
	})
	return vaultMetrics
}
