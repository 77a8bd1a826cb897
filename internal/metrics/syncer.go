package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgersight",
		Subsystem: "syncer",
		Name:      "blocks_total",
		Help:      "Count of blocks applied.",
	}, []string{"status"})
	syncerTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgersight",
		Subsystem: "syncer",
		Name:      "transactions_total",
		Help:      "Count of transactions routed into the pipeline.",
	}, []string{"status"})
	syncerApplyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledgersight",
		Subsystem: "syncer",
		Name:      "apply_block_duration_seconds",
		Help:      "Duration of a full block apply, both flushes included.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"status"})
	syncerStartupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledgersight",
		Subsystem: "syncer",
		Name:      "startup_duration_seconds",
		Help:      "Duration of the startup gate.",
		Buckets:   []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60},
	}, []string{"status"})
)

// Syncer tracks metrics for the block apply pipeline.
type Syncer struct{}

// NewSyncer creates a Syncer metrics collector.
func NewSyncer() *Syncer {
	return &Syncer{}
}

// ObserveApplyBlock records one block apply.
func (m Syncer) ObserveApplyBlock(err error, trxs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	syncerBlocksTotal.WithLabelValues(status).Inc()
	syncerTransactionsTotal.WithLabelValues(status).Add(float64(trxs))
	syncerApplyDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveStartup records one pass through the startup gate.
func (m Syncer) ObserveStartup(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	syncerStartupDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
