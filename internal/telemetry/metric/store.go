package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "minidb"
	subsystem = "store"
)

// StoreMetrics holds the record store collectors.
//
// A nil *StoreMetrics is valid and records nothing, so the store can be
// used without a registry.
type StoreMetrics struct {
	Inserts        *prometheus.CounterVec
	Commits        prometheus.Counter
	CommitFailures prometheus.Counter
	CommitDuration prometheus.Histogram
	SnapshotSize   prometheus.Gauge
	Records        prometheus.Gauge
	LoadRecoveries prometheus.Counter
}

// NewStoreMetrics creates the store collectors and registers them with reg.
// It panics if a collector with the same name is already registered.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	m := &StoreMetrics{
		Inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "inserts_total",
			Help:      "Records appended, by collection",
		}, []string{"collection"}),

		Commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "commits_total",
			Help:      "Successful full-snapshot commits",
		}),

		CommitFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "commit_failures_total",
			Help:      "Commits that failed to reach disk",
		}),

		CommitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "commit_duration_seconds",
			Help:      "Time spent writing the snapshot",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),

		SnapshotSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "snapshot_size_bytes",
			Help:      "Size of the last written or loaded snapshot",
		}),

		Records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "records",
			Help:      "Records held in memory across all collections",
		}),

		LoadRecoveries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "load_recoveries_total",
			Help:      "Loads that found an unreadable snapshot and started empty",
		}),
	}

	reg.MustRegister(
		m.Inserts,
		m.Commits,
		m.CommitFailures,
		m.CommitDuration,
		m.SnapshotSize,
		m.Records,
		m.LoadRecoveries,
	)
	return m
}

// ObserveInsert counts one appended record.
func (m *StoreMetrics) ObserveInsert(collection string) {
	if m == nil {
		return
	}
	m.Inserts.WithLabelValues(collection).Inc()
}

// ObserveCommit records a successful commit.
func (m *StoreMetrics) ObserveCommit(d time.Duration, size int64) {
	if m == nil {
		return
	}
	m.Commits.Inc()
	m.CommitDuration.Observe(d.Seconds())
	m.SnapshotSize.Set(float64(size))
}

// ObserveCommitFailure counts one failed commit.
func (m *StoreMetrics) ObserveCommitFailure() {
	if m == nil {
		return
	}
	m.CommitFailures.Inc()
}

// ObserveLoad records the snapshot size found at startup.
func (m *StoreMetrics) ObserveLoad(size int64) {
	if m == nil {
		return
	}
	m.SnapshotSize.Set(float64(size))
}

// ObserveRecovery counts one load that fell back to an empty state.
func (m *StoreMetrics) ObserveRecovery() {
	if m == nil {
		return
	}
	m.LoadRecoveries.Inc()
}

// SetRecords sets the in-memory record gauge.
func (m *StoreMetrics) SetRecords(n int) {
	if m == nil {
		return
	}
	m.Records.Set(float64(n))
}
