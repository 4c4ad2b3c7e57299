// Package metric provides Prometheus metrics for minidb.
//
// Store metrics (namespace "minidb", subsystem "store"):
//
//   - inserts_total{collection}: records appended
//   - commits_total / commit_failures_total: snapshot writes
//   - commit_duration_seconds: snapshot write latency
//   - snapshot_size_bytes: size of the last written or loaded snapshot
//   - records: records held in memory
//   - load_recoveries_total: loads that fell back to an empty state
//
// Metrics are exposed at /metrics in Prometheus format when a metrics
// address is configured.
package metric
