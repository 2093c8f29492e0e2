// Package metrics exposes ringlog transport statistics to Prometheus.
//
// The Collector reads a logger's Snapshot on every scrape and reports
// the counters as ringlog_* metrics, plus the current queue depth as a
// gauge. Register one Collector per logger, distinguishing them with
// the name label:
//
//	prometheus.MustRegister(metrics.NewCollector("access", log))
package metrics
