package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/avensko/ringlog/logger"
)

// StatsSource is anything that can report a transport snapshot. Every
// logger.Logger instantiation satisfies it.
type StatsSource interface {
	Stats() logger.Snapshot
}

// Collector adapts a logger's statistics to the Prometheus collector
// contract. Counter values come from the snapshot at scrape time, so
// no instrumentation runs on the logging hot path.
type Collector struct {
	source StatsSource

	published *prometheus.Desc
	consumed  *prometheus.Desc
	dropped   *prometheus.Desc
	truncated *prometheus.Desc
	queueFull *prometheus.Desc
	depth     *prometheus.Desc
}

// NewCollector creates a collector for the given source. The name
// label distinguishes multiple loggers in one registry.
func NewCollector(name string, source StatsSource) *Collector {
	labels := prometheus.Labels{"logger": name}
	return &Collector{
		source: source,
		published: prometheus.NewDesc("ringlog_published_total",
			"Records accepted by the ring buffer.", nil, labels),
		consumed: prometheus.NewDesc("ringlog_consumed_total",
			"Records handed to the sink by the worker.", nil, labels),
		dropped: prometheus.NewDesc("ringlog_dropped_total",
			"Records discarded under the DropNewest policy.", nil, labels),
		truncated: prometheus.NewDesc("ringlog_truncated_total",
			"Records longer than a slot payload.", nil, labels),
		queueFull: prometheus.NewDesc("ringlog_queue_full_total",
			"Enqueue attempts that observed a full ring.", nil, labels),
		depth: prometheus.NewDesc("ringlog_queue_depth",
			"Unconsumed slots in the ring at scrape time.", nil, labels),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.published
	ch <- c.consumed
	ch <- c.dropped
	ch <- c.truncated
	ch <- c.queueFull
	ch <- c.depth
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.published, prometheus.CounterValue, float64(snap.Published))
	ch <- prometheus.MustNewConstMetric(c.consumed, prometheus.CounterValue, float64(snap.Consumed))
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(snap.Dropped))
	ch <- prometheus.MustNewConstMetric(c.truncated, prometheus.CounterValue, float64(snap.Truncated))
	ch <- prometheus.MustNewConstMetric(c.queueFull, prometheus.CounterValue, float64(snap.QueueFull))
	ch <- prometheus.MustNewConstMetric(c.depth, prometheus.GaugeValue, float64(snap.QueueDepth))
}
