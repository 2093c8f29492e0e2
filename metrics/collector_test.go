package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/avensko/ringlog/logger"
)

type staticSource struct {
	snap logger.Snapshot
}

func (s staticSource) Stats() logger.Snapshot {
	return s.snap
}

func TestCollectorReportsSnapshot(t *testing.T) {
	src := staticSource{snap: logger.Snapshot{
		Published:     100,
		Consumed:      90,
		Dropped:       7,
		Truncated:     3,
		QueueFull:     12,
		QueueDepth:    10,
		QueueCapacity: 65536,
	}}

	c := NewCollector("access", src)

	expected := `
		# HELP ringlog_published_total Records accepted by the ring buffer.
		# TYPE ringlog_published_total counter
		ringlog_published_total{logger="access"} 100
		# HELP ringlog_consumed_total Records handed to the sink by the worker.
		# TYPE ringlog_consumed_total counter
		ringlog_consumed_total{logger="access"} 90
		# HELP ringlog_dropped_total Records discarded under the DropNewest policy.
		# TYPE ringlog_dropped_total counter
		ringlog_dropped_total{logger="access"} 7
		# HELP ringlog_truncated_total Records longer than a slot payload.
		# TYPE ringlog_truncated_total counter
		ringlog_truncated_total{logger="access"} 3
		# HELP ringlog_queue_full_total Enqueue attempts that observed a full ring.
		# TYPE ringlog_queue_full_total counter
		ringlog_queue_full_total{logger="access"} 12
		# HELP ringlog_queue_depth Unconsumed slots in the ring at scrape time.
		# TYPE ringlog_queue_depth gauge
		ringlog_queue_depth{logger="access"} 10
	`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Error(err)
	}
}

func TestCollectorRegisters(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(NewCollector("a", staticSource{})); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	// A second collector with a different name label coexists.
	if err := reg.Register(NewCollector("b", staticSource{})); err != nil {
		t.Fatalf("Register() second collector error = %v", err)
	}
}

func TestCollectorAgainstLiveLogger(t *testing.T) {
	l, err := logger.New(nullSink{}, logger.Config{})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 50; i++ {
		l.Infof("record %d", i)
	}
	l.Close()

	c := NewCollector("live", l)
	if got := testutil.CollectAndCount(c); got != 6 {
		t.Errorf("collected %d metrics, want 6", got)
	}
	expected := `
		# HELP ringlog_published_total Records accepted by the ring buffer.
		# TYPE ringlog_published_total counter
		ringlog_published_total{logger="live"} 50
		# HELP ringlog_consumed_total Records handed to the sink by the worker.
		# TYPE ringlog_consumed_total counter
		ringlog_consumed_total{logger="live"} 50
	`
	err = testutil.CollectAndCompare(c, strings.NewReader(expected),
		"ringlog_published_total", "ringlog_consumed_total")
	if err != nil {
		t.Error(err)
	}
}

type nullSink struct{}

func (nullSink) Write(p []byte) {}
func (nullSink) Flush()         {}
