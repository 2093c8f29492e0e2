package logger

import (
	"fmt"
	"math/rand"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avensko/ringlog/core"
)

// recordPattern is the rendered record shape: monotonic timestamp,
// level tag, payload.
var recordPattern = regexp.MustCompile(`^\d+\.\d+ [TDIWEC] .*$`)

// TestTransportConservation drives mixed workloads through several
// configurations and checks the accounting identities that must hold
// at quiescence: every accepted record is consumed exactly once, and
// accepted plus dropped equals attempted.
func TestTransportConservation(t *testing.T) {
	configs := []struct {
		name string
		cfg  Config
	}{
		{"DefaultQueue", Config{QueueCapacity: 1 << 12}},
		{"TinyQueueWait", Config{QueueCapacity: 16, DropPolicy: Wait}},
		{"TinyQueueDrop", Config{QueueCapacity: 16, DropPolicy: DropNewest}},
		{"ShortWake", Config{QueueCapacity: 1 << 10, WakeInterval: 10 * time.Microsecond}},
	}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			const (
				producers = 3
				perProd   = 2000
			)

			s := &memSink{}
			l, err := New(s, tc.cfg)
			require.NoError(t, err)

			var wg sync.WaitGroup
			for id := 0; id < producers; id++ {
				wg.Add(1)
				go func(id int) {
					defer wg.Done()
					rng := rand.New(rand.NewSource(int64(id)))
					p := l.Producer()
					defer p.Close()
					for i := 0; i < perProd; i++ {
						switch rng.Intn(3) {
						case 0:
							p.Infof("p%d seq %d", id, i)
						case 1:
							p.Warnf("p%d seq %d", id, i)
						default:
							p.Errorf("p%d seq %d", id, i)
						}
					}
				}(id)
			}
			wg.Wait()
			l.Close()

			snap := l.Stats()
			const attempts = producers * perProd
			assert.Equal(t, snap.Published, snap.Consumed,
				"every accepted record must drain to the sink")
			assert.Equal(t, uint64(attempts), snap.Published+snap.Dropped,
				"accepted plus dropped must equal attempted")
			assert.Zero(t, snap.QueueDepth, "queue must be empty after Close")
			assert.Equal(t, snap.Consumed, uint64(len(s.Lines())),
				"sink line count must match the consumed counter")

			if tc.cfg.DropPolicy == Wait {
				assert.Zero(t, snap.Dropped, "Wait policy must not drop")
			}
		})
	}
}

// TestRecordShapeUnderConcurrency checks that no record is torn or
// interleaved: every sink line is a well-formed rendered record and
// carries an intact payload.
func TestRecordShapeUnderConcurrency(t *testing.T) {
	const (
		producers = 4
		perProd   = 5000
	)

	s := &memSink{}
	l, err := New(s, Config{QueueCapacity: 1 << 10})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for id := 0; id < producers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			p := l.Producer()
			defer p.Close()
			for i := 0; i < perProd; i++ {
				p.Infof("payload-%d-%d-end", id, i)
			}
		}(id)
	}
	wg.Wait()
	l.Close()

	lines := s.Lines()
	require.Len(t, lines, producers*perProd)

	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		require.Regexp(t, recordPattern, line)
		require.Regexp(t, `^\d+\.\d+ I payload-\d+-\d+-end$`, line)
		assert.False(t, seen[line], "duplicate record %q", line)
		seen[line] = true
	}
}

// TestTimestampsNonDecreasing checks the single-producer timestamp
// order visible at the sink.
func TestTimestampsNonDecreasing(t *testing.T) {
	const total = 5000

	s := &memSink{}
	l, err := New(s, Config{QueueCapacity: 1 << 12})
	require.NoError(t, err)

	for i := 0; i < total; i++ {
		l.Infof("seq %d", i)
	}
	l.Close()

	lines := s.Lines()
	require.Len(t, lines, total)

	var prevSec, prevNano int64 = -1, -1
	for _, line := range lines {
		var sec, nano int64
		_, err := fmt.Sscanf(line, "%d.%d", &sec, &nano)
		require.NoError(t, err, "line %q", line)
		if sec < prevSec || (sec == prevSec && nano < prevNano) {
			t.Fatalf("timestamp went backwards: %d.%d after %d.%d", sec, nano, prevSec, prevNano)
		}
		prevSec, prevNano = sec, nano
	}
}

// TestTruncationBoundary walks record sizes across the slot payload
// boundary and checks the exact truncation point.
func TestTruncationBoundary(t *testing.T) {
	for _, payload := range []int{1, 100, core.MaxPayload - 20, core.MaxPayload, core.MaxPayload + 50} {
		s := &memSink{}
		l, err := New(s, Config{Sync: true})
		require.NoError(t, err)

		msg := make([]byte, payload)
		for i := range msg {
			msg[i] = 'x'
		}
		l.Infof("%s", msg)
		l.Close()

		out := s.String()
		require.LessOrEqual(t, len(out), core.MaxPayload,
			"payload %d: sink write exceeds slot payload", payload)
		snap := l.Stats()
		if out[len(out)-1] == '\n' {
			// Record fit: the trailing newline survived and nothing
			// was counted as truncated.
			assert.Zero(t, snap.Truncated, "payload %d", payload)
		} else {
			assert.Equal(t, core.MaxPayload, len(out), "payload %d", payload)
			assert.Equal(t, uint64(1), snap.Truncated, "payload %d", payload)
		}
	}
}
