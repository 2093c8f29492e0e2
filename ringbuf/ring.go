package ringbuf

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/avensko/ringlog/core"
)

// slot is one ring entry. The payload region matches the wire slot
// layout; the length field doubles as the publication flag. A 32-bit
// atomic stands in for the two-byte wire trailer because publication
// needs an atomic store and the smallest Go atomic is 32 bits wide.
type slot struct {
	data   [core.MaxPayload]byte
	_      [2]byte
	length atomic.Uint32
}

// Ring is a bounded MPSC queue of fixed-size slots.
//
// head is the next index to consume, tail the next index to reserve.
// Both increase without wrapping; slot i lives at index i&mask. The
// padding keeps each cursor on its own cache line so producers (tail)
// and the consumer (head) never share one.
type Ring struct {
	_    [64]byte
	head atomic.Uint64
	_    [56]byte
	tail atomic.Uint64
	_    [56]byte

	slots []slot
	mask  uint64

	fullCount atomic.Uint64
}

// New creates a ring with the given slot capacity. The capacity must be
// a power of two so that slot indexing reduces to a bit mask.
func New(capacity int) (*Ring, error) {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		return nil, fmt.Errorf("ringbuf: capacity %d must be a positive power of two", capacity)
	}
	return &Ring{
		slots: make([]slot, capacity),
		mask:  uint64(capacity - 1),
	}, nil
}

// TryEnqueue reserves the next slot and copies p into it, truncating to
// MaxPayload. It returns false iff the queue is full and never blocks.
// Safe for concurrent callers. p must be non-empty: a zero-length
// record cannot be published because a zero length marks an empty slot.
func (r *Ring) TryEnqueue(p []byte) bool {
	tail := r.tail.Load()
	for {
		// Re-read head on every attempt, including after a lost
		// CAS, so a racing producer is not reported full against
		// a stale view of the consumer's progress.
		head := r.head.Load()
		if tail < head {
			// The tail view predates the consumer's progress;
			// refresh it before judging fullness.
			tail = r.tail.Load()
			continue
		}
		if tail-head > r.mask {
			r.fullCount.Add(1)
			return false
		}
		if r.tail.CompareAndSwap(tail, tail+1) {
			break
		}
		tail = r.tail.Load()
	}

	s := &r.slots[tail&r.mask]
	n := copy(s.data[:], p)
	// Publication point: the consumer treats a nonzero length as
	// "record ready".
	s.length.Store(uint32(n))
	return true
}

// TryDequeue consumes the oldest published slot into dst and returns
// the record length. It returns false iff the queue is empty. If the
// oldest reserved slot has not been published yet, the call spins with
// a scheduler yield until the producer finishes; reservation precedes
// publication by only a bounded copy, so the wait is short. Only one
// goroutine may consume at a time.
func (r *Ring) TryDequeue(dst []byte) (int, bool) {
	head := r.head.Load()
	if head >= r.tail.Load() {
		return 0, false
	}

	s := &r.slots[head&r.mask]
	var n uint32
	for {
		if n = s.length.Load(); n != 0 {
			break
		}
		runtime.Gosched()
	}

	cnt := copy(dst, s.data[:n])
	s.length.Store(0)
	r.head.Store(head + 1)
	return cnt, true
}

// Size returns the number of reserved, unconsumed slots. It may be
// momentarily imprecise under contention but is exact at quiescence.
func (r *Ring) Size() int {
	return int(r.tail.Load() - r.head.Load())
}

// Empty reports whether the queue holds no reserved slots.
func (r *Ring) Empty() bool {
	return r.Size() == 0
}

// Full reports whether every slot is reserved.
func (r *Ring) Full() bool {
	return r.Size() > int(r.mask)
}

// Capacity returns the number of slots in the ring.
func (r *Ring) Capacity() int {
	return len(r.slots)
}

// FullCount returns the number of TryEnqueue calls that observed a full
// queue and returned false.
func (r *Ring) FullCount() uint64 {
	return r.fullCount.Load()
}
