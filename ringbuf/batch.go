package ringbuf

import "github.com/avensko/ringlog/core"

// Batch is a producer-local staging area of up to BatchSize slots.
// Records accumulate here and are published into the ring in one
// back-to-back run, which amortizes CAS contention on the tail cursor.
// A Batch is owned by a single producer goroutine and needs no
// synchronization.
type Batch struct {
	slots [core.BatchSize * core.SlotSize]byte
	count int
}

// TryAdd copies one record into the next staging slot, truncating to
// MaxPayload, and writes the slot's length trailer. It returns false
// iff the batch already holds BatchSize records.
func (b *Batch) TryAdd(p []byte) bool {
	if b.count >= core.BatchSize {
		return false
	}
	slot := b.slot(b.count)
	n := copy(slot[:core.MaxPayload], p)
	core.PutTrailer(slot, n)
	b.count++
	return true
}

// FlushInto publishes all staged records into the ring in staging
// order and resets the batch. With drop false, each record waits on
// the Backoff discipline until the ring accepts it; no record is lost.
// With drop true, a record that finds the ring full is discarded, and
// the number of discarded records is returned.
func (b *Batch) FlushInto(r *Ring, drop bool) int {
	var bo Backoff
	var dropped int
	for i := 0; i < b.count; i++ {
		slot := b.slot(i)
		rec := slot[:core.Trailer(slot)]
		if r.TryEnqueue(rec) {
			bo.Reset()
			continue
		}
		if drop {
			dropped++
			continue
		}
		for {
			bo.Wait()
			if r.TryEnqueue(rec) {
				break
			}
		}
		bo.Reset()
	}
	b.count = 0
	return dropped
}

// Len returns the number of staged records.
func (b *Batch) Len() int {
	return b.count
}

// Clear discards all staged records.
func (b *Batch) Clear() {
	b.count = 0
}

// Slot returns the i'th staged slot, including its length trailer.
func (b *Batch) Slot(i int) []byte {
	return b.slot(i)
}

func (b *Batch) slot(i int) []byte {
	return b.slots[i*core.SlotSize : (i+1)*core.SlotSize]
}
