// Package ringbuf implements the bounded multi-producer single-consumer
// transport between logging callers and the background worker.
//
// The Ring is a fixed array of slots, each holding up to 254 record
// bytes plus a 32-bit length field, with two monotonically increasing
// cursors. Producers race on a CAS over the tail cursor to
// reserve distinct slots; each slot is published to the consumer by a
// store of its length field, so the consumer tolerates out-of-order
// publication by slow producers. The head and tail cursors live on
// separate cache lines: producers only touch tail, the consumer only
// touches head, and neither invalidates the other's line.
//
// When the queue is full, producers apply the capped exponential
// Backoff discipline: a growing number of scheduler yields, then short
// fixed sleeps. Enqueue itself never blocks.
//
// The Batch is a per-producer staging area of up to 32 slots. Producers
// accumulate records locally and publish them back-to-back, amortizing
// CAS contention on the tail cursor and improving cache locality.
package ringbuf
