package core

import "encoding/binary"

// Slot layout shared by the ring buffer and producer batches. Every slot
// is a fixed 256-byte region whose last two bytes carry a little-endian
// length trailer. A zero trailer means the slot holds no published record.
const (
	// SlotSize is the fixed byte size of one queue slot.
	SlotSize = 256
	// TrailerSize is the size of the length trailer at the end of a slot.
	TrailerSize = 2
	// MaxPayload is the largest record that fits in a slot. Longer
	// records are truncated, never split across slots.
	MaxPayload = SlotSize - TrailerSize
	// BatchSize is the number of slots staged per producer before a
	// bulk publish into the ring.
	BatchSize = 32
	// DefaultQueueCapacity is the default number of slots in the ring.
	DefaultQueueCapacity = 65536
)

// PutTrailer stores the record length into the trailer of a slot-sized
// byte region. The length is capped to MaxPayload.
func PutTrailer(slot []byte, n int) {
	if n > MaxPayload {
		n = MaxPayload
	}
	binary.LittleEndian.PutUint16(slot[SlotSize-TrailerSize:SlotSize], uint16(n))
}

// Trailer reads the record length from the trailer of a slot-sized byte
// region.
func Trailer(slot []byte) int {
	return int(binary.LittleEndian.Uint16(slot[SlotSize-TrailerSize : SlotSize]))
}
