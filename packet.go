package pcapng

import "time"

// Packet is one captured frame, optionally carrying a resolved timestamp
// and the Interface it was captured on.
type Packet struct {
	// Timestamp is nil for blocks that don't carry one (SimplePacketBlock).
	Timestamp *time.Time
	// Interface is nil when the block carried no interface reference, or
	// when it referenced an interface this section never described.
	Interface *InterfaceId
	Data       []byte
	// DataOffset is the [start, end) byte range Data occupied in the
	// source stream.
	DataOffset [2]int64
}

// resolveTimestamp converts raw ticks into wall-clock time using the
// interface's units_per_sec, per spec.md §3: secs = ticks/units_per_sec,
// nanos = (ticks % units_per_sec) * 1e9 / units_per_sec.
func resolveTimestamp(ticks uint64, unitsPerSec uint32) time.Time {
	ups := uint64(unitsPerSec)
	secs := int64(ticks / ups)
	nanos := int64((ticks % ups) * 1_000_000_000 / ups)
	return time.Unix(secs, nanos).UTC()
}
