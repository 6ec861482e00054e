package mem

import "sync/atomic"

// Stats is a point-in-time copy of the buffer accounting counters.
type Stats struct {
	// Buffers, Slots and Bytes describe buffers currently owned.
	Buffers int64
	Slots   int64
	Bytes   int64
	// Acquired, Released and Reallocations are cumulative.
	Acquired      uint64
	Released      uint64
	Reallocations uint64
}

var (
	liveBuffers   atomic.Int64
	liveSlots     atomic.Int64
	liveBytes     atomic.Int64
	nAcquired     atomic.Uint64
	nReleased     atomic.Uint64
	nReallocation atomic.Uint64
)

func recordAcquire(slots int, bytes int64) {
	liveBuffers.Add(1)
	liveSlots.Add(int64(slots))
	liveBytes.Add(bytes)
	nAcquired.Add(1)
}

func recordRelease(slots int, bytes int64) {
	liveBuffers.Add(-1)
	liveSlots.Add(-int64(slots))
	liveBytes.Add(-bytes)
	nReleased.Add(1)
}

func recordRelocation() {
	nReallocation.Add(1)
}

// Snapshot returns the current counters.
func Snapshot() Stats {
	return Stats{
		Buffers:       liveBuffers.Load(),
		Slots:         liveSlots.Load(),
		Bytes:         liveBytes.Load(),
		Acquired:      nAcquired.Load(),
		Released:      nReleased.Load(),
		Reallocations: nReallocation.Load(),
	}
}

// ResetStats zeroes all counters.
func ResetStats() {
	liveBuffers.Store(0)
	liveSlots.Store(0)
	liveBytes.Store(0)
	nAcquired.Store(0)
	nReleased.Store(0)
	nReallocation.Store(0)
}

// Sub returns the change from prev to s.
func (s Stats) Sub(prev Stats) Stats {
	return Stats{
		Buffers:       s.Buffers - prev.Buffers,
		Slots:         s.Slots - prev.Slots,
		Bytes:         s.Bytes - prev.Bytes,
		Acquired:      s.Acquired - prev.Acquired,
		Released:      s.Released - prev.Released,
		Reallocations: s.Reallocations - prev.Reallocations,
	}
}
