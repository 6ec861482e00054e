package mem

import "unsafe"

// Acquire allocates a slot buffer of exactly slots elements and records it
// as live.
func Acquire[T any](slots int) []T {
	if slots < 0 {
		panic("mem: negative slot count")
	}
	buf := make([]T, slots)
	recordAcquire(slots, slotBytes[T](slots))
	return buf
}

// Release records buf as no longer owned. Nil or zero-length buffers are
// ignored. buf must not be used afterwards.
func Release[T any](buf []T) {
	if len(buf) == 0 {
		return
	}
	clear(buf)
	recordRelease(len(buf), slotBytes[T](len(buf)))
}

// Relocate moves the first live elements of old into a freshly acquired
// buffer of slots elements, at the same indices, then releases old.
func Relocate[T any](old []T, live, slots int) []T {
	if live < 0 || live > len(old) || slots < live {
		panic("mem: invalid relocation")
	}
	buf := Acquire[T](slots)
	copy(buf, old[:live])
	Release(old)
	recordRelocation()
	logger().Debug("buffer relocated",
		"old_slots", len(old),
		"new_slots", slots,
		"live", live)
	return buf
}

func slotBytes[T any](slots int) int64 {
	var zero T
	return int64(unsafe.Sizeof(zero)) * int64(slots)
}
