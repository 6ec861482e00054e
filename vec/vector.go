// Package vec implements Vector, a contiguous growable sequence that owns its
// slot buffer and doubles it when full.
package vec

import (
	"fmt"
	"iter"

	"github.com/wilhasse/govec/mem"
	"github.com/wilhasse/govec/ut"
	"golang.org/x/exp/slices"
)

const (
	// MinCapacity is the smallest buffer a Vector holds.
	MinCapacity = 8
	// GrowthFactor multiplies the capacity of a full Vector on append.
	GrowthFactor = 2
)

// Vector is a contiguous sequence of T backed by a single owned buffer.
// Slots [0, Size()) are live; the rest of the buffer is unused.
//
// The zero value is an empty Vector without a buffer; the first append
// acquires one. A Vector is not safe for concurrent use.
type Vector[T any] struct {
	buf  []T
	size int
}

// New returns an empty Vector with MinCapacity slots.
func New[T any]() *Vector[T] {
	return withCapacity[T](0)
}

// NewSized returns a Vector holding n zero values.
func NewSized[T any](n int) *Vector[T] {
	var zero T
	return NewFilled(n, zero)
}

// NewFilled returns a Vector holding n copies of fill. It panics if n < 0.
func NewFilled[T any](n int, fill T) *Vector[T] {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeSize, n))
	}
	v := withCapacity[T](n)
	for i := range n {
		v.buf[i] = fill
	}
	v.size = n
	return v
}

// Of returns a Vector holding values in order.
func Of[T any](values ...T) *Vector[T] {
	v := withCapacity[T](len(values))
	v.size = copy(v.buf, values)
	return v
}

// FromSeq returns a Vector holding every value produced by seq.
func FromSeq[T any](seq iter.Seq[T]) *Vector[T] {
	v := New[T]()
	for x := range seq {
		v.PushBack(x)
	}
	return v
}

// FromRange copies the elements in [begin, end). Both cursors must belong to
// the same Vector; otherwise the result is empty.
func FromRange[T any](begin, end Cursor[T]) *Vector[T] {
	n := 0
	if begin.v != nil && begin.v == end.v {
		for c := begin; c.Valid() && !c.Equal(end); c.Next() {
			n++
		}
	}
	v := withCapacity[T](n)
	for c := begin; v.size < n; c.Next() {
		v.buf[v.size] = c.Value()
		v.size++
	}
	return v
}

func withCapacity[T any](n int) *Vector[T] {
	return &Vector[T]{buf: mem.Acquire[T](ut.CapacityFor(n, MinCapacity))}
}

// Clone returns a deep copy with the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{
		buf:  mem.Acquire[T](max(len(v.buf), MinCapacity)),
		size: v.size,
	}
	copy(c.buf, v.buf[:v.size])
	return c
}

// Move transfers v's buffer to a new Vector. v is left empty with a fresh
// MinCapacity buffer and stays usable.
func (v *Vector[T]) Move() *Vector[T] {
	m := New[T]()
	m.Swap(v)
	return m
}

// CopyFrom replaces v's contents with a deep copy of src.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
	tmp.Free()
}

// MoveFrom takes src's buffer; src receives v's previous buffer.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	v.Swap(src)
}

// Swap exchanges the buffers of v and o.
func (v *Vector[T]) Swap(o *Vector[T]) {
	if v == o {
		return
	}
	v.buf, o.buf = o.buf, v.buf
	v.size, o.size = o.size, v.size
}

// Free releases the buffer. v becomes the zero Vector.
func (v *Vector[T]) Free() {
	if v == nil {
		return
	}
	mem.Release(v.buf)
	v.buf = nil
	v.size = 0
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	if v == nil {
		return 0
	}
	return len(v.buf)
}

// Empty reports whether Size() == 0.
func (v *Vector[T]) Empty() bool {
	return v.Size() == 0
}

// Index returns a pointer to slot i without checking it against Size.
// The caller must ensure 0 <= i < Size().
func (v *Vector[T]) Index(i int) *T {
	return &v.buf[i]
}

// At returns a pointer to element i.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, &IndexError{Index: i, Size: v.size}
	}
	return &v.buf[i], nil
}

// Get returns a copy of element i.
func (v *Vector[T]) Get(i int) (T, error) {
	p, err := v.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set overwrites element i.
func (v *Vector[T]) Set(i int, x T) error {
	p, err := v.At(i)
	if err != nil {
		return err
	}
	*p = x
	return nil
}

// Front returns a pointer to the first element.
func (v *Vector[T]) Front() (*T, error) {
	if v.size == 0 {
		return nil, emptyError("Front")
	}
	return &v.buf[0], nil
}

// Back returns a pointer to the last element.
func (v *Vector[T]) Back() (*T, error) {
	if v.size == 0 {
		return nil, emptyError("Back")
	}
	return &v.buf[v.size-1], nil
}

// PushBack appends x, doubling the buffer first if it is full.
func (v *Vector[T]) PushBack(x T) {
	if v.buf == nil {
		v.buf = mem.Acquire[T](MinCapacity)
	}
	if v.size == len(v.buf) {
		v.reallocate()
	}
	v.buf[v.size] = x
	v.size++
}

// PushBackZero appends the zero value of T.
func (v *Vector[T]) PushBackZero() {
	var zero T
	v.PushBack(zero)
}

// PopBack removes the last element and returns it.
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, emptyError("PopBack")
	}
	v.size--
	x := v.buf[v.size]
	v.buf[v.size] = zero
	return x, nil
}

// Clear removes all elements and keeps the buffer.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}

func (v *Vector[T]) reallocate() {
	v.buf = mem.Relocate(v.buf, v.size, len(v.buf)*GrowthFactor)
}

// Slice returns the live elements. The result aliases the buffer until the
// next growth; its capacity is clipped to Size().
func (v *Vector[T]) Slice() []T {
	return v.buf[:v.size:v.size]
}

// IndexFunc returns the index of the first element satisfying f, or -1.
func (v *Vector[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(v.Slice(), f)
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

// Equal reports whether a and b hold equal elements in the same order.
// Capacity is ignored.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}
