package vec

import "iter"

// Cursor is a position in a Vector's live range. End() is one past the last
// element. Cursors are invalidated by any mutation that changes Size.
type Cursor[T any] struct {
	v *Vector[T]
	i int
}

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() Cursor[T] {
	return Cursor[T]{v: v}
}

// End returns a cursor one past the last element.
func (v *Vector[T]) End() Cursor[T] {
	return Cursor[T]{v: v, i: v.size}
}

// Next advances the cursor.
func (c *Cursor[T]) Next() {
	c.i++
}

// Prev moves the cursor back.
func (c *Cursor[T]) Prev() {
	c.i--
}

// Equal reports whether both cursors point at the same slot of the same Vector.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.v == o.v && c.i == o.i
}

// Index returns the slot index.
func (c Cursor[T]) Index() int {
	return c.i
}

// Valid reports whether the cursor points at a live element.
func (c Cursor[T]) Valid() bool {
	return c.v != nil && c.i >= 0 && c.i < c.v.size
}

// Value returns the element under the cursor. Like Index, it is unchecked.
func (c Cursor[T]) Value() T {
	return c.v.buf[c.i]
}

// Ptr returns a pointer to the element under the cursor.
func (c Cursor[T]) Ptr() *T {
	return &c.v.buf[c.i]
}

// All yields index/value pairs front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values yields elements front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}
