package vec

import (
	"errors"
	"fmt"

	"github.com/wilhasse/govec/ut"
)

// ErrInvariant is returned by Check when size or capacity are inconsistent.
var ErrInvariant = errors.New("vec: invariant violated")

// Check validates the size/capacity bookkeeping. A zero Vector passes.
func (v *Vector[T]) Check() error {
	c := len(v.buf)
	switch {
	case v.size < 0 || v.size > c:
		return fmt.Errorf("%w: size %d, capacity %d", ErrInvariant, v.size, c)
	case c == 0:
		return nil
	case c < MinCapacity:
		return fmt.Errorf("%w: capacity %d below %d", ErrInvariant, c, MinCapacity)
	case !ut.IsPow2(uint(c)):
		return fmt.Errorf("%w: capacity %d not a power of two", ErrInvariant, c)
	}
	return nil
}
