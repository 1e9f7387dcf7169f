package vector

import (
	"iter"
	"unsafe"

	"github.com/shivam-909/alignedalloc/alloc"
)

// Vector is a growable array whose storage comes from an aligned allocator.
// The backing block always starts on A's boundary. A Vector must be released
// with Free; it is not safe for concurrent mutation.
type Vector[T any, A alloc.Alignment] struct {
	al   alloc.AlignedAllocator[T, A]
	data *T
	len  int
	cap  int
}

// New creates an empty Vector. No storage is allocated until the first Push
// or Reserve.
func New[T any, A alloc.Alignment]() *Vector[T, A] {
	return &Vector[T, A]{}
}

// WithCapacity creates an empty Vector with room for n elements.
func WithCapacity[T any, A alloc.Alignment](n int) (*Vector[T, A], error) {
	v := New[T, A]()
	if err := v.Reserve(n); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vector[T, A]) Allocator() alloc.AlignedAllocator[T, A] { return v.al }

func (v *Vector[T, A]) Len() int { return v.len }

func (v *Vector[T, A]) Cap() int { return v.cap }

// Data returns the address of the backing block, nil before the first
// allocation.
func (v *Vector[T, A]) Data() unsafe.Pointer { return unsafe.Pointer(v.data) }

// Slice returns the elements as a slice sharing the backing block. It is
// invalidated by any call that grows the Vector and by Free.
func (v *Vector[T, A]) Slice() []T {
	if v.data == nil {
		return nil
	}
	return unsafe.Slice(v.data, v.cap)[:v.len]
}

// At returns element i. It panics if i is out of range.
func (v *Vector[T, A]) At(i int) T {
	return v.Slice()[i]
}

// Set replaces element i. It panics if i is out of range.
func (v *Vector[T, A]) Set(i int, x T) {
	v.Slice()[i] = x
}

// Push appends x, growing the backing block when full. If growth fails the
// Vector is left unchanged and the allocation error is returned.
func (v *Vector[T, A]) Push(x T) error {
	if v.len == v.cap {
		if err := v.grow(v.len + 1); err != nil {
			return err
		}
	}
	unsafe.Slice(v.data, v.cap)[v.len] = x
	v.len++
	return nil
}

// Pop removes and returns the last element.
func (v *Vector[T, A]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	s := unsafe.Slice(v.data, v.cap)
	x := s[v.len]
	s[v.len] = zero
	return x, true
}

// Reserve makes room for at least n elements without further allocation.
func (v *Vector[T, A]) Reserve(n int) error {
	if n <= v.cap {
		return nil
	}
	return v.realloc(n)
}

// Clear drops all elements but keeps the backing block.
func (v *Vector[T, A]) Clear() {
	clear(v.Slice())
	v.len = 0
}

// All iterates over index/element pairs in insertion order.
func (v *Vector[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.Slice() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Free releases the backing block. The Vector is empty and reusable
// afterwards.
func (v *Vector[T, A]) Free() {
	if v.data != nil {
		v.al.Deallocate(v.data, v.cap)
	}
	v.data = nil
	v.len = 0
	v.cap = 0
}

func (v *Vector[T, A]) grow(need int) error {
	return v.realloc(nextCap(v.cap, need, v.al.MaxSize()))
}

// nextCap doubles n, staying at or below limit unless need is larger.
func nextCap(n, need, limit int) int {
	doubled := limit
	if n <= limit/2 {
		doubled = 2 * n
	}
	return max(doubled, need)
}

// realloc moves the elements into a fresh block of n elements. The old block
// is released only once the new one is in hand.
func (v *Vector[T, A]) realloc(n int) error {
	p, err := v.al.Allocate(n)
	if err != nil {
		return err
	}
	copy(unsafe.Slice(p, n), v.Slice())

	if v.data != nil {
		v.al.Deallocate(v.data, v.cap)
	}
	v.data = p
	v.cap = n
	return nil
}
