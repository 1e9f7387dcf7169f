package alloc

import (
	"math"
	"math/bits"
	"unsafe"

	"go.uber.org/zap"
)

// AlignedAllocator hands out raw storage for elements of type T whose first
// byte is a multiple of A's alignment. It has no fields: every value of one
// instantiation is interchangeable with every other.
//
// Blocks live outside the Go heap and are never scanned by the garbage
// collector, so T must not contain Go pointers. Builds with the
// debug_aligned_alloc tag enforce this.
type AlignedAllocator[T any, A Alignment] struct{}

// New returns an allocator for T aligned to a 64-byte cache line.
func New[T any]() AlignedAllocator[T, Align64] {
	return AlignedAllocator[T, Align64]{}
}

// Rebind returns an allocator for U that keeps a's alignment.
func Rebind[U, T any, A Alignment](a AlignedAllocator[T, A]) AlignedAllocator[U, A] {
	return AlignedAllocator[U, A]{}
}

// Compatible reports whether blocks obtained from a may be released through
// b and the other way around.
func Compatible[T, U any, A, B Alignment](a AlignedAllocator[T, A], b AlignedAllocator[U, B]) bool {
	return a.Alignment() == b.Alignment()
}

func (AlignedAllocator[T, A]) Alignment() uintptr {
	var a A
	return a.Bytes()
}

// Equal always reports true.
func (AlignedAllocator[T, A]) Equal(AlignedAllocator[T, A]) bool {
	return true
}

func (AlignedAllocator[T, A]) elemSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// MaxSize returns the largest element count Allocate can size without
// overflow. The platform may still refuse smaller requests.
func (a AlignedAllocator[T, A]) MaxSize() int {
	elem := a.elemSize()
	limit := uintptr(math.MaxInt) - headerSize - (a.Alignment() - 1)
	if elem == 0 {
		return math.MaxInt
	}
	return int(limit / elem)
}

// Allocate returns storage for n elements. The pointer is never nil on
// success, also when n is 0, and must be handed back to Deallocate exactly
// once. Failures match ErrAllocationFailure.
func (a AlignedAllocator[T, A]) Allocate(n int) (*T, error) {
	alignment := a.Alignment()
	elem := a.elemSize()
	debugCheckConfig[T](alignment)

	if n < 0 {
		return nil, a.fail(n, 0, errNegativeCount)
	}
	hi, size := bits.Mul64(uint64(n), uint64(elem))
	if hi != 0 || size > math.MaxInt {
		return nil, a.fail(n, uintptr(size), errSizeOverflow)
	}

	p, err := allocBlock(uintptr(size), alignment)
	if err != nil {
		return nil, a.fail(n, uintptr(size), err)
	}

	if ce := Logger().Check(zap.DebugLevel, "allocate"); ce != nil {
		ce.Write(
			zap.Int("count", n),
			zap.Uint64("bytes", size),
			zap.Uintptr("alignment", alignment),
			zap.Uintptr("addr", uintptr(p)),
		)
	}
	return (*T)(p), nil
}

// Deallocate releases storage returned by Allocate of an allocator with the
// same alignment. n must be the count passed to Allocate. A nil pointer is
// ignored. Releasing a block twice is undefined.
func (a AlignedAllocator[T, A]) Deallocate(p *T, n int) {
	if p == nil {
		return
	}
	ptr := unsafe.Pointer(p)
	debugCheckBlock(ptr, uintptr(n)*a.elemSize(), a.Alignment())

	if ce := Logger().Check(zap.DebugLevel, "deallocate"); ce != nil {
		ce.Write(
			zap.Int("count", n),
			zap.Uintptr("alignment", a.Alignment()),
			zap.Uintptr("addr", uintptr(ptr)),
		)
	}
	freeBlock(ptr)
}

// AllocateSlice is Allocate shaped as a slice with len and cap n. A zero n
// returns an empty slice that owns no block.
func (a AlignedAllocator[T, A]) AllocateSlice(n int) ([]T, error) {
	if n == 0 {
		return make([]T, 0), nil
	}
	p, err := a.Allocate(n)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice(p, n), nil
}

// DeallocateSlice releases a slice returned by AllocateSlice. It must be
// the slice itself, not one resliced from it. Empty slices own no block and
// are ignored.
func (a AlignedAllocator[T, A]) DeallocateSlice(s []T) {
	if cap(s) == 0 {
		return
	}
	a.Deallocate(unsafe.SliceData(s), len(s))
}

func (a AlignedAllocator[T, A]) fail(n int, size uintptr, cause error) error {
	stats.failures.Add(1)
	err := allocationFailure(n, a.elemSize(), size, a.Alignment(), cause)
	Logger().Warn("allocation failed",
		zap.Int("count", n),
		zap.Uintptr("bytes", size),
		zap.Uintptr("alignment", a.Alignment()),
		zap.Error(cause),
	)
	return err
}
