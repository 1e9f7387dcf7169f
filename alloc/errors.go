package alloc

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrAllocationFailure is matched by every error returned from Allocate and
// AllocateSlice.
var ErrAllocationFailure = errors.New("aligned allocation failed")

// AllocationError describes a request the platform could not satisfy.
//
// The platform error (if any) can be accessed via errors.Unwrap.
type AllocationError struct {
	Count     int
	ElemSize  uintptr
	Size      uintptr
	Alignment uintptr
	cause     error
}

func (e *AllocationError) Error() string {
	msg := fmt.Sprintf("aligned allocation failed: %d x %d bytes aligned to %d", e.Count, e.ElemSize, e.Alignment)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *AllocationError) Unwrap() error { return e.cause }

func (e *AllocationError) Is(target error) bool { return target == ErrAllocationFailure }

func allocationFailure(count int, elemSize, size, alignment uintptr, cause error) error {
	return errors.WithStack(&AllocationError{
		Count:     count,
		ElemSize:  elemSize,
		Size:      size,
		Alignment: alignment,
		cause:     cause,
	})
}

var (
	errNegativeCount = errors.New("negative element count")
	errSizeOverflow  = errors.New("requested size overflows the address space")
)
