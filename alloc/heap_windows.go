//go:build windows

package alloc

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

// alignedMalloc returns a block of size bytes aligned to alignment, or nil
// when the request cannot be satisfied.
func alignedMalloc(size, alignment uintptr) unsafe.Pointer {
	// The header below the payload needs word alignment.
	if !validAlignment(alignment) {
		return nil
	}
	length, ok := blockLength(size, alignment)
	if !ok {
		return nil
	}

	// MEM_COMMIT is demand-paged, physical pages are only backed on first touch.
	addr, err := windows.VirtualAlloc(0, length, windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil
	}

	return placeBlock(unsafe.Pointer(addr), length, size, alignment)
}

// alignedFree releases a block returned by alignedMalloc.
func alignedFree(p unsafe.Pointer) {
	h := headerOf(p)
	// MEM_RELEASE requires a zero size and frees the whole reservation.
	if err := windows.VirtualFree(uintptr(h.base), 0, windows.MEM_RELEASE); err != nil {
		panic(errors.Wrapf(err, "VirtualFree block at %p", p))
	}
}

func platformAlloc(size, alignment uintptr) (unsafe.Pointer, error) {
	p := alignedMalloc(size, alignment)
	if p == nil {
		return nil, windows.ERROR_NOT_ENOUGH_MEMORY
	}
	return p, nil
}

func platformFree(p unsafe.Pointer) {
	alignedFree(p)
}
