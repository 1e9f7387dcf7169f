package alloc

import (
	"math"
	"unsafe"
)

// Block layout
//
// [PADDING...][HEADER=3 words][PAYLOAD...]
// ^ base                      ^ multiple of the requested alignment
//
// The header records the platform mapping, so a block is released from its
// payload pointer alone, the same way C free works.

type blockHeader struct {
	base   unsafe.Pointer // start of the platform mapping
	length uintptr        // length of the platform mapping
	size   uintptr        // bytes requested by the caller
}

var headerSize = unsafe.Sizeof(blockHeader{})

// Platform primitives. The build selects platformAlloc/platformFree; tests
// swap sysAlloc to simulate an exhausted heap.
var (
	sysAlloc = platformAlloc
	sysFree  = platformFree
)

// blockLength returns the mapping length needed to place size bytes on an
// alignment boundary behind a header, wherever the platform puts the base.
func blockLength(size, alignment uintptr) (uintptr, bool) {
	pad := headerSize + alignment - 1
	if size > math.MaxInt-pad {
		return 0, false
	}
	return size + pad, true
}

// placeBlock writes the header for a fresh mapping and returns the payload.
func placeBlock(base unsafe.Pointer, length, size, alignment uintptr) unsafe.Pointer {
	offset := alignUp(uintptr(base)+headerSize, alignment) - uintptr(base)
	p := unsafe.Add(base, offset)

	h := headerOf(p)
	h.base = base
	h.length = length
	h.size = size
	return p
}

// Returns pointer to the header sitting right below the payload
func headerOf(p unsafe.Pointer) *blockHeader {
	return (*blockHeader)(unsafe.Add(p, -int(headerSize)))
}

func allocBlock(size, alignment uintptr) (unsafe.Pointer, error) {
	p, err := sysAlloc(size, alignment)
	if err != nil {
		return nil, err
	}

	h := headerOf(p)
	stats.allocated(h.size, h.length)
	debugTrackBlock(p)
	return p, nil
}

func freeBlock(p unsafe.Pointer) {
	debugUntrackBlock(p)

	h := headerOf(p)
	size, length := h.size, h.length
	sysFree(p)
	stats.released(size, length)
}
