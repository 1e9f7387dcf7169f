package alloc

import "unsafe"

var wordSize = unsafe.Sizeof(uintptr(0)) // 8 bytes on 64-bit

// Alignment is implemented by zero-size marker types that name a byte
// boundary. Bytes must return a power of two that is a multiple of the
// pointer size.
type Alignment interface {
	Bytes() uintptr
}

type (
	Align16   struct{}
	Align32   struct{}
	Align64   struct{} // cache line, the default
	Align128  struct{}
	Align256  struct{}
	Align4096 struct{} // page
)

func (Align16) Bytes() uintptr { return 16 }
func (Align32) Bytes() uintptr { return 32 }
func (Align64) Bytes() uintptr { return 64 }
func (Align128) Bytes() uintptr { return 128 }
func (Align256) Bytes() uintptr { return 256 }
func (Align4096) Bytes() uintptr { return 4096 }

func isPow2(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}

// validAlignment reports whether alignment is accepted by the platform
// allocation call: a power of two and a multiple of the pointer size.
func validAlignment(alignment uintptr) bool {
	return isPow2(alignment) && alignment%wordSize == 0
}

// alignUp rounds n up to the next multiple of alignment, which must be a
// power of two.
func alignUp(n, alignment uintptr) uintptr {
	return (n + alignment - 1) &^ (alignment - 1)
}

// IsAligned reports whether p sits on an alignment boundary.
func IsAligned(p unsafe.Pointer, alignment uintptr) bool {
	return uintptr(p)%alignment == 0
}
