// Package alloc provides AlignedAllocator, a stateless allocator that
// returns storage whose first byte sits on a fixed power-of-two boundary.
//
// # Alignment
//
// The boundary is part of the allocator's type: AlignedAllocator[float64, Align64]
// and AlignedAllocator[float64, Align128] are different types. Rebind keeps
// the boundary while changing the element type.
//
// # Platforms
//
// The platform call is chosen when the package is built. Unix targets map
// anonymous memory with mmap and release it with munmap; Windows targets use
// VirtualAlloc and VirtualFree. Other targets are not supported.
//
// # Debugging
//
// Building with -tags debug_aligned_alloc turns on precondition checks:
// alignment validity, pointer-free element types, double frees, foreign
// pointers and mismatched counts all panic.
package alloc
