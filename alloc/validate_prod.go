//go:build !debug_aligned_alloc

package alloc

import "unsafe"

// debugCheckConfig panics if alignment is unusable for T or T holds Go
// pointers. This method no-ops unless the debug_aligned_alloc build tag is present.
func debugCheckConfig[T any](alignment uintptr) {
}

// debugTrackBlock records p as live.
// This method no-ops unless the debug_aligned_alloc build tag is present.
func debugTrackBlock(p unsafe.Pointer) {
}

// debugUntrackBlock panics if p is not live, catching double frees and
// foreign pointers. This method no-ops unless the debug_aligned_alloc build tag is present.
func debugUntrackBlock(p unsafe.Pointer) {
}

// debugCheckBlock panics if the live block at p was not allocated with size
// bytes and alignment. This method no-ops unless the debug_aligned_alloc build tag is present.
func debugCheckBlock(p unsafe.Pointer, size, alignment uintptr) {
}
