//go:build debug_aligned_alloc

package alloc

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// live holds every block handed out and not yet released.
var live sync.Map

// debugCheckConfig panics if alignment is unusable for T or T holds Go
// pointers. This method no-ops unless the debug_aligned_alloc build tag is present.
func debugCheckConfig[T any](alignment uintptr) {
	var zero T
	if !validAlignment(alignment) {
		panic(errors.AssertionFailedf("alignment %d is not a power of two multiple of %d", alignment, wordSize))
	}
	if alignment < unsafe.Alignof(zero) {
		panic(errors.AssertionFailedf("alignment %d is below the natural alignment %d of %T", alignment, unsafe.Alignof(zero), zero))
	}
	if typ := reflect.TypeFor[T](); hasPointers(typ) {
		panic(errors.AssertionFailedf("element type %s holds Go pointers", typ))
	}
}

// debugTrackBlock records p as live.
// This method no-ops unless the debug_aligned_alloc build tag is present.
func debugTrackBlock(p unsafe.Pointer) {
	live.Store(uintptr(p), struct{}{})
}

// debugUntrackBlock panics if p is not live, catching double frees and
// foreign pointers. This method no-ops unless the debug_aligned_alloc build tag is present.
func debugUntrackBlock(p unsafe.Pointer) {
	if _, ok := live.LoadAndDelete(uintptr(p)); !ok {
		panic(errors.AssertionFailedf("deallocate of %p: not a live aligned block", p))
	}
}

// debugCheckBlock panics if the live block at p was not allocated with size
// bytes and alignment. This method no-ops unless the debug_aligned_alloc build tag is present.
func debugCheckBlock(p unsafe.Pointer, size, alignment uintptr) {
	if _, ok := live.Load(uintptr(p)); !ok {
		panic(errors.AssertionFailedf("deallocate of %p: not a live aligned block", p))
	}
	if !IsAligned(p, alignment) {
		panic(errors.AssertionFailedf("deallocate of %p: block is not aligned to %d", p, alignment))
	}
	if h := headerOf(p); h.size != size {
		panic(errors.AssertionFailedf("deallocate of %p: %d bytes released, %d allocated", p, size, h.size))
	}
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
