package alloc_test

import (
	"fmt"
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/shivam-909/alignedalloc/alloc"
)

func ExampleAlignedAllocator() {
	a := alloc.AlignedAllocator[float32, alloc.Align128]{}

	s, err := a.AllocateSlice(16)
	if err != nil {
		panic(err)
	}
	defer a.DeallocateSlice(s)

	fmt.Println(len(s), alloc.IsAligned(unsafe.Pointer(&s[0]), 128))
	// Output: 16 true
}

func ExampleRebind() {
	type node struct {
		key, value int64
	}

	a := alloc.New[float64]()
	nodes := alloc.Rebind[node](a)

	p, err := nodes.Allocate(1)
	if err != nil {
		panic(err)
	}
	defer nodes.Deallocate(p, 1)

	fmt.Println(nodes.Alignment(), alloc.IsAligned(unsafe.Pointer(p), nodes.Alignment()))
	// Output: 64 true
}

func ExampleAllocationError() {
	_, err := alloc.New[[4096]byte]().Allocate(-1)

	var aerr *alloc.AllocationError
	fmt.Println(errors.Is(err, alloc.ErrAllocationFailure), errors.As(err, &aerr), aerr.Count)
	// Output: true true -1
}
