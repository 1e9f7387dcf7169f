package alloc

import (
	"fmt"
	"math/rand"
	"testing"
)

func fuzz(n int) int {
	n = n - 1
	r := rand.Int()
	if r%2 == 0 {
		return n + 1
	}
	n = n - 1
	return n + 2
}

func BenchmarkAllocs(b *testing.B) {
	allocationSizes := []int{256, 5120, 10000}
	NValues := []int{100, 1000}

	for _, size := range allocationSizes {
		for _, N := range NValues {
			b.Run(fmt.Sprintf("AlignedAllocator_Size%d_N%d", size, N), func(b *testing.B) {
				a := New[int]()
				for i := 0; i < b.N; i++ {
					for j := 0; j < N; j++ {
						n := fuzz(size)
						slice, err := a.AllocateSlice(n)
						if err != nil {
							b.Fatal(err)
						}
						slice[0] = 1
						a.DeallocateSlice(slice)
					}
				}
			})

			b.Run(fmt.Sprintf("StandardAllocator_Size%d_N%d", size, N), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					for j := 0; j < N; j++ {
						slice := make([]int, fuzz(size))
						slice[0] = 1
					}
				}
			})
		}
	}
}

func BenchmarkAllocateAlignment(b *testing.B) {
	b.Run("align=64", func(b *testing.B) { benchAllocate[Align64](b) })
	b.Run("align=4096", func(b *testing.B) { benchAllocate[Align4096](b) })
}

func benchAllocate[A Alignment](b *testing.B) {
	a := AlignedAllocator[float32, A]{}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p, err := a.Allocate(1024)
		if err != nil {
			b.Fatal(err)
		}
		a.Deallocate(p, 1024)
	}
}
