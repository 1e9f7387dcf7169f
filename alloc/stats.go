package alloc

import (
	"fmt"
	"sync/atomic"

	"github.com/dustin/go-humanize"
)

// Statistics is a snapshot of the allocator's counters. Live values drop
// back when blocks are deallocated; Total values only grow.
type Statistics struct {
	AllocationCount int64 // live blocks
	AllocationBytes int64 // live bytes requested by callers
	BlockBytes      int64 // live bytes mapped from the platform, headers and padding included

	TotalAllocations   int64
	TotalDeallocations int64
	Failures           int64
}

func (s Statistics) String() string {
	return fmt.Sprintf("%d live blocks, %s requested, %s mapped (%d allocs, %d frees, %d failures)",
		s.AllocationCount,
		humanize.IBytes(uint64(s.AllocationBytes)),
		humanize.IBytes(uint64(s.BlockBytes)),
		s.TotalAllocations,
		s.TotalDeallocations,
		s.Failures,
	)
}

type counters struct {
	allocationCount atomic.Int64
	allocationBytes atomic.Int64
	blockBytes      atomic.Int64

	totalAllocations   atomic.Int64
	totalDeallocations atomic.Int64
	failures           atomic.Int64
}

var stats counters

func (c *counters) allocated(size, length uintptr) {
	c.allocationCount.Add(1)
	c.allocationBytes.Add(int64(size))
	c.blockBytes.Add(int64(length))
	c.totalAllocations.Add(1)
}

func (c *counters) released(size, length uintptr) {
	c.allocationCount.Add(-1)
	c.allocationBytes.Add(-int64(size))
	c.blockBytes.Add(-int64(length))
	c.totalDeallocations.Add(1)
}

// ReadStatistics returns the current counters. Each field is read
// atomically; the snapshot as a whole is not.
func ReadStatistics() Statistics {
	return Statistics{
		AllocationCount:    stats.allocationCount.Load(),
		AllocationBytes:    stats.allocationBytes.Load(),
		BlockBytes:         stats.blockBytes.Load(),
		TotalAllocations:   stats.totalAllocations.Load(),
		TotalDeallocations: stats.totalDeallocations.Load(),
		Failures:           stats.failures.Load(),
	}
}
