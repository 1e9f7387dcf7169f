package main

import (
	"flag"
	"fmt"
	"os"
	"time"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"

	"github.com/shivam-909/alignedalloc/alloc"
	"github.com/shivam-909/alignedalloc/internal/vector"
	"github.com/shivam-909/alignedalloc/internal/workload"
	"github.com/shivam-909/alignedalloc/internal/workload/standard"
)

func main() {
	os.Exit(run())
}

func run() int {
	n := flag.Int("n", 2500000, "number of operations")
	impl := flag.String("impl", "both", "aligned, standard or both")
	push := flag.Int("push", 50, "percentage of operations that push")
	reserve := flag.String("reserve", "0", "bytes to reserve up front for the aligned vector, e.g. 64MiB")
	prof := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		fmt.Fprintf(os.Stderr, "unknown profile %q\n", *prof)
		return 2
	}

	if *impl == "aligned" || *impl == "both" {
		vec := vector.New[float64, alloc.Align64]()
		defer vec.Free()

		count, err := reserveCount(*reserve, unsafe.Sizeof(float64(0)), vec.Allocator().MaxSize())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reserve: %v\n", err)
			return 2
		}
		if err := vec.Reserve(count); err != nil {
			fmt.Fprintf(os.Stderr, "Error Reserve: %v\n", err)
			return 1
		}
		if err := bench("Aligned Allocator", vec, *n, *push); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("Aligned Allocator || %s\n", alloc.ReadStatistics())
	}

	if *impl == "standard" || *impl == "both" {
		if err := bench("Standard Allocator", standard.New(), *n, *push); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return 0
}

// reserveCount turns a human byte size into an element count of at most limit.
func reserveCount(size string, elemSize uintptr, limit int) (int, error) {
	b, err := humanize.ParseBytes(size)
	if err != nil {
		return 0, errors.Wrap(err, "parse reserve")
	}
	count := b / uint64(elemSize)
	if count > uint64(limit) {
		return 0, errors.Newf("reserve %s exceeds the allocator limit of %s elements",
			humanize.IBytes(b), humanize.Comma(int64(limit)))
	}
	return int(count), nil
}

func bench(name string, s workload.Sequence, n, push int) error {
	w := workload.New(push)

	start := time.Now()
	if err := w.Run(s, n); err != nil {
		return errors.Wrap(err, name)
	}
	elapsed := time.Since(start)
	average := elapsed / time.Duration(max(n, 1))

	fmt.Printf("%s || %s OPS || TOTAL: %v || AVERAGE: %v || LEN: %d\n",
		name, humanize.Comma(int64(n)), elapsed, average, s.Len())
	return nil
}
