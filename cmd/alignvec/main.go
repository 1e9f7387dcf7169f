package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/shivam-909/alignedalloc/alloc"
	"github.com/shivam-909/alignedalloc/internal/vector"
)

func main() {
	os.Exit(run())
}

func run() int {
	verbose := flag.Bool("v", false, "log allocator events")
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

	if *verbose {
		lg, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error NewDevelopment: %v\n", err)
			return 1
		}
		defer lg.Sync()
		alloc.SetLogger(lg)
	}

	// A vector of doubles with 64-byte aligned storage
	vec := vector.New[float64, alloc.Align64]()
	defer vec.Free()

	for _, x := range []float64{3.14, 2.718} {
		if err := vec.Push(x); err != nil {
			fmt.Fprintf(os.Stderr, "Error Push: %v\n", err)
			return 1
		}
	}

	for _, elem := range vec.All() {
		fmt.Println(elem)
	}

	fmt.Printf("storage %p, address mod %d = %d\n", vec.Data(), vec.Allocator().Alignment(), uintptr(vec.Data())%vec.Allocator().Alignment())
	fmt.Println(alloc.ReadStatistics())
	return 0
}
