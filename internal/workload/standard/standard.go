package standard

import "github.com/shivam-909/alignedalloc/internal/workload"

// standard implements workload.Sequence on a built-in slice, as the
// baseline for the aligned vector.
type standard struct {
	values []float64
}

func New() workload.Sequence {
	return &standard{}
}

// Push appends x; the runtime grows the slice.
func (s *standard) Push(x float64) error {
	s.values = append(s.values, x)
	return nil
}

// Pop removes the last value.
func (s *standard) Pop() (float64, bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	x := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return x, true
}

func (s *standard) Len() int {
	return len(s.values)
}
