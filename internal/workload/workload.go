package workload

import "math/rand/v2"

const (
	MaxValue = 10000
	MinValue = 9000
)

// Sequence is the container a workload drives.
type Sequence interface {
	Push(x float64) error
	Pop() (float64, bool)
	Len() int
}

// Workload issues a random mix of pushes and pops.
type Workload struct {
	// PushPercent is the chance, out of 100, that an action pushes.
	PushPercent int

	Pushes int
	Pops   int
}

func New(pushPercent int) *Workload {
	return &Workload{PushPercent: pushPercent}
}

func randomBoolDistribution(truePercentage int) bool {
	n := rand.IntN(100)
	return n < truePercentage
}

func GenerateValue() float64 {
	return float64(rand.IntN(MaxValue-MinValue)+MinValue) + rand.Float64()
}

// Act performs one random action on s. Pops on an empty sequence are
// skipped.
func (w *Workload) Act(s Sequence) error {
	if randomBoolDistribution(w.PushPercent) {
		if err := s.Push(GenerateValue()); err != nil {
			return err
		}
		w.Pushes++
		return nil
	}

	if _, ok := s.Pop(); ok {
		w.Pops++
	}
	return nil
}

// Run performs n actions, stopping at the first error.
func (w *Workload) Run(s Sequence, n int) error {
	for i := 0; i < n; i++ {
		if err := w.Act(s); err != nil {
			return err
		}
	}
	return nil
}
