package workload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivam-909/alignedalloc/alloc"
	"github.com/shivam-909/alignedalloc/internal/vector"
	"github.com/shivam-909/alignedalloc/internal/workload"
	"github.com/shivam-909/alignedalloc/internal/workload/standard"
)

func TestRunAgainstBothSequences(t *testing.T) {
	aligned := vector.New[float64, alloc.Align64]()
	defer aligned.Free()

	sequences := map[string]workload.Sequence{
		"aligned":  aligned,
		"standard": standard.New(),
	}

	for name, s := range sequences {
		t.Run(name, func(t *testing.T) {
			w := workload.New(60)
			require.NoError(t, w.Run(s, 5000))

			assert.Positive(t, w.Pushes)
			assert.LessOrEqual(t, w.Pushes+w.Pops, 5000)
			assert.Equal(t, w.Pushes-w.Pops, s.Len())
		})
	}

	assert.True(t, alloc.IsAligned(aligned.Data(), 64))
}

func TestPushOnly(t *testing.T) {
	s := standard.New()
	w := workload.New(100)
	require.NoError(t, w.Run(s, 100))

	assert.Equal(t, 100, w.Pushes)
	assert.Zero(t, w.Pops)
	assert.Equal(t, 100, s.Len())

	for s.Len() > 0 {
		x, ok := s.Pop()
		require.True(t, ok)
		assert.GreaterOrEqual(t, x, float64(workload.MinValue))
		assert.Less(t, x, float64(workload.MaxValue))
	}
}

func TestPopOnlyOnEmpty(t *testing.T) {
	s := standard.New()
	w := workload.New(0)
	require.NoError(t, w.Run(s, 10))

	assert.Zero(t, w.Pushes)
	assert.Zero(t, w.Pops)
}
