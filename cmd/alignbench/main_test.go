package main

import (
	"math"
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveCount(t *testing.T) {
	elem := unsafe.Sizeof(float64(0))

	count, err := reserveCount("0", elem, math.MaxInt)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = reserveCount("1KiB", elem, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 128, count)

	count, err = reserveCount("1KiB", 16, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 64, count)

	_, err = reserveCount("1KiB", elem, 127)
	assert.Error(t, err)

	_, err = reserveCount("8EiB", 1, math.MaxInt)
	assert.Error(t, err)

	_, err = reserveCount("lots", elem, math.MaxInt)
	assert.Error(t, err)
}

func TestRunRejectsOversizedReserve(t *testing.T) {
	args := os.Args
	defer func() { os.Args = args }()

	os.Args = []string{"alignbench", "-impl", "aligned", "-reserve", "8EiB"}
	assert.Equal(t, 2, run())
}
