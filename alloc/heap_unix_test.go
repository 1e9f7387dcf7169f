//go:build unix

package alloc

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestMemalignStatus(t *testing.T) {
	var p unsafe.Pointer

	assert.Equal(t, unix.EINVAL, memalign(&p, 12, 64))
	assert.Nil(t, p)

	assert.Equal(t, unix.ENOMEM, memalign(&p, 64, math.MaxInt))
	assert.Nil(t, p)

	require.Equal(t, unix.Errno(0), memalign(&p, 128, 64))
	require.NotNil(t, p)
	assert.True(t, IsAligned(p, 128))
	free(p)
}

func TestMemalignPageAlignment(t *testing.T) {
	page := uintptr(unix.Getpagesize())

	var p unsafe.Pointer
	require.Equal(t, unix.Errno(0), memalign(&p, page*4, 3*page))
	assert.True(t, IsAligned(p, page*4))

	h := headerOf(p)
	assert.Equal(t, uintptr(3)*page, h.size)
	free(p)
}
