//go:build unix

package alloc

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// memalign stores a block of size bytes aligned to alignment in *out.
// It returns 0 on success, EINVAL when alignment is not a power of two or
// not a multiple of the pointer size, and ENOMEM when the request cannot
// be mapped.
func memalign(out *unsafe.Pointer, alignment, size uintptr) unix.Errno {
	if !validAlignment(alignment) {
		return unix.EINVAL
	}
	length, ok := blockLength(size, alignment)
	if !ok {
		return unix.ENOMEM
	}

	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANON | unix.MAP_PRIVATE

	data, err := unix.Mmap(-1, 0, int(length), prot, flags)
	if err != nil {
		var errno unix.Errno
		if errors.As(err, &errno) {
			return errno
		}
		return unix.ENOMEM
	}

	*out = placeBlock(unsafe.Pointer(unsafe.SliceData(data)), uintptr(len(data)), size, alignment)
	return 0
}

// free releases a block returned by memalign.
func free(p unsafe.Pointer) {
	h := headerOf(p)
	data := unsafe.Slice((*byte)(h.base), h.length)
	if err := unix.Munmap(data); err != nil {
		panic(errors.Wrapf(err, "munmap block at %p", p))
	}
}

func platformAlloc(size, alignment uintptr) (unsafe.Pointer, error) {
	var p unsafe.Pointer
	if errno := memalign(&p, alignment, size); errno != 0 {
		return nil, errno
	}
	return p, nil
}

func platformFree(p unsafe.Pointer) {
	free(p)
}
