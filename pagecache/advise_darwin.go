//go:build darwin

package pagecache

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Darwin has no posix_fadvise. Preloading goes through the F_RDADVISE
// fcntl, eviction through msync(MS_INVALIDATE) on a shared mapping.
func adviseRange(fd int, fileSize int64, advice Advice) error {
	if advice == AdviseWillNeed {
		return adviseReadAhead(fd, fileSize)
	}
	return adviseDrop(fd, fileSize)
}

func adviseReadAhead(fd int, fileSize int64) error {
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_RDAHEAD, 1); err != nil {
		return fmt.Errorf("fcntl F_RDAHEAD: %w", err)
	}
	// Radvisory_t counts in int32, larger files get the first 2GB hinted
	count := fileSize
	if count > math.MaxInt32 {
		count = math.MaxInt32
	}
	ra := unix.Radvisory_t{Offset: 0, Count: int32(count)}
	// FcntlInt takes an int where F_RDADVISE expects a pointer
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_RDADVISE, int(uintptr(unsafe.Pointer(&ra)))); err != nil {
		return fmt.Errorf("fcntl F_RDADVISE: %w", err)
	}
	return nil
}

func adviseDrop(fd int, fileSize int64) error {
	mmap, err := unix.Mmap(fd, 0, int(fileSize), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("mmap: %w", err)
	}
	defer unix.Munmap(mmap)
	if err := unix.Msync(mmap, unix.MS_INVALIDATE); err != nil {
		return fmt.Errorf("msync: %w", err)
	}
	if err := unix.Madvise(mmap, unix.MADV_DONTNEED); err != nil {
		return fmt.Errorf("madvise: %w", err)
	}
	return nil
}
