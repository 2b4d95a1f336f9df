//go:build linux

package pagecache

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// adviseRange issues a posix_fadvise covering [0, fileSize).
// int posix_fadvise(int fd, off_t offset, off_t len, int advice);
func adviseRange(fd int, fileSize int64, advice Advice) error {
	mode := unix.FADV_WILLNEED
	if advice == AdviseDontNeed {
		mode = unix.FADV_DONTNEED
	}
	if err := unix.Fadvise(fd, 0, fileSize, mode); err != nil {
		return fmt.Errorf("fadvise: %w", err)
	}
	return nil
}
