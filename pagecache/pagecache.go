// Package pagecache queries and manipulates OS page cache state for
// individual files.
package pagecache

import (
	"fmt"
	"os"
	"strconv"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Stats stores page cache residency information for a single file.
type Stats struct {
	Size       int64
	PageCached int
	PageCount  int

	// Resident holds one entry per page of the file, true if the page
	// was resident in the page cache at query time.
	Resident []bool
}

// Cache residency classifications reported in verbose output.
const (
	StatusFull    = "Fully cached"
	StatusNone    = "Not cached"
	StatusPartial = "Partially cached"
)

// Ratio returns the cached percentage, 0 when the file has no pages.
func (s *Stats) Ratio() float64 {
	if s.PageCount == 0 {
		return 0
	}
	return 100 * float64(s.PageCached) / float64(s.PageCount)
}

// CachedPct returns the cached percentage with one decimal
func (s *Stats) CachedPct() string {
	return strconv.FormatFloat(s.Ratio(), 'f', 1, 64)
}

// Status classifies residency on exact page counts. The percentage is
// rounded for display only: a file one page short of fully resident can
// print 100.0% and still classify as partially cached.
func (s *Stats) Status() string {
	switch {
	case s.PageCached == s.PageCount:
		return StatusFull
	case s.PageCached == 0:
		return StatusNone
	default:
		return StatusPartial
	}
}

// PageSize returns the system page size, falling back to 4096 if the
// runtime reports a nonsensical value.
func PageSize() int64 {
	pageSize := int64(os.Getpagesize())
	if pageSize <= 0 {
		return 4096
	}
	return pageSize
}

// Inspect reports per-page cache residency for the file at path.
// A zero-length file yields zero-valued stats without mapping anything.
func Inspect(path string, pageSize int64) (Stats, error) {
	var stats Stats
	file, err := os.Open(path)
	if err != nil {
		return stats, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	fileInfo, err := file.Stat()
	if err != nil {
		return stats, fmt.Errorf("stat %s: %w", path, err)
	}
	stats.Size = fileInfo.Size()
	if stats.Size == 0 {
		return stats, nil
	}

	stats.Resident, err = fileMincore(int(file.Fd()), stats.Size, pageSize)
	if err != nil {
		return stats, fmt.Errorf("inspecting %s: %w", path, err)
	}
	stats.PageCount = len(stats.Resident)
	for _, resident := range stats.Resident {
		if resident {
			stats.PageCached++
		}
	}
	return stats, nil
}

// fileMincore maps the file and queries residency for every page in a
// single mincore call. The mapping is released before returning on all
// paths.
func fileMincore(fd int, fileSize int64, pageSize int64) ([]bool, error) {
	mmap, err := unix.Mmap(fd, 0, int(fileSize), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	defer unix.Munmap(mmap)

	// From mincore doc: the vec argument must point to an array
	// containing at least (length+PAGE_SIZE-1) / PAGE_SIZE bytes
	numPages := (fileSize + pageSize - 1) / pageSize
	vec := make([]byte, numPages)

	mmapPtr := uintptr(unsafe.Pointer(&mmap[0]))
	vecPtr := uintptr(unsafe.Pointer(&vec[0]))
	ret, _, errno := syscall.Syscall(syscall.SYS_MINCORE, mmapPtr, uintptr(fileSize), vecPtr)
	if ret != 0 {
		return nil, fmt.Errorf("mincore: %w", errno)
	}

	resident := make([]bool, numPages)
	for i, v := range vec {
		// The least significant bit of each byte is set if the
		// corresponding page is resident, higher bits are reserved
		resident[i] = v&0x1 > 0
	}
	return resident, nil
}

// Advice selects the cache advisory to issue.
type Advice int

const (
	// AdviseWillNeed asks the kernel to preload the file's pages.
	AdviseWillNeed Advice = iota
	// AdviseDontNeed asks the kernel to drop the file's cached pages.
	AdviseDontNeed
)

// Advise issues a cache advisory covering the whole file and returns the
// advised byte length, 0 for a zero-length file where no syscall is made.
//
// This is a best-effort, non-blocking hint: success means the kernel
// accepted the request, not that the cache state has changed by the time
// the call returns. The kernel may service the advisory asynchronously or
// ignore it under memory pressure. Callers that need the resulting state
// must run Inspect afterwards, possibly more than once.
func Advise(path string, advice Advice) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	fileInfo, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	fileSize := fileInfo.Size()
	if fileSize == 0 {
		return 0, nil
	}

	if err := adviseRange(int(file.Fd()), fileSize, advice); err != nil {
		return 0, fmt.Errorf("advising %s: %w", path, err)
	}
	return fileSize, nil
}
