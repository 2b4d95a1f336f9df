//go:build linux

// Package meminfo reports system-wide page cache usage.
package meminfo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CachedPages returns the number of file-backed pages in the system page
// cache, read from /proc/meminfo.
func CachedPages(pageSize int64) (int64, error) {
	file, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0, err
	}
	defer file.Close()
	return parseCachedPages(file, pageSize)
}

func parseCachedPages(r io.Reader, pageSize int64) (int64, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := scanner.Text()
		// Looking for 'Cached:         236072800 kB'
		name, rest, found := strings.Cut(text, ":")
		if !found || name != "Cached" {
			continue
		}

		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		value, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing cached memory: %w", err)
		}

		// meminfo provides memory in kB, convert to pages
		return value * 1024 / pageSize, nil
	}

	return 0, fmt.Errorf("cached memory not found")
}
