//go:build darwin

// Package meminfo reports system-wide page cache usage.
package meminfo

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"time"
)

var fileBackedPattern = regexp.MustCompile(`File-backed pages: +([0-9]+)\.`)

// CachedPages returns the number of file-backed pages reported by
// vm_stat. vm_stat already counts in machine pages so pageSize is unused.
func CachedPages(_ int64) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "vm_stat")
	out, err := cmd.StdoutPipe()
	if err != nil {
		return 0, err
	}
	if err := cmd.Start(); err != nil {
		return 0, err
	}

	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		res := fileBackedPattern.FindStringSubmatch(scanner.Text())
		if res == nil {
			continue
		}
		return strconv.ParseInt(res[1], 10, 64)
	}

	return 0, fmt.Errorf("cached memory not found")
}
