package app

import (
	"fmt"
	"io"
	"log/slog"

	"cachectl/meminfo"
	"cachectl/pagecache"
	"cachectl/utils"
)

// printPageDetails prints one line per page in ascending index order
func printPageDetails(w io.Writer, resident []bool) {
	for i, in := range resident {
		if in {
			fmt.Fprintf(w, "Page %d: IN CACHE\n", i)
		} else {
			fmt.Fprintf(w, "Page %d: NOT IN CACHE\n", i)
		}
	}
}

func printSummary(w io.Writer, path string, stats pagecache.Stats) {
	fmt.Fprintf(w, "File:     %s\n", path)
	fmt.Fprintf(w, "Size:     %d bytes (%d pages)\n", stats.Size, stats.PageCount)
	fmt.Fprintf(w, "Cached:   %d/%d pages (%s%%)\n", stats.PageCached, stats.PageCount, stats.CachedPct())
}

// printStatus emits the verbose classification plus the system-wide cache
// context. A meminfo failure only costs the context line, never the run.
func printStatus(w io.Writer, stats pagecache.Stats) {
	fmt.Fprintf(w, "Status:   %s\n", stats.Status())

	cachedPages, err := meminfo.CachedPages(opts.PageSize)
	if err != nil {
		slog.Warn("Couldn't get system cached memory", "error", err)
		return
	}
	fmt.Fprintf(w, "System:   %d pages cached (%s)\n", cachedPages, utils.FormatPages(cachedPages, opts.PageSize))
}
