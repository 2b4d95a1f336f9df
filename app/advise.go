package app

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"cachectl/pagecache"
)

var (
	confirmFlag bool
	settleFlag  time.Duration

	addCmd = &cobra.Command{
		Use:   "add FILE",
		Short: "Add file to page cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runAdvise(cmd.OutOrStdout(), args[0], pagecache.AdviseWillNeed)
		},
	}

	removeCmd = &cobra.Command{
		Use:   "remove FILE",
		Short: "Remove file from page cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runAdvise(cmd.OutOrStdout(), args[0], pagecache.AdviseDontNeed)
		},
	}
)

func init() {
	for _, cmd := range []*cobra.Command{addCmd, removeCmd} {
		cmd.Flags().BoolVar(&confirmFlag, "confirm", false, "re-run the residency query after the advisory and report the result")
		cmd.Flags().DurationVar(&settleFlag, "settle", 100*time.Millisecond, "delay before the --confirm residency query")
	}
}

func runAdvise(w io.Writer, path string, advice pagecache.Advice) error {
	size, err := pagecache.Advise(path, advice)
	if err != nil {
		return err
	}
	if size == 0 {
		if opts.Verbose {
			fmt.Fprintln(w, "File is empty, no operation performed.")
		}
		return nil
	}

	action, preposition := "Added", "to"
	if advice == pagecache.AdviseDontNeed {
		action, preposition = "Removed", "from"
	}
	if opts.Verbose {
		fmt.Fprintf(w, "%s %s %s page cache (%d bytes)\n", action, path, preposition, size)
	} else {
		fmt.Fprintf(w, "%s %s cache: %s\n", action, preposition, path)
	}

	if !confirmFlag {
		return nil
	}
	// The kernel may service the advisory after the call returns, give
	// it a moment before measuring.
	time.Sleep(settleFlag)
	stats, err := pagecache.Inspect(path, opts.PageSize)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Resident: %d/%d pages (%s%%)\n", stats.PageCached, stats.PageCount, stats.CachedPct())
	return nil
}
