package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cachectl/pagecache"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Check if file pages are in cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runCheck(cmd.OutOrStdout(), args[0])
	},
}

func runCheck(w io.Writer, path string) error {
	stats, err := pagecache.Inspect(path, opts.PageSize)
	if err != nil {
		return err
	}
	if stats.Size == 0 {
		if opts.Verbose {
			fmt.Fprintln(w, "File is empty, nothing to check.")
		}
		return nil
	}

	if opts.ShowDetails {
		printPageDetails(w, stats.Resident)
	}
	printSummary(w, path, stats)
	if opts.Verbose {
		printStatus(w, stats)
	}
	return nil
}
