// Package app contains the cachectl CLI commands.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"cachectl/pagecache"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"

	opts Options

	rootCmd = &cobra.Command{
		Use:   "cachectl",
		Short: "Page cache helper for benchmarking",
		Long: `cachectl inspects and manipulates OS page cache state for a file.

check reports per-page residency gathered with mincore(2). add and remove
issue cache advisories, posix_fadvise(2) on Linux. Advisories are hints
the kernel is free to service asynchronously: a successful add or remove
means the request was accepted, not that the cache state has already
changed. Benchmark harnesses that need the resulting state should run
check afterwards, or pass --confirm to add/remove.

Summary lines and confirmations go to standard output, diagnostics and
errors to standard error, so scripted callers can separate the two.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setLogLevel(); err != nil {
				return err
			}
			opts.PageSize = pagecache.PageSize()
			slog.Debug("Detected page size", "page_size", opts.PageSize)
			return nil
		},
	}
)

// Options carries the flags shared by every operation, plus the page size
// resolved once per invocation.
type Options struct {
	Verbose     bool
	ShowDetails bool
	PageSize    int64
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose status output")
	rootCmd.PersistentFlags().BoolVarP(&opts.ShowDetails, "details", "d", false, "per-page residency listing (check only)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log", "info", "log level (debug, info, warning)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the root command. Called by main.main.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
