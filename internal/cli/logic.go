package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/projstat/internal/gitinfo"
	"github.com/idelchi/projstat/internal/largest"
	"github.com/idelchi/projstat/internal/projstat"
)

// progressInterval limits how often the scanning status line is redrawn.
const progressInterval = 500 * time.Millisecond

// statsLogic runs the statistics walk, collects git metadata and prints
// the combined report.
func statsLogic(ctx context.Context, options projstat.Options) error {
	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(files int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		var last time.Time

		progressHook = func(files int64) {
			if time.Since(last) < progressInterval {
				return
			}

			last = time.Now()

			fmt.Fprintf(os.Stderr, "\r\033[2KScanning… %d files\r", files)
		}
	}

	stats, err := projstat.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	info := gitinfo.New(options.Path).Collect(ctx)

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintReportJSON(stats, info, os.Stdout)
	case "table":
		return PrintReport(stats, info, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}

// largestLogic runs the largest-files search and prints the ranking.
func largestLogic(ctx context.Context, options largest.Options) error {
	records, err := largest.Find(ctx, options)
	if err != nil {
		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintLargestJSON(records, os.Stdout)
	case "table":
		return PrintLargest(records, options.TopN, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
