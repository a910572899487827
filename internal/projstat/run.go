package projstat

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/idelchi/projstat/internal/fsutil"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// toSet builds a membership set from a slice of names.
func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}

// Run walks the directory tree at opt.Path and returns aggregated source
// statistics. Directories named in opt.ExcludeDirs are pruned before descent,
// so their contents are never visited. Files are analyzed when their path
// ends with one of opt.Extensions and their basename is not excluded.
//
// Per-file read failures are reported on stderr and contribute zero-valued
// stats; they never abort the walk. Progress updates are sent to progressHook
// if provided, once per analyzed file.
func Run(ctx context.Context, opt Options, progressHook func(files int64)) (*Stats, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	if len(opt.Extensions) == 0 {
		opt.Extensions = DefaultExtensions
	}

	if len(opt.ExcludeDirs) == 0 {
		opt.ExcludeDirs = DefaultExcludeDirs
	}

	if len(opt.ExcludeFiles) == 0 {
		opt.ExcludeFiles = DefaultExcludeFiles
	}

	excludeDirs := toSet(opt.ExcludeDirs)
	excludeFiles := toSet(opt.ExcludeFiles)

	log.printf("\n")
	log.printf("[debug]: include extensions:\n")

	for _, ext := range opt.Extensions {
		log.printf("[debug]:   - %s\n", ext)
	}

	log.printf("[debug]: exclude directories:\n")

	for _, dir := range opt.ExcludeDirs {
		log.printf("[debug]:   - %s\n", dir)
	}

	var totals Totals

	start := time.Now()

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(fsutil.WalkConfig(), opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.printf("[debug]: error accessing path %s: %v\n", path, err)

			return nil // Silently skip errors
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() {
			if path == opt.Path {
				return nil
			}

			if _, excluded := excludeDirs[d.Name()]; excluded {
				log.printf("[debug]: pruning directory: %s\n", filepath.ToSlash(path))

				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if !fsutil.HasAnySuffix(path, opt.Extensions) {
			return nil
		}

		if _, excluded := excludeFiles[d.Name()]; excluded {
			log.printf("[debug]: excluding file (basename filter): %s\n", filepath.ToSlash(path))

			return nil
		}

		stats, analyzeErr := AnalyzeFile(path)
		if analyzeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read %s: %v\n", path, analyzeErr)

			totals.Errors++
		}

		// Failed files still count, with zero-valued stats.
		totals.Add(stats)

		if progressHook != nil {
			progressHook(totals.Files)
		}

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return &Stats{
		Root:    filepath.ToSlash(opt.Path),
		Totals:  totals,
		Elapsed: time.Since(start),
	}, nil
}
