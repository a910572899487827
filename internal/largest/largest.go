// Package largest finds the largest files under a directory tree.
package largest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charlievieth/fastwalk"

	"github.com/idelchi/projstat/internal/fsutil"
)

// DefaultTopN is the number of files reported when none is requested.
const DefaultTopN = 5

// DefaultExtensions are the file suffixes ranked by default.
//
//nolint:gochecknoglobals // Config constant
var DefaultExtensions = []string{".js", ".ts", ".tsx", ".jsx", ".py"}

// FileRecord is a single ranked file.
type FileRecord struct {
	// Path is the file path.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
}

// Options configures a largest-files search.
type Options struct {
	// Path is the directory to search.
	Path string
	// TopN is the number of results to return.
	TopN int
	// Extensions are the file suffixes to include.
	Extensions []string
	// MinSize is the minimum file size in bytes.
	MinSize int64
	// Output represents output format (table or json).
	Output string
}

// Find walks the tree at opt.Path without directory exclusion, records the
// size of every regular file matching opt.Extensions, and returns the TopN
// largest, descending. Equal sizes are ordered by path — the order a
// sequential lexical walk encounters them in — so repeated runs return the
// same ranking regardless of visit order. Files whose size query fails are
// skipped silently.
func Find(ctx context.Context, opt Options) ([]FileRecord, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	if opt.TopN <= 0 {
		opt.TopN = DefaultTopN
	}

	if len(opt.Extensions) == 0 {
		opt.Extensions = DefaultExtensions
	}

	records := make([]FileRecord, 0)

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(fsutil.WalkConfig(), opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Silently skip errors
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		if !fsutil.HasAnySuffix(path, opt.Extensions) {
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // Unreadable files are skipped, not reported
		}

		if fileInfo.Size() < opt.MinSize {
			return nil
		}

		records = append(records, FileRecord{
			Path: filepath.ToSlash(path),
			Size: fileInfo.Size(),
		})

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	// Size descending with path as the secondary key: the walk's visit
	// order across sibling directories is not stable, so ties must not
	// depend on it.
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Size != records[j].Size {
			return records[i].Size > records[j].Size
		}

		return records[i].Path < records[j].Path
	})

	if len(records) > opt.TopN {
		records = records[:opt.TopN]
	}

	return records, nil
}
