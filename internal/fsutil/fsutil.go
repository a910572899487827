// Package fsutil provides helpers shared by the directory walks.
package fsutil

import (
	"strings"

	"github.com/charlievieth/fastwalk"
)

// HasAnySuffix reports whether path ends with one of the given suffixes.
func HasAnySuffix(path string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}

	return false
}

// WalkConfig returns the fastwalk configuration shared by all walks: a
// single worker, so callbacks run strictly sequentially and need no
// locking, with entries sorted lexically within each directory. The visit
// order across sibling directories is not guaranteed.
func WalkConfig() *fastwalk.Config {
	return &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
		Sort:       fastwalk.SortLexical,
	}
}
