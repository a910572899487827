package fsutil_test

import (
	"testing"

	"github.com/charlievieth/fastwalk"
	"github.com/stretchr/testify/assert"

	"github.com/idelchi/projstat/internal/fsutil"
)

func TestHasAnySuffix(t *testing.T) {
	t.Parallel()

	suffixes := []string{".ts", ".py"}

	assert.True(t, fsutil.HasAnySuffix("src/app.ts", suffixes))
	assert.True(t, fsutil.HasAnySuffix("util.py", suffixes))
	assert.False(t, fsutil.HasAnySuffix("notes.md", suffixes))
	assert.False(t, fsutil.HasAnySuffix("x.spy", suffixes))
	assert.False(t, fsutil.HasAnySuffix("app.ts", nil))
}

func TestWalkConfig(t *testing.T) {
	t.Parallel()

	conf := fsutil.WalkConfig()

	assert.False(t, conf.Follow)
	assert.Equal(t, 1, conf.NumWorkers)
	assert.Equal(t, fastwalk.SortLexical, conf.Sort)
}
