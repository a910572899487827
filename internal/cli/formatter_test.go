package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/projstat/internal/gitinfo"
	"github.com/idelchi/projstat/internal/largest"
	"github.com/idelchi/projstat/internal/projstat"
)

func TestPrintReport_ZeroDenominators(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	stats := &projstat.Stats{Root: "."}

	require.NoError(t, PrintReport(stats, gitinfo.Info{}, &buf))

	out := buf.String()

	// Empty aggregates render as exactly 0.00, not NaN or an error.
	assert.Contains(t, out, "Average tokens per line:")
	assert.Contains(t, out, "Average letters per token:")
	assert.NotContains(t, out, "NaN")
	assert.Contains(t, out, "0.00")
}

func TestPrintReport_Sections(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	stats := &projstat.Stats{
		Root: ".",
		Totals: projstat.Totals{
			Files: 2, Lines: 10, Tokens: 30, Letters: 120,
			Functions: 3, Classes: 1, Components: 2,
		},
	}

	info := gitinfo.Info{
		RepoName:       "projstat",
		TotalCommits:   "41",
		CurrentBranch:  "main",
		TopContributor: "Alice",
	}

	require.NoError(t, PrintReport(stats, info, &buf))

	out := buf.String()

	assert.Contains(t, out, "Files:")
	assert.Contains(t, out, "projstat")
	assert.Contains(t, out, "Alice")

	// Absent metadata is rendered as a dash.
	assert.Contains(t, out, "Latest commit date:")
	assert.Contains(t, out, "-")

	// 30 tokens over 10 lines.
	assert.Contains(t, out, "3.00")
	// 120 letters over 30 tokens.
	assert.Contains(t, out, "4.00")
}

func TestPrintReportJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	stats := &projstat.Stats{
		Root:   "src",
		Totals: projstat.Totals{Files: 1, Lines: 7},
	}

	require.NoError(t, PrintReportJSON(stats, gitinfo.Info{CurrentBranch: "main"}, &buf))

	var report Report

	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, int64(7), report.Stats.Totals.Lines)
	assert.Equal(t, "main", report.Git.CurrentBranch)
}

func TestPrintLargest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	records := []largest.FileRecord{
		{Path: "src/app.ts", Size: 2048},
		{Path: "lib/util.ts", Size: 1024},
	}

	require.NoError(t, PrintLargest(records, 2, &buf))

	out := buf.String()

	assert.Contains(t, out, "1) src/app.ts")
	assert.Contains(t, out, "2) lib/util.ts")
	assert.Contains(t, out, "2048 bytes")
}

func TestPrintLargest_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, PrintLargest(nil, 5, &buf))

	assert.Contains(t, buf.String(), "no matching files")
}

func TestPrintLargestJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, PrintLargestJSON([]largest.FileRecord{{Path: "a.js", Size: 3}}, &buf))

	var records []largest.FileRecord

	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))

	require.Len(t, records, 1)
	assert.Equal(t, int64(3), records[0].Size)
}
