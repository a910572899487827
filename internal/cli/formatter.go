package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/idelchi/projstat/internal/gitinfo"
	"github.com/idelchi/projstat/internal/largest"
	"github.com/idelchi/projstat/internal/projstat"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	// sectionRule separates section headers from their rows.
	sectionRule = "========================================"
)

// header renders section titles, colored when stdout is a terminal.
//
//nolint:gochecknoglobals // Style constant
var header = color.New(color.FgCyan, color.Bold)

// Report combines walk statistics with repository metadata for JSON output.
type Report struct {
	// Stats are the aggregated source statistics.
	Stats *projstat.Stats `json:"stats"`
	// Git is the repository metadata.
	Git gitinfo.Info `json:"git"`
}

// printJSON writes any value as indented JSON.
func printJSON(value any, writer io.Writer) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintReportJSON outputs the combined report in JSON format.
func PrintReportJSON(stats *projstat.Stats, info gitinfo.Info, writer io.Writer) error {
	return printJSON(Report{Stats: stats, Git: info}, writer)
}

// PrintLargestJSON outputs the largest-files ranking in JSON format.
func PrintLargestJSON(records []largest.FileRecord, writer io.Writer) error {
	return printJSON(records, writer)
}

// orDash substitutes a dash for absent metadata values.
func orDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}

// PrintReport outputs the combined report in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintReport(stats *projstat.Stats, info gitinfo.Info, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	totals := stats.Totals

	header.Fprintln(w, "\nPROJECT CODE STATS")
	fmt.Fprintln(w, sectionRule)
	fmt.Fprintf(w, "Files:\t%d\n", totals.Files)
	fmt.Fprintf(w, "Lines:\t%d\n", totals.Lines)
	fmt.Fprintf(w, "Tokens:\t%d\n", totals.Tokens)
	fmt.Fprintf(w, "Letters:\t%d\n", totals.Letters)
	fmt.Fprintf(w, "Functions:\t%d\n", totals.Functions)
	fmt.Fprintf(w, "Classes:\t%d\n", totals.Classes)
	fmt.Fprintf(w, "Components:\t%d\n", totals.Components)

	if totals.Errors > 0 {
		fmt.Fprintf(w, "Read errors:\t%d\n", totals.Errors)
	}

	header.Fprintln(w, "\nGIT REPOSITORY INFO")
	fmt.Fprintln(w, sectionRule)
	fmt.Fprintf(w, "Repo name:\t%s\n", orDash(info.RepoName))
	fmt.Fprintf(w, "Total commits:\t%s\n", orDash(info.TotalCommits))
	fmt.Fprintf(w, "Latest commit date:\t%s\n", orDash(info.LatestCommitDate))
	fmt.Fprintf(w, "Latest commit author:\t%s\n", orDash(info.LatestCommitAuthor))
	fmt.Fprintf(w, "Current branch:\t%s\n", orDash(info.CurrentBranch))
	fmt.Fprintf(w, "Top contributor:\t%s\n", orDash(info.TopContributor))

	header.Fprintln(w, "\nEXTRA INSIGHTS")
	fmt.Fprintln(w, sectionRule)
	fmt.Fprintf(w, "Average tokens per line:\t%.2f\n", totals.TokensPerLine())
	fmt.Fprintf(w, "Average letters per token:\t%.2f\n", totals.LettersPerToken())

	fmt.Fprintf(w, "\nElapsed:\t%v\n", stats.Elapsed)

	return w.Flush()
}

// PrintLargest outputs the largest-files ranking in table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintLargest(records []largest.FileRecord, topN int, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	header.Fprintf(w, "\nTop %d largest files:\n", topN)
	fmt.Fprintln(w, sectionRule)

	for i, record := range records {
		fmt.Fprintf(w, "  %d) %s\t%s (%d bytes)\n",
			i+1, record.Path, humanize.IBytes(uint64(record.Size)), record.Size) //nolint:gosec // Size is never negative
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "  (no matching files)")
	}

	return w.Flush()
}
