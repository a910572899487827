package projstat

import "time"

// FileStats holds the counters extracted from a single source file.
type FileStats struct {
	// Lines is the number of lines read.
	Lines int64 `json:"lines"`
	// Tokens is the number of word-character runs.
	Tokens int64 `json:"tokens"`
	// Letters is the cumulative character length of all tokens.
	Letters int64 `json:"letters"`
	// Functions is the number of function-like declarations.
	Functions int64 `json:"functions"`
	// Classes is the number of class-like declarations.
	Classes int64 `json:"classes"`
	// Components is the number of declarations with uppercase-first names.
	Components int64 `json:"components"`
}

// Totals accumulates FileStats across a walk.
type Totals struct {
	// Files is the number of analyzed files, failed reads included.
	Files int64 `json:"files"`
	// Lines is the total line count.
	Lines int64 `json:"lines"`
	// Tokens is the total token count.
	Tokens int64 `json:"tokens"`
	// Letters is the total letter count.
	Letters int64 `json:"letters"`
	// Functions is the total function count.
	Functions int64 `json:"functions"`
	// Classes is the total class count.
	Classes int64 `json:"classes"`
	// Components is the total component count.
	Components int64 `json:"components"`
	// Errors is the number of files whose read failed.
	Errors int64 `json:"errors"`
}

// Add merges a single file's stats into the totals and counts the file.
// Addition is field-wise and commutative, so merge order does not matter.
func (t *Totals) Add(fs FileStats) {
	t.Files++
	t.Lines += fs.Lines
	t.Tokens += fs.Tokens
	t.Letters += fs.Letters
	t.Functions += fs.Functions
	t.Classes += fs.Classes
	t.Components += fs.Components
}

// TokensPerLine returns the average token density, 0 when no lines were read.
func (t *Totals) TokensPerLine() float64 {
	if t.Lines == 0 {
		return 0
	}

	return float64(t.Tokens) / float64(t.Lines)
}

// LettersPerToken returns the average token length, 0 when no tokens were read.
func (t *Totals) LettersPerToken() float64 {
	if t.Tokens == 0 {
		return 0
	}

	return float64(t.Letters) / float64(t.Tokens)
}

// Stats holds the final result of a statistics run.
type Stats struct {
	// Root is the analyzed directory.
	Root string `json:"root"`
	// Totals are the aggregated per-file counters.
	Totals Totals `json:"totals"`
	// Elapsed is the total time taken for analysis.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a statistics run.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// Extensions are the file suffixes to include.
	Extensions []string
	// ExcludeDirs are directory basenames pruned from the walk.
	ExcludeDirs []string
	// ExcludeFiles are file basenames skipped during the walk.
	ExcludeFiles []string
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
}

// Default filter sets applied when the corresponding option is empty.
//
//nolint:gochecknoglobals // Config constants
var (
	// DefaultExtensions are the source file suffixes analyzed by default.
	DefaultExtensions = []string{".tsx", ".ts", ".css", ".py"}

	// DefaultExcludeDirs are directory names never descended into.
	DefaultExcludeDirs = []string{".venv", "node_modules", "__pycache__", ".git", "dist", "build"}

	// DefaultExcludeFiles are file basenames never analyzed.
	DefaultExcludeFiles = []string{"pyproject.toml", "__init__.py", "index.tsx", "index.ts"}
)
