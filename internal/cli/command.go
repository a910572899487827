package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/projstat/internal/largest"
	"github.com/idelchi/projstat/internal/projstat"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// allowedOutputs are the supported output formats.
//
//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json"}

// validateOutput rejects unknown output formats.
func validateOutput(output string) error {
	if !slices.Contains(allowedOutputs, output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", output, allowedOutputs)
	}

	return nil
}

// rootCommand builds the statistics reporter command.
func (c CLI) rootCommand() *cobra.Command {
	var options projstat.Options

	cmd := &cobra.Command{
		Use:   "projstat [path]",
		Short: "Report source-code statistics and repository metadata",
		Long: heredoc.Doc(`
			projstat walks a directory tree, counts lines, tokens, letters and
			heuristically detected function/class/component declarations in source
			files, and combines the totals with git repository metadata.

			Detection is line-oriented pattern matching, not parsing: a line counts
			as a function when it starts with a function keyword or is a const/let/var
			arrow-function assignment, and as a class when it starts with an optional
			export qualifier followed by the class keyword. Declarations whose name
			starts with an uppercase letter also count as components.

			Directories such as node_modules or .git are pruned entirely and never
			visited. Unreadable files are reported on stderr and contribute zero
			counts without aborting the run.
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				options.Path = args[0]
			} else {
				options.Path = "."
			}

			if err := validateOutput(options.Output); err != nil {
				return err
			}

			return statsLogic(cmd.Context(), options)
		},
	}

	cmd.Flags().StringSliceVarP(
		&options.Extensions,
		"ext",
		"x",
		projstat.DefaultExtensions,
		"File suffixes to analyze (e.g., .go,.py)",
	)
	cmd.Flags().StringSliceVarP(
		&options.ExcludeDirs,
		"exclude-dir",
		"e",
		projstat.DefaultExcludeDirs,
		"Directory names to prune from the walk",
	)
	cmd.Flags().StringSliceVar(
		&options.ExcludeFiles,
		"exclude-file",
		projstat.DefaultExcludeFiles,
		"File basenames to skip",
	)
	cmd.Flags().StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	cmd.Flags().BoolVar(&options.Debug, "debug", false, "Enable debug output")

	cmd.Flags().SortFlags = false

	return cmd
}

// largestCommand builds the largest-files subcommand.
func (c CLI) largestCommand() *cobra.Command {
	var (
		options    largest.Options
		minSizeStr string
	)

	cmd := &cobra.Command{
		Use:   "largest [path]",
		Short: "List the largest files under a directory",
		Long: heredoc.Doc(`
			largest walks the whole tree (no directory exclusion), collects the size
			of every file matching the target suffixes, and prints the top N by size.
			Files whose size cannot be read are skipped silently. Equal sizes keep
			their encounter order.
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				options.Path = args[0]
			} else {
				options.Path = "."
			}

			if err := validateOutput(options.Output); err != nil {
				return err
			}

			size, err := humanize.ParseBytes(minSizeStr)
			if err != nil {
				return fmt.Errorf("invalid min-size: %w", err)
			}

			options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe

			return largestLogic(cmd.Context(), options)
		},
	}

	cmd.Flags().IntVarP(&options.TopN, "top", "t", largest.DefaultTopN, "Number of top files to display")
	cmd.Flags().StringSliceVarP(
		&options.Extensions,
		"ext",
		"x",
		largest.DefaultExtensions,
		"File suffixes to include (e.g., .ts,.py)",
	)
	cmd.Flags().StringVar(&minSizeStr, "min-size", "0KB", "Minimum file size (e.g., 1KB)")
	cmd.Flags().StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")

	cmd.Flags().SortFlags = false

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	root := c.rootCommand()
	root.AddCommand(c.largestCommand())

	return root.Execute()
}
