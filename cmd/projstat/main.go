// Command projstat reports source-code statistics and the largest files
// for a project directory.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/projstat/internal/cli"
)

// version is the build version, set via ldflags.
var version = "dev" //nolint:gochecknoglobals // Set at build time

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
