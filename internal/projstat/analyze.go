package projstat

import (
	"bufio"
	"errors"
	"io"
	"os"
	"regexp"
	"strings"
)

// tokenRe matches a maximal run of word characters.
var tokenRe = regexp.MustCompile(`\w+`)

// AnalyzeFile reads path line by line and returns its counters.
//
// Invalid UTF-8 bytes are dropped before matching, so an undecodable line
// still contributes to the line count. Line length is unbounded, so
// single-line minified sources count like any other file. On a read failure
// the returned stats are zero-valued and the error describes the failure;
// callers are expected to log it and continue.
func AnalyzeFile(path string) (FileStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return FileStats{}, err
	}
	defer file.Close()

	var stats FileStats

	reader := bufio.NewReader(file)

	for {
		line, err := reader.ReadString('\n')

		if line != "" {
			countLine(&stats, strings.ToValidUTF8(line, ""))
		}

		if errors.Is(err, io.EOF) {
			return stats, nil
		}

		if err != nil {
			return FileStats{}, err
		}
	}
}

// countLine folds a single line into the stats.
func countLine(stats *FileStats, line string) {
	stats.Lines++

	for _, token := range tokenRe.FindAllString(line, -1) {
		stats.Tokens++
		stats.Letters += int64(len(token))
	}

	class := ClassifyLine(line)

	switch class.Kind {
	case KindFunction:
		stats.Functions++
	case KindClass:
		stats.Classes++
	case KindNone:
	}

	if class.IsComponent() {
		stats.Components++
	}
}
