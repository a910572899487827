// Package projstat provides project source-code statistics collection.
//
// It walks a directory tree, analyzes each source file line by line with
// heuristic regular expressions, and aggregates counts of lines, tokens,
// letters, functions, classes and components across the project.
package projstat
