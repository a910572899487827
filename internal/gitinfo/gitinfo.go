// Package gitinfo collects repository metadata from the git command line.
package gitinfo

import (
	"bufio"
	"context"
	"os/exec"
	"path/filepath"
	"strings"
)

// Info holds repository metadata. An empty field means the underlying query
// failed or the directory is not a git repository.
type Info struct {
	// RepoName is the basename of the repository toplevel.
	RepoName string `json:"repo_name,omitempty"`
	// TotalCommits is the commit count across all refs.
	TotalCommits string `json:"total_commits,omitempty"`
	// LatestCommitDate is the committer date of the latest commit.
	LatestCommitDate string `json:"latest_commit_date,omitempty"`
	// LatestCommitAuthor is the author of the latest commit.
	LatestCommitAuthor string `json:"latest_commit_author,omitempty"`
	// CurrentBranch is the checked-out branch name.
	CurrentBranch string `json:"current_branch,omitempty"`
	// TopContributor is the author with the most commits across all refs.
	TopContributor string `json:"top_contributor,omitempty"`
}

// Collector queries git metadata for a single directory.
type Collector struct {
	dir string
}

// New creates a Collector rooted at dir.
func New(dir string) *Collector {
	return &Collector{dir: dir}
}

// run executes a single git query and returns its trimmed output.
// A non-zero exit or missing git binary yields the empty string.
func (c *Collector) run(ctx context.Context, args ...string) string {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.dir

	output, err := cmd.Output()
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(output))
}

// Collect issues the metadata queries. Each query is independent: a failing
// query leaves its field empty and does not affect the others.
func (c *Collector) Collect(ctx context.Context) Info {
	info := Info{
		TotalCommits:       c.run(ctx, "rev-list", "--all", "--count"),
		LatestCommitDate:   c.run(ctx, "log", "-1", "--format=%cd"),
		LatestCommitAuthor: c.run(ctx, "log", "-1", "--format=%an"),
		CurrentBranch:      c.run(ctx, "rev-parse", "--abbrev-ref", "HEAD"),
	}

	if toplevel := c.run(ctx, "rev-parse", "--show-toplevel"); toplevel != "" {
		info.RepoName = filepath.Base(toplevel)
	}

	// Author list instead of a shortlog shell pipeline; the ranking happens
	// here rather than in awk.
	if authors := c.run(ctx, "log", "--all", "--format=%an"); authors != "" {
		info.TopContributor = topAuthor(authors)
	}

	return info
}

// topAuthor returns the most frequent line in a newline-separated author
// list. Ties go to whichever author reached the winning count first.
func topAuthor(authors string) string {
	counts := make(map[string]int)

	var (
		best      string
		bestCount int
	)

	scanner := bufio.NewScanner(strings.NewReader(authors))
	for scanner.Scan() {
		author := strings.TrimSpace(scanner.Text())
		if author == "" {
			continue
		}

		counts[author]++

		if counts[author] > bestCount {
			best = author
			bestCount = counts[author]
		}
	}

	return best
}
