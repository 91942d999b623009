// Package activity defines the user activity model the garden is grown from
// and the normalization applied to raw GitHub data before rendering.
package activity

import (
	"cmp"
	"slices"
	"time"
)

// DefaultMaxRepos is the number of branches a garden carries by default.
// Fewer, higher quality branches read better than a thicket.
const DefaultMaxRepos = 6

// RepoStat is one repository's contribution to the garden. It has no
// identity beyond its position in the summary.
type RepoStat struct {
	Name    string `json:"name"`
	Stars   int    `json:"stars"`
	Commits int    `json:"commits"`
}

// Summary is the normalized activity record consumed by the renderer.
// It is constructed once per run and never mutated afterwards.
type Summary struct {
	Login       string     `json:"login"`
	YearsActive int        `json:"years_active"`
	Repos       []RepoStat `json:"repos"`
}

// TotalCommits sums commit counts across all repositories.
func (s Summary) TotalCommits() int {
	total := 0
	for _, r := range s.Repos {
		total += r.Commits
	}
	return total
}

// NormalizeOptions control how a raw summary is trimmed for rendering.
type NormalizeOptions struct {
	// MaxRepos caps the repository list; 0 means DefaultMaxRepos.
	MaxRepos int

	// KeepEmpty keeps repositories with zero commits. The default policy
	// drops them: a branch with no growth is just a dead twig.
	KeepEmpty bool
}

// Normalize applies the rendering policy to a summary: floor years at 1,
// drop zero-commit repositories (unless KeepEmpty), sort by commit count
// descending so big branches sit lower on the trunk, and cap the list.
func Normalize(s Summary, opts NormalizeOptions) Summary {
	maxRepos := opts.MaxRepos
	if maxRepos <= 0 {
		maxRepos = DefaultMaxRepos
	}

	out := Summary{
		Login:       s.Login,
		YearsActive: max(1, s.YearsActive),
		Repos:       make([]RepoStat, 0, len(s.Repos)),
	}
	for _, r := range s.Repos {
		if r.Commits <= 0 && !opts.KeepEmpty {
			continue
		}
		out.Repos = append(out.Repos, RepoStat{
			Name:    r.Name,
			Stars:   max(0, r.Stars),
			Commits: max(0, r.Commits),
		})
	}

	slices.SortStableFunc(out.Repos, func(a, b RepoStat) int {
		return cmp.Compare(b.Commits, a.Commits)
	})

	if len(out.Repos) > maxRepos {
		out.Repos = out.Repos[:maxRepos]
	}
	return out
}

// YearsActive derives the age metric from an account creation date:
// calendar years touched, floored at 1.
func YearsActive(createdAt, now time.Time) int {
	return max(1, now.Year()-createdAt.Year()+1)
}

// Fallback is the summary used when the fetch fails: a sapling. The run
// still produces an image, at worst a minimal placeholder tree.
func Fallback(login string) Summary {
	return Summary{Login: login, YearsActive: 1}
}

// Sample returns static activity data for runs without credentials and for
// local experimentation with palettes and seeds.
func Sample(login string) Summary {
	return Summary{
		Login:       login,
		YearsActive: 3,
		Repos: []RepoStat{
			{Name: "Project-A", Stars: 12, Commits: 150},
			{Name: "Project-B", Stars: 5, Commits: 80},
			{Name: "Project-C", Stars: 20, Commits: 300},
			{Name: "Project-D", Stars: 2, Commits: 40},
			{Name: "Project-E", Stars: 0, Commits: 20},
		},
	}
}
