package activity

import (
	"context"
	"time"

	"github.com/matzehuels/gitgarden/pkg/github"
)

// Source produces a raw (un-normalized) activity summary for a login.
type Source interface {
	Fetch(ctx context.Context, login string) (Summary, error)
}

// GitHubSource fetches activity from the GitHub GraphQL API.
type GitHubSource struct {
	Client  *github.Client
	Refresh bool

	// Now is the clock used to derive years active; nil means time.Now.
	Now func() time.Time
}

// Fetch runs the activity query and converts the result into a Summary.
func (s *GitHubSource) Fetch(ctx context.Context, login string) (Summary, error) {
	a, err := s.Client.FetchActivity(ctx, login, s.Refresh)
	if err != nil {
		return Summary{}, err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	out := Summary{
		Login:       login,
		YearsActive: YearsActive(a.CreatedAt, now()),
		Repos:       make([]RepoStat, 0, len(a.Repos)),
	}
	for _, r := range a.Repos {
		out.Repos = append(out.Repos, RepoStat{
			Name:    r.Name,
			Stars:   r.Stars,
			Commits: r.Commits,
		})
	}
	return out, nil
}

// Static serves a fixed summary. Used for the credential-less path and in
// tests; it never touches the network.
type Static struct {
	Summary Summary
}

// Fetch returns the fixed summary, substituting login when the summary
// doesn't carry one.
func (s Static) Fetch(_ context.Context, login string) (Summary, error) {
	out := s.Summary
	if out.Login == "" {
		out.Login = login
	}
	return out, nil
}
