// Package github fetches user activity from the GitHub GraphQL API.
//
// A single query retrieves the account creation date and the most recently
// pushed repositories owned by the user, each with its star count and the
// commit count of its default branch. Responses are cached on disk so
// repeated runs don't spend API rate limit.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/matzehuels/gitgarden/pkg/httputil"
)

const (
	// httpTimeout bounds the single API call; the upstream default is none.
	httpTimeout = 10 * time.Second

	// maxRepositories is the first-page size of the repositories query.
	// Only the first page is fetched; older repositories don't grow leaves.
	maxRepositories = 20
)

// ErrUnavailable is returned when the API can't be reached or answers with
// an error. Callers are expected to fall back to placeholder data rather
// than abort.
var ErrUnavailable = errors.New("github unavailable")

// Activity is the raw per-user result of the GraphQL query, before any
// normalization.
type Activity struct {
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"created_at"`
	Repos     []Repo    `json:"repos"`
}

// Repo is one repository row of the query result. Commits is 0 when the
// repository has no default branch.
type Repo struct {
	Name    string `json:"name"`
	Stars   int    `json:"stars"`
	Commits int    `json:"commits"`
}

// Client queries the GitHub GraphQL endpoint with bearer authentication.
type Client struct {
	gql   *githubv4.Client
	cache *httputil.Cache
}

// NewClient creates a Client authenticated with token. Pass a nil cache to
// disable response caching.
func NewClient(token string, cache *httputil.Cache) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Timeout:   httpTimeout,
		Transport: &oauth2.Transport{Source: src},
	}
	return &Client{gql: githubv4.NewClient(httpClient), cache: cache}
}

// NewEnterpriseClient creates a Client against a custom GraphQL endpoint.
// Used by tests to point at an httptest server.
func NewEnterpriseClient(url string, httpClient *http.Client, cache *httputil.Cache) *Client {
	return &Client{gql: githubv4.NewEnterpriseClient(url, httpClient), cache: cache}
}

// userActivityQuery mirrors the GraphQL response shape. DefaultBranchRef
// stays a value struct: a null ref decodes to zero, which is exactly the
// "no commits" case.
type userActivityQuery struct {
	User struct {
		CreatedAt    githubv4.DateTime
		Repositories struct {
			Nodes []struct {
				Name             string
				StargazerCount   int
				DefaultBranchRef struct {
					Target struct {
						Commit struct {
							History struct {
								TotalCount int
							}
						} `graphql:"... on Commit"`
					}
				}
			}
		} `graphql:"repositories(first: 20, ownerAffiliations: OWNER, orderBy: {field: PUSHED_AT, direction: DESC})"`
	} `graphql:"user(login: $login)"`
}

// FetchActivity runs the activity query for login, serving from cache when
// possible. If refresh is true the cache is bypassed and rewritten.
func (c *Client) FetchActivity(ctx context.Context, login string, refresh bool) (*Activity, error) {
	key := "activity:" + login

	if c.cache != nil && !refresh {
		var cached Activity
		if ok, _ := c.cache.Get(key, &cached); ok {
			return &cached, nil
		}
	}

	a, err := c.queryActivity(ctx, login)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		_ = c.cache.Set(key, a)
	}
	return a, nil
}

func (c *Client) queryActivity(ctx context.Context, login string) (*Activity, error) {
	var q userActivityQuery
	variables := map[string]interface{}{
		"login": githubv4.String(login),
	}
	if err := c.gql.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	a := &Activity{
		Login:     login,
		CreatedAt: q.User.CreatedAt.Time,
		Repos:     make([]Repo, 0, len(q.User.Repositories.Nodes)),
	}
	for _, node := range q.User.Repositories.Nodes {
		a.Repos = append(a.Repos, Repo{
			Name:    node.Name,
			Stars:   node.StargazerCount,
			Commits: node.DefaultBranchRef.Target.Commit.History.TotalCount,
		})
	}
	return a, nil
}
