// Package cli implements the gitgarden command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gitgarden/pkg/activity"
	"github.com/matzehuels/gitgarden/pkg/buildinfo"
	"github.com/matzehuels/gitgarden/pkg/github"
	"github.com/matzehuels/gitgarden/pkg/httputil"
)

const (
	// appName is the application name used for directories and display.
	appName = "gitgarden"

	// cacheTTL is how long a fetched activity response stays fresh.
	cacheTTL = 24 * time.Hour
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gitgarden",
		Short:        "GitGarden grows an SVG garden from GitHub activity",
		Long:         `GitGarden turns a GitHub user's repositories into a hand-plotted SVG tree: years on GitHub thicken the trunk, commits lengthen branches and sprout leaves, stars bloom into flowers.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.growCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newSource builds the activity source for a login. Without a token it serves
// the bundled sample data so the tool works out of the box.
func (c *CLI) newSource(login string, noCache, refresh bool) activity.Source {
	token := resolveToken()
	if token == "" {
		printInfo("No GitHub token found, growing a sample garden")
		printDetail("Set GITHUB_TOKEN to fetch real activity for @%s", login)
		return activity.Static{Summary: activity.Sample(login)}
	}
	return &activity.GitHubSource{
		Client:  github.NewClient(token, newCache(noCache)),
		Refresh: refresh,
	}
}

// newCache opens the response cache, or returns nil when caching is disabled
// or the directory can't be determined.
func newCache(noCache bool) *httputil.Cache {
	if noCache {
		return nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil
	}
	cache, err := httputil.NewCache(dir, cacheTTL)
	if err != nil {
		return nil
	}
	return cache
}

// resolveToken finds a GitHub token in the environment. GITHUB_TOKEN wins
// over GH_TOKEN so Actions workflows behave as expected.
func resolveToken() string {
	if tok := os.Getenv("GITHUB_TOKEN"); tok != "" {
		return tok
	}
	return os.Getenv("GH_TOKEN")
}

// defaultLogin guesses the login when none was given. GITHUB_ACTOR is set in
// Actions runners, which is where gardens usually grow.
func defaultLogin() string {
	return os.Getenv("GITHUB_ACTOR")
}

// cacheDir returns the cache directory using XDG standard (~/.cache/gitgarden/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
