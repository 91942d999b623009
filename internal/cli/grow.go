package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitgarden/pkg/config"
	"github.com/matzehuels/gitgarden/pkg/pipeline"
)

// gardenFlags holds the flags shared by grow and render: everything that
// shapes the tree and where it lands.
type gardenFlags struct {
	output     string
	maxRepos   int
	keepEmpty  bool
	seed       uint64
	width      float64
	height     float64
	configPath string
}

func (g *gardenFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&g.output, "output", "o", "", "output SVG file (default "+pipeline.DefaultOutput+")")
	f.IntVar(&g.maxRepos, "max-repos", 0, "maximum repositories to grow branches for")
	f.BoolVar(&g.keepEmpty, "keep-empty", false, "keep repositories without commits")
	f.Uint64Var(&g.seed, "seed", 0, "random seed for reproducible gardens (0 picks one per run)")
	f.Float64Var(&g.width, "width", 0, "canvas width in pixels")
	f.Float64Var(&g.height, "height", 0, "canvas height in pixels")
	f.StringVar(&g.configPath, "config", "", "config file (default ~/.config/gitgarden/config.toml)")
}

// loadConfig reads the config file named by --config, or the default
// location when the flag is unset.
func (g *gardenFlags) loadConfig() (config.Config, error) {
	return loadConfigAt(g.configPath)
}

// pipelineOptions layers flags over config values. Flags win where both are
// set.
func (g *gardenFlags) pipelineOptions(cfg config.Config, login string) pipeline.Options {
	opts := pipeline.Options{
		Login:     login,
		MaxRepos:  g.maxRepos,
		KeepEmpty: g.keepEmpty || cfg.KeepEmpty,
		Width:     g.width,
		Height:    g.height,
		Seed:      g.seed,
		Output:    g.output,
		Palette:   cfg.Palette,
	}
	if opts.MaxRepos == 0 {
		opts.MaxRepos = cfg.MaxRepos
	}
	if opts.Seed == 0 {
		opts.Seed = cfg.Seed
	}
	if opts.Output == "" {
		opts.Output = cfg.Output
	}
	if opts.Output == "" {
		opts.Output = pipeline.DefaultOutput
	}
	return opts
}

// resolveLogin picks the login from the positional argument, the config
// file, or GITHUB_ACTOR, in that order.
func resolveLogin(args []string, cfg config.Config) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.Login != "" {
		return cfg.Login, nil
	}
	if actor := defaultLogin(); actor != "" {
		return actor, nil
	}
	return "", fmt.Errorf("no login given (pass one as an argument, set login in the config file, or set GITHUB_ACTOR)")
}

// growCommand creates the grow command, the main entry point: fetch activity
// and render the garden in one step.
func (c *CLI) growCommand() *cobra.Command {
	var (
		flags   gardenFlags
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "grow [login]",
		Short: "Grow a contribution garden for a GitHub user",
		Long: `Grow a contribution garden for a GitHub user.

Fetches the user's repositories from the GitHub GraphQL API and renders them
as an SVG tree: years on GitHub thicken the trunk, commits grow branches and
leaves, stars bloom into flowers.

Without a GITHUB_TOKEN (or GH_TOKEN) in the environment, a sample garden is
grown from bundled data so the tool works offline. If the API call fails for
any reason the run still succeeds with a minimal fallback garden.

Examples:
  gitgarden grow octocat
  gitgarden grow octocat -o garden.svg --seed 42
  gitgarden grow --max-repos 8 --keep-empty`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			login, err := resolveLogin(args, cfg)
			if err != nil {
				return err
			}

			opts := flags.pipelineOptions(cfg, login)
			source := c.newSource(login, noCache, refresh)
			runner := pipeline.NewRunner(source, c.Logger)

			ctx := cmd.Context()
			spinner := newSpinner(ctx, fmt.Sprintf("Growing garden for @%s...", login))
			spinner.Start()

			result, err := runner.Execute(ctx, opts)
			if err != nil {
				spinner.StopWithError("Garden failed to grow")
				return err
			}
			spinner.Stop()

			if err := os.WriteFile(opts.Output, result.SVG, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.Output, err)
			}

			if result.Fallback {
				printWarning("Could not fetch activity for @%s, grew a fallback garden", login)
			}
			printSuccess("Garden grown for @%s", result.Summary.Login)
			printFile(opts.Output)
			printDetail("%d branches · %d years · seed %d",
				len(result.Summary.Repos), result.Summary.YearsActive, result.Seed)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the activity response cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached activity data")

	return cmd
}
