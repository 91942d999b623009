package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitgarden/pkg/activity"
	"github.com/matzehuels/gitgarden/pkg/config"
)

// fetchCommand creates the fetch command for exporting raw activity as JSON.
// The output can be rendered later with the render command, which makes the
// two halves of the pipeline independently scriptable.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		output     string
		configPath string
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [login]",
		Short: "Fetch GitHub activity and write it as JSON",
		Long: `Fetch GitHub activity and write it as JSON.

The output holds the login, years on GitHub, and per-repository commit and
star counts. Feed it to 'render' to grow the garden offline.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigAt(configPath)
			if err != nil {
				return err
			}
			login, err := resolveLogin(args, cfg)
			if err != nil {
				return err
			}

			source := c.newSource(login, noCache, refresh)
			summary, err := source.Fetch(cmd.Context(), login)
			if err != nil {
				return fmt.Errorf("fetch activity for %s: %w", login, err)
			}

			if output == "" {
				return activity.WriteJSON(summary, os.Stdout)
			}
			if err := activity.ExportJSON(summary, output); err != nil {
				return err
			}
			printSuccess("Fetched activity for @%s", login)
			printFile(output)
			printDetail("%d repositories · %d years", len(summary.Repos), summary.YearsActive)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output JSON file (stdout if empty)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/gitgarden/config.toml)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the activity response cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached activity data")

	return cmd
}

// loadConfigAt reads the config file at path, falling back to the default
// location when path is empty.
func loadConfigAt(path string) (config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, nil
		}
		path = p
	}
	return config.Load(path)
}
