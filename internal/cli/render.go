package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitgarden/pkg/activity"
	"github.com/matzehuels/gitgarden/pkg/pipeline"
)

// renderCommand creates the render command for growing a garden from a
// previously fetched activity file, entirely offline.
func (c *CLI) renderCommand() *cobra.Command {
	var flags gardenFlags

	cmd := &cobra.Command{
		Use:   "render <activity.json>",
		Short: "Render a garden from a fetched activity file",
		Long: `Render a garden from a fetched activity file.

Takes the JSON produced by 'fetch' and grows the SVG without touching the
network. Useful for iterating on seeds and palettes against fixed data.

Example:
  gitgarden fetch octocat -o activity.json
  gitgarden render activity.json --seed 7 -o garden.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			summary, err := activity.ImportJSON(args[0])
			if err != nil {
				return fmt.Errorf("load activity %s: %w", args[0], err)
			}
			if summary.Login == "" {
				return fmt.Errorf("activity file %s has no login", args[0])
			}

			opts := flags.pipelineOptions(cfg, summary.Login)
			runner := pipeline.NewRunner(activity.Static{Summary: summary}, c.Logger)

			result, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := os.WriteFile(opts.Output, result.SVG, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.Output, err)
			}

			printSuccess("Garden rendered for @%s", result.Summary.Login)
			printFile(opts.Output)
			printDetail("%d branches · %d years · seed %d",
				len(result.Summary.Repos), result.Summary.YearsActive, result.Seed)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
