package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gitgarden/pkg/activity"
	"github.com/matzehuels/gitgarden/pkg/garden"
)

// ErrNoLogin is returned when Options.Login is empty.
var ErrNoLogin = errors.New("login is required")

// Runner executes the pipeline against an activity source.
//
// The Runner is stateless apart from the source and logger, so a single
// instance can serve concurrent runs with different options.
type Runner struct {
	Source activity.Source
	Logger *log.Logger
}

// NewRunner creates a runner. A nil source yields fallback gardens for every
// login; a nil logger falls back to the package default.
func NewRunner(source activity.Source, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Source: source, Logger: logger}
}

// Execute runs fetch → normalize → grow → render.
//
// Fetch failures are absorbed: the run continues with a fallback summary and
// Result.Fallback set, so callers always get a renderable document. Only
// invalid options or context cancellation produce an error.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Seed: opts.Seed}

	fetchStart := time.Now()
	summary, fallback := r.fetch(ctx, opts)
	result.Stats.FetchTime = time.Since(fetchStart)
	result.Fallback = fallback
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary = activity.Normalize(summary, opts.normalizeOptions())
	result.Summary = summary

	opts.Logger.Info("fetched activity",
		"login", summary.Login,
		"repos", len(summary.Repos),
		"years", summary.YearsActive,
		"duration", result.Stats.FetchTime)

	growStart := time.Now()
	tree := garden.Grow(summary, opts.gardenOptions())
	result.Stats.GrowTime = time.Since(growStart)

	opts.Logger.Info("grew tree",
		"branches", len(tree.Branches),
		"seed", opts.Seed,
		"duration", result.Stats.GrowTime)

	renderStart := time.Now()
	result.SVG = garden.Render(tree, summary, opts.gardenOptions())
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered garden",
		"bytes", len(result.SVG),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// fetch pulls activity from the source, degrading to the fallback summary on
// any failure.
func (r *Runner) fetch(ctx context.Context, opts Options) (activity.Summary, bool) {
	if r.Source == nil {
		return activity.Fallback(opts.Login), true
	}
	summary, err := r.Source.Fetch(ctx, opts.Login)
	if err != nil {
		opts.Logger.Warn("activity fetch failed, growing a fallback garden",
			"login", opts.Login, "err", err)
		return activity.Fallback(opts.Login), true
	}
	return summary, false
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
