// Package pipeline runs the fetch → normalize → grow → render chain that
// turns a GitHub login into an SVG garden.
//
// The stages are usable independently, but most callers go through a Runner:
//
//	runner := pipeline.NewRunner(source, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Login: "octocat"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("garden.svg", result.SVG, 0o644)
//
// A fetch failure never aborts the run; the runner degrades to a fallback
// summary and still produces a document.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gitgarden/pkg/activity"
	"github.com/matzehuels/gitgarden/pkg/garden"
)

const (
	// DefaultOutput is the SVG path used when none is given.
	DefaultOutput = "github_tree.svg"

	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = garden.DefaultWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = garden.DefaultHeight
)

// Options configures a pipeline run.
type Options struct {
	// Login is the GitHub username. Required.
	Login string `json:"login"`

	// MaxRepos caps the branch count. Zero means the standard cap.
	MaxRepos int `json:"max_repos,omitempty"`

	// KeepEmpty keeps repositories without commits on the default branch.
	KeepEmpty bool `json:"keep_empty,omitempty"`

	// Width and Height size the canvas. Zero means the 800x600 default.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Seed fixes the geometry jitter. Zero picks a fresh seed per run so
	// repeated invocations grow visibly different trees.
	Seed uint64 `json:"seed,omitempty"`

	// Output is the destination path recorded for callers that write the
	// document to disk.
	Output string `json:"output,omitempty"`

	// Palette overrides the stock colors; unset fields keep the defaults.
	Palette garden.Palette `json:"palette,omitempty"`

	// Refresh bypasses any cached activity data.
	Refresh bool `json:"refresh,omitempty"`

	// Logger receives stage progress. Defaults to a discard logger.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result holds the outputs of a pipeline run.
type Result struct {
	// Summary is the normalized activity the tree was grown from.
	Summary activity.Summary

	// SVG is the finalized document.
	SVG []byte

	// Seed is the seed actually used, useful for reproducing a run that
	// started from Seed zero.
	Seed uint64

	// Fallback reports that fetching failed and the summary is the
	// degraded one-year empty garden.
	Fallback bool

	// Stats contains per-stage timings.
	Stats Stats
}

// Stats contains pipeline execution timings.
type Stats struct {
	FetchTime  time.Duration
	GrowTime   time.Duration
	RenderTime time.Duration
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Login == "" {
		return ErrNoLogin
	}
	if o.MaxRepos == 0 {
		o.MaxRepos = activity.DefaultMaxRepos
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	o.Palette = o.Palette.Merge(garden.DefaultPalette())
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

func (o *Options) gardenOptions() garden.Options {
	return garden.Options{
		Width:   o.Width,
		Height:  o.Height,
		Seed:    o.Seed,
		Palette: o.Palette,
	}
}

func (o *Options) normalizeOptions() activity.NormalizeOptions {
	return activity.NormalizeOptions{
		MaxRepos:  o.MaxRepos,
		KeepEmpty: o.KeepEmpty,
	}
}
