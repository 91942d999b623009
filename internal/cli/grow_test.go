package cli

import (
	"os"
	"testing"

	"github.com/matzehuels/gitgarden/pkg/config"
	"github.com/matzehuels/gitgarden/pkg/pipeline"
)

func TestResolveLogin(t *testing.T) {
	t.Setenv("GITHUB_ACTOR", "")
	os.Unsetenv("GITHUB_ACTOR")

	tests := []struct {
		name    string
		args    []string
		cfg     config.Config
		actor   string
		want    string
		wantErr bool
	}{
		{name: "argument wins", args: []string{"octocat"}, cfg: config.Config{Login: "cfguser"}, want: "octocat"},
		{name: "config fallback", cfg: config.Config{Login: "cfguser"}, want: "cfguser"},
		{name: "actor fallback", actor: "ci-bot", want: "ci-bot"},
		{name: "nothing set", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.actor != "" {
				t.Setenv("GITHUB_ACTOR", tt.actor)
			}
			got, err := resolveLogin(tt.args, tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("resolveLogin() should fail with no login anywhere")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveLogin() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveLogin() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGardenFlags_PipelineOptions(t *testing.T) {
	flags := gardenFlags{maxRepos: 8, seed: 7}
	cfg := config.Config{MaxRepos: 3, Seed: 99, Output: "from-config.svg"}

	opts := flags.pipelineOptions(cfg, "octocat")

	if opts.Login != "octocat" {
		t.Errorf("Login = %q, want %q", opts.Login, "octocat")
	}
	if opts.MaxRepos != 8 {
		t.Errorf("MaxRepos = %d, flag should win over config", opts.MaxRepos)
	}
	if opts.Seed != 7 {
		t.Errorf("Seed = %d, flag should win over config", opts.Seed)
	}
	if opts.Output != "from-config.svg" {
		t.Errorf("Output = %q, config should fill unset flag", opts.Output)
	}
}

func TestGardenFlags_PipelineOptionsDefaults(t *testing.T) {
	flags := gardenFlags{}
	opts := flags.pipelineOptions(config.Config{}, "octocat")
	if opts.Output != pipeline.DefaultOutput {
		t.Errorf("Output = %q, want %q", opts.Output, pipeline.DefaultOutput)
	}
}
