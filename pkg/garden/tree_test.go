package garden

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/gitgarden/pkg/activity"
)

func TestGrow_TrunkWidth(t *testing.T) {
	tests := []struct {
		years int
		want  float64
	}{
		{1, 27},
		{5, 35},
		{10, 45},
	}
	for _, tt := range tests {
		tree := Grow(activity.Summary{YearsActive: tt.years}, Options{Seed: 1})
		if tree.Trunk.Width != tt.want {
			t.Errorf("Grow(years=%d).Trunk.Width = %v, want %v", tt.years, tree.Trunk.Width, tt.want)
		}
	}
}

func TestGrow_TrunkWidthMonotonic(t *testing.T) {
	young := Grow(activity.Summary{YearsActive: 1}, Options{Seed: 1})
	old := Grow(activity.Summary{YearsActive: 5}, Options{Seed: 1})
	if old.Trunk.Width <= young.Trunk.Width {
		t.Errorf("trunk width not increasing: years=5 gives %v, years=1 gives %v",
			old.Trunk.Width, young.Trunk.Width)
	}
}

func TestGrow_BranchPerRepo(t *testing.T) {
	s := activity.Summary{
		YearsActive: 2,
		Repos: []activity.RepoStat{
			{Name: "a", Commits: 100},
			{Name: "b", Commits: 50},
			{Name: "c", Commits: 25},
		},
	}
	tree := Grow(s, Options{Seed: 7})
	if len(tree.Branches) != 3 {
		t.Fatalf("branch count = %d, want 3", len(tree.Branches))
	}
	for i, b := range tree.Branches {
		if b.Repo.Name != s.Repos[i].Name {
			t.Errorf("Branches[%d].Repo.Name = %q, want %q", i, b.Repo.Name, s.Repos[i].Name)
		}
	}
}

func TestGrow_BranchesAlternateSides(t *testing.T) {
	s := activity.Summary{
		YearsActive: 1,
		Repos: []activity.RepoStat{
			{Name: "right", Commits: 10},
			{Name: "left", Commits: 10},
		},
	}
	tree := Grow(s, Options{Seed: 3})

	// Base angle is -45 deg (right) or -135 deg (left) with +-20 deg of
	// jitter, so the horizontal direction is unambiguous.
	if tree.Branches[0].TipX <= tree.Branches[0].BaseX {
		t.Errorf("first branch should grow right: tip %.1f, base %.1f",
			tree.Branches[0].TipX, tree.Branches[0].BaseX)
	}
	if tree.Branches[1].TipX >= tree.Branches[1].BaseX {
		t.Errorf("second branch should grow left: tip %.1f, base %.1f",
			tree.Branches[1].TipX, tree.Branches[1].BaseX)
	}

	// Both point upward.
	for i, b := range tree.Branches {
		if b.TipY >= b.BaseY {
			t.Errorf("Branches[%d] should grow upward: tip %.1f, base %.1f", i, b.TipY, b.BaseY)
		}
	}
}

func TestGrow_BranchesSpreadAlongTrunk(t *testing.T) {
	s := activity.Summary{YearsActive: 1}
	for range 4 {
		s.Repos = append(s.Repos, activity.RepoStat{Commits: 10})
	}
	tree := Grow(s, Options{Seed: 9})

	for i := 1; i < len(tree.Branches); i++ {
		if tree.Branches[i].BaseY >= tree.Branches[i-1].BaseY {
			t.Errorf("attachment points should climb the trunk: Branches[%d].BaseY = %.1f, Branches[%d].BaseY = %.1f",
				i, tree.Branches[i].BaseY, i-1, tree.Branches[i-1].BaseY)
		}
	}
}

func branchLength(b Branch) float64 {
	return math.Hypot(b.TipX-b.BaseX, b.TipY-b.BaseY)
}

func TestGrow_BranchLengthClamped(t *testing.T) {
	// A repo owning all commits would get base+scale = 250, exactly the cap.
	s := activity.Summary{
		YearsActive: 1,
		Repos:       []activity.RepoStat{{Name: "only", Commits: 1000}},
	}
	tree := Grow(s, Options{Seed: 5})

	got := branchLength(tree.Branches[0])
	if math.Abs(got-branchMaxLen) > 0.5 {
		t.Errorf("branch length = %.2f, want %.2f", got, branchMaxLen)
	}
}

func TestGrow_AllZeroCommits(t *testing.T) {
	// Degenerate case: total commits 0 must not divide by zero; every
	// branch falls back to the base length.
	s := activity.Summary{
		YearsActive: 1,
		Repos: []activity.RepoStat{
			{Name: "a", Commits: 0},
			{Name: "b", Commits: 0},
		},
	}
	tree := Grow(s, Options{Seed: 11})

	if len(tree.Branches) != 2 {
		t.Fatalf("branch count = %d, want 2", len(tree.Branches))
	}
	for i, b := range tree.Branches {
		length := branchLength(b)
		if math.IsNaN(length) || math.IsInf(length, 0) {
			t.Fatalf("Branches[%d] length is not finite: %v", i, length)
		}
		if math.Abs(length-branchBaseLen) > 0.5 {
			t.Errorf("Branches[%d] length = %.2f, want %.2f", i, length, branchBaseLen)
		}
		if len(b.Leaves) != minLeaves {
			t.Errorf("Branches[%d] leaf count = %d, want token cluster of %d", i, len(b.Leaves), minLeaves)
		}
	}
}

func TestGrow_LeafCounts(t *testing.T) {
	tests := []struct {
		commits int
		want    int
	}{
		{0, minLeaves},
		{20, minLeaves}, // 20/5 = 4, clamped up
		{150, 30},
		{300, maxLeaves}, // 300/5 = 60, clamped down
	}
	for _, tt := range tests {
		s := activity.Summary{
			YearsActive: 1,
			Repos:       []activity.RepoStat{{Name: "r", Commits: tt.commits}},
		}
		tree := Grow(s, Options{Seed: 2})
		if got := len(tree.Branches[0].Leaves); got != tt.want {
			t.Errorf("commits=%d: leaf count = %d, want %d", tt.commits, got, tt.want)
		}
	}
}

func TestGrow_FlowerCounts(t *testing.T) {
	tests := []struct {
		stars int
		want  int
	}{
		{0, 0},
		{1, 1},
		{3, 3},
		{5, 5},
		{12, maxFlowers},
	}
	for _, tt := range tests {
		s := activity.Summary{
			YearsActive: 1,
			Repos:       []activity.RepoStat{{Name: "r", Stars: tt.stars, Commits: 10}},
		}
		tree := Grow(s, Options{Seed: 2})
		if got := len(tree.Branches[0].Flowers); got != tt.want {
			t.Errorf("stars=%d: flower count = %d, want %d", tt.stars, got, tt.want)
		}
	}
}

func TestGrow_MockScenario(t *testing.T) {
	s := activity.Summary{
		Login:       "octocat",
		YearsActive: 3,
		Repos: []activity.RepoStat{
			{Name: "Project-A", Stars: 12, Commits: 150},
			{Name: "Project-C", Stars: 20, Commits: 300},
		},
	}
	tree := Grow(s, Options{Seed: 42})

	if len(tree.Branches) != 2 {
		t.Fatalf("branch count = %d, want 2", len(tree.Branches))
	}

	var a, c Branch
	for _, b := range tree.Branches {
		switch b.Repo.Name {
		case "Project-A":
			a = b
		case "Project-C":
			c = b
		}
	}

	if len(a.Flowers) == 0 || len(c.Flowers) == 0 {
		t.Errorf("both starred repos should flower: A=%d, C=%d", len(a.Flowers), len(c.Flowers))
	}
	if len(c.Leaves) < len(a.Leaves) {
		t.Errorf("leaf count should be monotonic in commits: C=%d < A=%d", len(c.Leaves), len(a.Leaves))
	}
	if branchLength(c) <= branchLength(a) {
		t.Errorf("branch length should follow commit share: C=%.1f, A=%.1f", branchLength(c), branchLength(a))
	}
}

func TestGrow_Deterministic(t *testing.T) {
	s := activity.Sample("octocat")

	first := Grow(s, Options{Seed: 42})
	second := Grow(s, Options{Seed: 42})
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed should grow identical trees")
	}

	other := Grow(s, Options{Seed: 43})
	if reflect.DeepEqual(first, other) {
		t.Error("different seeds should grow different trees")
	}
}

func TestGrow_TrunkBendBounded(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		tree := Grow(activity.Summary{YearsActive: 1}, Options{Seed: seed})
		bend := tree.Trunk.TipX - tree.Trunk.BaseX
		if bend < -trunkBendMax || bend > trunkBendMax {
			t.Fatalf("seed %d: trunk bend %.1f outside [%d, %d]", seed, bend, -trunkBendMax, trunkBendMax)
		}
	}
}
