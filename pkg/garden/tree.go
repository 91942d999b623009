// Package garden grows a decorative tree from a user's activity summary and
// renders it as a self-contained SVG.
//
// The mapping is fixed: trunk thickness follows years active, each repository
// becomes one branch whose length follows its share of total commits, leaf
// clusters scale with commit volume, and starred repositories grow glowing
// flowers. All jitter comes from a seeded source, so the same summary and
// seed always produce the same image.
package garden

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/gitgarden/pkg/activity"
)

// Default canvas dimensions.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Geometry constants. Lengths are in SVG user units on the default canvas.
const (
	groundDepth    = 50.0 // ground line sits this far above the bottom edge
	trunkLength    = 160.0
	trunkBaseWidth = 25.0
	widthPerYear   = 2.0 // trunk thickening per year active
	trunkBendMax   = 30  // max horizontal trunk bend, either direction

	branchAttach   = 40.0 // first branch attaches this far below the apex
	branchStep     = 15.0 // vertical spacing between attachment points
	branchBaseLen  = 100.0
	branchLenScale = 150.0 // extra length for a repo owning all commits
	branchMaxLen   = 250.0
	branchSag      = 20.0 // control point lift, bows the branch
	angleJitter    = 20   // degrees either side of the base angle

	leafDivisor = 5 // commits per leaf
	minLeaves   = 10
	maxLeaves   = 40
	leafScatter = 35.0
	leafMinR    = 8
	leafMaxR    = 16

	maxFlowers    = 5
	flowerScatter = 20.0
	flowerCoreR   = 5.0
	flowerHaloR   = 9.0
)

// Options configure the growth and rendering of a garden.
type Options struct {
	// Width and Height of the canvas; zero means the 800x600 default.
	Width  float64
	Height float64

	// Seed drives all geometry jitter. The same seed reproduces the same
	// tree exactly.
	Seed uint64

	// Palette overrides individual colors; unset fields fall back to
	// DefaultPalette.
	Palette Palette
}

func (o *Options) setDefaults() {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	o.Palette = o.Palette.Merge(DefaultPalette())
}

// Tree is the computed geometry of a garden, ready for a sink. Keeping it
// separate from markup makes the arithmetic testable without parsing SVG.
type Tree struct {
	Trunk    Trunk
	Branches []Branch
}

// Trunk is a quadratic bezier from the ground to the apex.
type Trunk struct {
	BaseX, BaseY float64
	CtrlX, CtrlY float64
	TipX, TipY   float64
	Width        float64
}

// Branch carries one repository: a curved limb plus its leaves and flowers.
type Branch struct {
	Repo         activity.RepoStat
	BaseX, BaseY float64
	CtrlX, CtrlY float64
	TipX, TipY   float64
	Leaves       []Leaf
	Flowers      []Flower
}

// Leaf is a single filled circle in a branch-tip cluster.
type Leaf struct {
	X, Y, R float64
	Color   string
}

// Flower marks a star glyph position; the sink draws core and halo.
type Flower struct {
	X, Y float64
}

// Grow maps a summary to tree geometry. The summary is expected to be
// normalized already (capped and sorted); Grow renders whatever it is given,
// one branch per repository.
func Grow(s activity.Summary, opts Options) Tree {
	opts.setDefaults()
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	baseX := opts.Width / 2
	baseY := opts.Height - groundDepth

	bend := float64(randBetween(rng, -trunkBendMax, trunkBendMax))
	trunk := Trunk{
		BaseX: baseX,
		BaseY: baseY,
		CtrlX: baseX + bend/2,
		CtrlY: baseY - trunkLength/2,
		TipX:  baseX + bend,
		TipY:  baseY - trunkLength,
		Width: trunkBaseWidth + widthPerYear*float64(max(1, s.YearsActive)),
	}

	// Guard the share denominator; an all-zero summary still grows token
	// branches of base length.
	total := s.TotalCommits()
	if total == 0 {
		total = 1
	}

	attachY := trunk.TipY + branchAttach
	branches := make([]Branch, 0, len(s.Repos))
	for i, repo := range s.Repos {
		right := i%2 == 0
		dir := 1.0
		if !right {
			dir = -1.0
		}

		length := branchBaseLen + branchLenScale*float64(repo.Commits)/float64(total)
		length = min(length, branchMaxLen)

		angle := -45.0
		if !right {
			angle = -135.0
		}
		angle += float64(randBetween(rng, -angleJitter, angleJitter))

		tipX, tipY := endpoint(trunk.TipX, attachY, length, angle)
		b := Branch{
			Repo:  repo,
			BaseX: trunk.TipX,
			BaseY: attachY,
			CtrlX: trunk.TipX + dir*length/2,
			CtrlY: attachY - branchSag,
			TipX:  tipX,
			TipY:  tipY,
		}
		b.Leaves = growLeaves(rng, repo.Commits, tipX, tipY, opts.Palette.Greens)
		if repo.Stars > 0 {
			b.Flowers = growFlowers(rng, repo.Stars, tipX, tipY)
		}

		branches = append(branches, b)
		attachY -= branchStep
	}

	return Tree{Trunk: trunk, Branches: branches}
}

// growLeaves scatters a cluster around the branch tip. Count is sub-linear
// in commits and clamped on both ends so a quiet repo still shows foliage
// and a busy one doesn't become a blob.
func growLeaves(rng *rand.Rand, commits int, tipX, tipY float64, greens []string) []Leaf {
	count := min(maxLeaves, max(minLeaves, commits/leafDivisor))
	leaves := make([]Leaf, 0, count)
	for range count {
		leaves = append(leaves, Leaf{
			X:     tipX + uniform(rng, -leafScatter, leafScatter),
			Y:     tipY + uniform(rng, -leafScatter, leafScatter),
			R:     float64(randBetween(rng, leafMinR, leafMaxR)),
			Color: greens[rng.IntN(len(greens))],
		})
	}
	return leaves
}

func growFlowers(rng *rand.Rand, stars int, tipX, tipY float64) []Flower {
	count := min(maxFlowers, stars)
	flowers := make([]Flower, 0, count)
	for range count {
		flowers = append(flowers, Flower{
			X: tipX + uniform(rng, -flowerScatter, flowerScatter),
			Y: tipY + uniform(rng, -flowerScatter, flowerScatter),
		})
	}
	return flowers
}

// endpoint walks length units from (x, y) at angleDeg (SVG coordinates,
// negative angles point up).
func endpoint(x, y, length, angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return x + length*math.Cos(rad), y + length*math.Sin(rad)
}

// randBetween returns an integer in [lo, hi], inclusive on both ends.
func randBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
