package garden

import (
	"fmt"

	"github.com/matzehuels/gitgarden/pkg/activity"
)

// Render paints a grown tree plus captions into a finalized SVG document.
func Render(tree Tree, summary activity.Summary, opts Options) []byte {
	opts.setDefaults()
	scene := ComposeScene(tree, opts)
	addCaptions(scene, summary, opts)
	return scene.Finalize()
}

// ComposeScene builds the scene for a tree without captions or
// serialization. Exposed so tests and future sinks can inspect the
// primitives. Paint order is back to front: ground, trunk, branches,
// leaves, flowers.
func ComposeScene(tree Tree, opts Options) *Scene {
	opts.setDefaults()
	p := opts.Palette
	scene := NewScene(opts.Width, opts.Height, p)

	w, h := opts.Width, opts.Height
	groundY := h - groundDepth

	// Gently curved ground with a grass accent along the crest.
	groundD := fmt.Sprintf("M0,%.1f Q%.1f,%.1f %.1f,%.1f L%.1f,%.1f L0,%.1f Z",
		groundY, w/2, groundY-20, w, groundY, w, h, h)
	scene.Add(Path{D: groundD, Stroke: p.Trunk, Width: 0, Fill: p.Ground, Opacity: 1})
	crestD := fmt.Sprintf("M0,%.1f Q%.1f,%.1f %.1f,%.1f", groundY, w/2, groundY-20, w, groundY)
	scene.Add(Path{D: crestD, Stroke: p.Grass, Width: 4, Opacity: 0.35})

	t := tree.Trunk
	scene.Add(Path{
		D:       quad(t.BaseX, t.BaseY, t.CtrlX, t.CtrlY, t.TipX, t.TipY),
		Stroke:  p.Trunk,
		Width:   t.Width,
		Opacity: 1,
	})

	for _, b := range tree.Branches {
		scene.Add(Path{
			D:       quad(b.BaseX, b.BaseY, b.CtrlX, b.CtrlY, b.TipX, b.TipY),
			Stroke:  p.Branch,
			Width:   8,
			Opacity: 1,
		})
		for _, leaf := range b.Leaves {
			scene.Add(Circle{CX: leaf.X, CY: leaf.Y, R: leaf.R, Fill: leaf.Color, Opacity: 0.7})
		}
		for _, f := range b.Flowers {
			scene.Add(Circle{CX: f.X, CY: f.Y, R: flowerCoreR, Fill: p.Flower, Opacity: 1})
			scene.Add(Circle{CX: f.X, CY: f.Y, R: flowerHaloR, Fill: p.Flower, Opacity: 0.3})
		}
	}

	return scene
}

// addCaptions appends the title and subtitle beneath the tree.
func addCaptions(scene *Scene, summary activity.Summary, opts Options) {
	p := opts.Palette
	w, h := opts.Width, opts.Height

	title := "Contribution Garden"
	if summary.Login != "" {
		title = fmt.Sprintf("@%s's Contribution Garden", summary.Login)
	}
	scene.Add(Text{X: w / 2, Y: h - 20, Content: title, Size: 20, Fill: p.Title})

	unit := "years"
	if summary.YearsActive == 1 {
		unit = "year"
	}
	subtitle := fmt.Sprintf("Grown over %d %s", summary.YearsActive, unit)
	scene.Add(Text{X: w / 2, Y: h - 5, Content: subtitle, Size: 14, Fill: p.Subtitle})
}

func quad(x1, y1, cx, cy, x2, y2 float64) string {
	return fmt.Sprintf("M%.1f,%.1f Q%.1f,%.1f %.1f,%.1f", x1, y1, cx, cy, x2, y2)
}
