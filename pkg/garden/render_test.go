package garden

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/gitgarden/pkg/activity"
)

// parseSVG runs the document through an XML decoder and returns the root
// element attributes.
func parseSVG(t *testing.T, data []byte) map[string]string {
	t.Helper()

	dec := xml.NewDecoder(bytes.NewReader(data))
	attrs := map[string]string{}
	seenRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("invalid XML: %v", err)
		}
		if start, ok := tok.(xml.StartElement); ok && !seenRoot {
			if start.Name.Local != "svg" {
				t.Fatalf("root element = %q, want svg", start.Name.Local)
			}
			for _, a := range start.Attr {
				attrs[a.Name.Local] = a.Value
			}
			seenRoot = true
		}
	}
	if !seenRoot {
		t.Fatal("no root element found")
	}
	return attrs
}

func TestRender_WellFormed(t *testing.T) {
	s := activity.Sample("octocat")
	tree := Grow(s, Options{Seed: 42})
	data := Render(tree, s, Options{Seed: 42})

	attrs := parseSVG(t, data)
	if attrs["width"] != "800" || attrs["height"] != "600" {
		t.Errorf("canvas = %sx%s, want 800x600", attrs["width"], attrs["height"])
	}
	if attrs["viewBox"] != "0 0 800 600" {
		t.Errorf("viewBox = %q, want %q", attrs["viewBox"], "0 0 800 600")
	}
}

func TestRender_EmptySummary(t *testing.T) {
	// The fallback path renders a bare sapling; it must still be a valid
	// document.
	s := activity.Fallback("")
	tree := Grow(s, Options{Seed: 1})
	data := Render(tree, s, Options{Seed: 1})

	parseSVG(t, data)
	if !strings.Contains(string(data), "Contribution Garden") {
		t.Error("title caption missing")
	}
	if !strings.Contains(string(data), "Grown over 1 year<") {
		t.Error("subtitle should read 1 year, singular")
	}
}

func TestRender_Captions(t *testing.T) {
	s := activity.Summary{Login: "octocat", YearsActive: 3}
	tree := Grow(s, Options{Seed: 1})
	out := string(Render(tree, s, Options{Seed: 1}))

	if !strings.Contains(out, "@octocat") {
		t.Error("title should name the user")
	}
	if !strings.Contains(out, "Grown over 3 years") {
		t.Error("subtitle should state years active")
	}
}

func TestRender_EscapesLogin(t *testing.T) {
	s := activity.Summary{Login: `x<script>"y"`, YearsActive: 2}
	tree := Grow(s, Options{Seed: 1})
	data := Render(tree, s, Options{Seed: 1})

	parseSVG(t, data) // must still be well-formed
	if strings.Contains(string(data), "<script>") {
		t.Error("login was not escaped")
	}
}

func countCircles(scene *Scene, fill string) int {
	count := 0
	for _, e := range scene.Elements() {
		if c, ok := e.(Circle); ok && c.Fill == fill {
			count++
		}
	}
	return count
}

func TestComposeScene_FlowerGlyphs(t *testing.T) {
	p := DefaultPalette()

	s := activity.Summary{
		YearsActive: 1,
		Repos:       []activity.RepoStat{{Name: "r", Stars: 3, Commits: 10}},
	}
	tree := Grow(s, Options{Seed: 4})
	scene := ComposeScene(tree, Options{Seed: 4})

	// Each flower is a core plus a halo in the flower color.
	if got := countCircles(scene, p.Flower); got != 6 {
		t.Errorf("flower circles = %d, want 6 (3 glyphs, core+halo)", got)
	}
}

func TestComposeScene_NoFlowersWithoutStars(t *testing.T) {
	p := DefaultPalette()

	s := activity.Summary{
		YearsActive: 1,
		Repos:       []activity.RepoStat{{Name: "r", Stars: 0, Commits: 50}},
	}
	tree := Grow(s, Options{Seed: 4})
	scene := ComposeScene(tree, Options{Seed: 4})

	if got := countCircles(scene, p.Flower); got != 0 {
		t.Errorf("flower circles = %d, want 0 for unstarred repo", got)
	}
}

func TestComposeScene_LeafColorsFromPalette(t *testing.T) {
	p := DefaultPalette()
	greens := map[string]bool{}
	for _, g := range p.Greens {
		greens[g] = true
	}

	s := activity.Summary{
		YearsActive: 1,
		Repos:       []activity.RepoStat{{Name: "r", Commits: 200}},
	}
	tree := Grow(s, Options{Seed: 4})
	for _, leaf := range tree.Branches[0].Leaves {
		if !greens[leaf.Color] {
			t.Fatalf("leaf color %q not in palette", leaf.Color)
		}
	}
}

func TestScene_FinalizeIdempotent(t *testing.T) {
	s := activity.Sample("octocat")
	tree := Grow(s, Options{Seed: 42})
	scene := ComposeScene(tree, Options{Seed: 42})

	first := scene.Finalize()
	second := scene.Finalize()
	if !bytes.Equal(first, second) {
		t.Error("Finalize() should be repeatable without mutating the scene")
	}
}

func TestScene_PaintOrderPreserved(t *testing.T) {
	scene := NewScene(100, 100, DefaultPalette())
	for i := 0; i < 5; i++ {
		scene.Add(Circle{CX: float64(i), CY: 0, R: 1, Fill: fmt.Sprintf("#%06x", i), Opacity: 1})
	}

	elems := scene.Elements()
	if len(elems) != 5 {
		t.Fatalf("element count = %d, want 5", len(elems))
	}
	for i, e := range elems {
		c := e.(Circle)
		if c.CX != float64(i) {
			t.Errorf("Elements()[%d].CX = %v, want %v: append order not preserved", i, c.CX, i)
		}
	}
}

func TestRender_CustomCanvas(t *testing.T) {
	s := activity.Summary{Login: "octocat", YearsActive: 2}
	tree := Grow(s, Options{Width: 1200, Height: 900, Seed: 1})
	data := Render(tree, s, Options{Width: 1200, Height: 900, Seed: 1})

	attrs := parseSVG(t, data)
	if attrs["width"] != "1200" || attrs["height"] != "900" {
		t.Errorf("canvas = %sx%s, want 1200x900", attrs["width"], attrs["height"])
	}
}
