package garden

// Palette holds every color the garden uses. All values are SVG fill/stroke
// strings (hex or named colors).
type Palette struct {
	SkyTop    string   `toml:"sky_top" json:"sky_top"`
	SkyBottom string   `toml:"sky_bottom" json:"sky_bottom"`
	Ground    string   `toml:"ground" json:"ground"`
	Grass     string   `toml:"grass" json:"grass"`
	Trunk     string   `toml:"trunk" json:"trunk"`
	Branch    string   `toml:"branch" json:"branch"`
	Greens    []string `toml:"greens" json:"greens"`
	Flower    string   `toml:"flower" json:"flower"`
	Title     string   `toml:"title" json:"title"`
	Subtitle  string   `toml:"subtitle" json:"subtitle"`
}

// DefaultPalette is the stock look: pale sky, earth browns, four greens from
// dark to light, and warm yellow flowers.
func DefaultPalette() Palette {
	return Palette{
		SkyTop:    "#e0f7fa",
		SkyBottom: "#ffffff",
		Ground:    "#5d4037",
		Grass:     "#76ff03",
		Trunk:     "#4e342e",
		Branch:    "#5d4037",
		Greens:    []string{"#2e7d32", "#43a047", "#66bb6a", "#a5d6a7"},
		Flower:    "#ffeb3b",
		Title:     "#3e2723",
		Subtitle:  "#5d4037",
	}
}

// Merge fills any unset field from fallback. Used to layer a user palette
// from the config file over the defaults.
func (p Palette) Merge(fallback Palette) Palette {
	if p.SkyTop == "" {
		p.SkyTop = fallback.SkyTop
	}
	if p.SkyBottom == "" {
		p.SkyBottom = fallback.SkyBottom
	}
	if p.Ground == "" {
		p.Ground = fallback.Ground
	}
	if p.Grass == "" {
		p.Grass = fallback.Grass
	}
	if p.Trunk == "" {
		p.Trunk = fallback.Trunk
	}
	if p.Branch == "" {
		p.Branch = fallback.Branch
	}
	if len(p.Greens) == 0 {
		p.Greens = fallback.Greens
	}
	if p.Flower == "" {
		p.Flower = fallback.Flower
	}
	if p.Title == "" {
		p.Title = fallback.Title
	}
	if p.Subtitle == "" {
		p.Subtitle = fallback.Subtitle
	}
	return p
}
