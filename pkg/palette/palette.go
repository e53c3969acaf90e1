// Package palette derives a harmonious color set from a seed.
//
// All colors except the background come from one dominant hue, picked from a
// short curated list, with bounded random offsets in the OKLCH space. This
// keeps independent generations visually coherent.
package palette

import (
	"math"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/venooo/dailybouquet/pkg/seed"
)

const (
	// Background is the fixed off-white paper tone.
	Background = "#fdfbf7"

	// RibbonFallback replaces a ribbon color that could not be derived.
	RibbonFallback = "#ffaaaa"

	// greenHue is the centre of the stem and leaf hue band.
	greenHue = 130.0
)

// BaseHues are the curated dominant hues in degrees: red, rose, peach,
// purple, soft blue and cream.
var BaseHues = []float64{0, 340, 30, 260, 200, 60}

// Palette is the color set of one generation.
type Palette struct {
	FlowerColors []string `json:"flowerColors"`
	Stem         string   `json:"stemColor"`
	Leaf         string   `json:"leafColor"`
	Wrap         string   `json:"wrapColor"`
	Ribbon       string   `json:"ribbonColor"`
	Background   string   `json:"backgroundColor"`
	BaseHue      float64  `json:"baseHue"`
}

// Generate derives the palette for s.
func Generate(s string) Palette {
	src := seed.New(seed.Salt(s, "palette"))

	baseHue := seed.Pick(src, BaseHues)

	count := 3 + src.Intn(3)
	flowers := make([]string, 0, count)
	for range count {
		hueShift := src.Jitter(60)
		l := src.Range(0.6, 0.9)
		c := src.Range(0.1, 0.3)
		flowers = append(flowers, OKLCH(l, c, baseHue+hueShift, "#f4a6b7"))
	}

	stem := OKLCH(src.Range(0.3, 0.4), src.Range(0.1, 0.15), greenHue+src.Jitter(40), "#3a5a2c")
	leaf := OKLCH(src.Range(0.4, 0.5), src.Range(0.12, 0.17), greenHue+src.Jitter(40), "#4f7a3a")
	wrap := OKLCH(src.Range(0.9, 0.98), 0.02, 40, "#f5ede3")
	ribbon := OKLCH(src.Range(0.5, 0.7), 0.2, math.Mod(baseHue+180, 360), RibbonFallback)

	return Palette{
		FlowerColors: flowers,
		Stem:         stem,
		Leaf:         leaf,
		Wrap:         wrap,
		Ribbon:       ribbon,
		Background:   Background,
		BaseHue:      baseHue,
	}
}

// OKLCH converts lightness, chroma and hue (degrees) to a hex color, clamping
// out-of-gamut results into sRGB. Non-finite inputs or outputs return fallback.
func OKLCH(l, c, h float64, fallback string) string {
	if !finite(l, c, h) {
		return fallback
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	col := colorful.OkLch(l, c, h)
	if !finite(col.R, col.G, col.B) {
		return fallback
	}
	return col.Clamped().Hex()
}

// Shade shifts the OKLCH lightness of hex by delta, keeping chroma and hue.
// Unparseable input is returned unchanged.
func Shade(hex string, delta float64) string {
	col, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	l, c, h := col.OkLch()
	l = max(0, min(1, l+delta))
	return OKLCH(l, c, h, hex)
}

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// Valid reports whether s is a lowercase 6-digit hex color.
func Valid(s string) bool {
	return hexPattern.MatchString(s)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
