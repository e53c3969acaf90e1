package bouquet

import (
	"math"
	"slices"

	"github.com/venooo/dailybouquet/pkg/palette"
	"github.com/venooo/dailybouquet/pkg/seed"
	"github.com/venooo/dailybouquet/pkg/shapes"
	"github.com/venooo/dailybouquet/pkg/svg"
)

// Layers lists the scene layers in painter's order. Each is rendered as a
// <g id="layer-NAME"> child of the root.
var Layers = []string{
	"shadow",
	"foliage-back",
	"vase",
	"stems-inside",
	"water",
	"glass",
	"ribbon",
	"stems-above",
	"filler",
	"foliage-front",
	"blooms",
	"accents",
	"fauna",
}

// Foliage placement band.
const (
	FoliageCount = 14
	FoliageMinR  = 90.0
	FoliageMaxR  = 140.0
)

// Bloom layout.
const (
	MinBlooms = 22
	MaxBlooms = 31

	spiralStep  = 50.0
	spiralInset = 12.0
	goldenAngle = 2.39996
	spiralReach = 180.0
	outerRatio  = 0.65
)

// RibbonColors are the candidate bow colors.
var RibbonColors = []string{"#e63946", "#d4a373", "#bc6c25", "#9d4edd", "#e07be0"}

var butterflyColors = []string{"#f4a261", "#e9c46a"}

var sparkleColors = []string{"#ffffff", "#fff3b0", "#ffe0f0"}

const ladybugRed = "#e63946"

type tierMix struct {
	kinds    []shapes.Kind
	weights  []float64
	min, max float64
}

var (
	innerMix = tierMix{
		kinds:   []shapes.Kind{shapes.Rose, shapes.Peony, shapes.Tulip, shapes.Lily},
		weights: []float64{5, 3, 1, 1},
		min:     70,
		max:     115,
	}
	outerMix = tierMix{
		kinds:   []shapes.Kind{shapes.Daisy, shapes.Tulip, shapes.Carnation, shapes.Lily},
		weights: []float64{3, 2, 2, 1},
		min:     40,
		max:     65,
	}
)

type composer struct {
	seed   string
	cfg    config
	layout *seed.Source
	cx, cy float64
	layers map[string]*svg.Element
	out    *Bouquet
}

func newComposer(s string, cfg config) *composer {
	layout := seed.New(seed.Salt(s, "layout"))
	v := newVase(layout)
	c := &composer{
		seed:   s,
		cfg:    cfg,
		layout: layout,
		cx:     v.X,
		cy:     v.Top() - 30,
		layers: make(map[string]*svg.Element, len(Layers)),
		out: &Bouquet{
			Seed:    s,
			Palette: palette.Generate(s),
			Vase:    v,
		},
	}
	for _, name := range Layers {
		c.layers[name] = svg.Group(svg.A("id", "layer-"+name))
	}
	return c
}

func (c *composer) layer(name string) *svg.Element { return c.layers[name] }

func place(x, y, rot float64, el *svg.Element) *svg.Element {
	return svg.Group(svg.A("transform", svg.Transform(svg.Translate(x, y), rotation(rot)))).Add(el)
}

func rotation(deg float64) string {
	if deg == 0 {
		return ""
	}
	return svg.Rotate(deg)
}

func (c *composer) shadow() {
	v := c.out.Vase
	c.layer("shadow").Add(svg.New("ellipse",
		svg.A("cx", v.X), svg.A("cy", v.BaseY+5),
		svg.A("rx", v.Width/2+25), svg.A("ry", 18.0),
		svg.A("fill", "#000000"), svg.A("opacity", 0.12)))
}

// foliage fans 14 sprigs across the upper half-ellipse around the bloom
// centre, alternating between the back and front layers.
func (c *composer) foliage() {
	src := seed.New(seed.Salt(c.seed, "foliage"))
	pal := c.out.Palette
	back, front := c.layer("foliage-back"), c.layer("foliage-front")
	back.Set("filter", "url(#soft-shadow)")

	for i := range FoliageCount {
		kind, color := shapes.Eucalyptus, shapes.EucalyptusGreen
		if src.Chance(0.5) {
			kind, color = shapes.Fern, pal.Leaf
		}
		angle := math.Pi + float64(i)/FoliageCount*math.Pi
		x, y := foliagePoint(c.cx, c.cy, angle, src.Range(FoliageMinR, FoliageMaxR))
		p := Placement{
			Kind:     kind,
			X:        x,
			Y:        y,
			Scale:    src.Range(90, 140),
			Rotation: src.Jitter(60),
			Color:    color,
			Seed:     seed.Sub(c.seed, "foliage", i),
			Front:    i%2 == 1,
		}
		c.out.Foliage = append(c.out.Foliage, p)
		el := place(p.X, p.Y, p.Rotation, shapes.Generate(p.Kind, p.Seed, p.Color, p.Scale))
		if p.Front {
			front.Add(el)
		} else {
			back.Add(el)
		}
	}
}

// foliagePoint maps a sprig's polar position to scene coordinates. Radii
// outside the band are clamped onto it, and a non-finite result falls back to
// the point straight above the bloom centre at the minimum radius.
func foliagePoint(cx, cy, angle, r float64) (float64, float64) {
	if math.IsNaN(r) {
		r = FoliageMinR
	}
	r = min(max(r, FoliageMinR), FoliageMaxR)
	x := cx + math.Cos(angle)*r
	y := cy + math.Sin(angle)*r*0.6 + 70
	if !finite(x, y) {
		return cx, cy - FoliageMinR*0.6 + 70
	}
	return x, y
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (c *composer) vase() {
	v := c.out.Vase
	body := v.Body()
	c.layer("vase").Add(svg.New("path",
		svg.A("d", body), svg.A("fill", "url(#vase-glass)"), svg.A("stroke", "none")))
	c.layer("water").Add(svg.New("path",
		svg.A("d", v.Water()), svg.A("fill", "url(#water-grad)"), svg.A("clip-path", "url(#vase-clip)")))
	c.layer("glass").Add(
		svg.New("path",
			svg.A("d", body), svg.A("fill", "url(#vase-glass)"),
			svg.A("stroke", "#ffffff"), svg.A("stroke-opacity", 0.7), svg.A("stroke-width", 2.5),
			svg.A("filter", "url(#glass-specular)")),
		svg.New("path",
			svg.A("d", v.Highlight()), svg.A("fill", "none"),
			svg.A("stroke", "#ffffff"), svg.A("stroke-opacity", 0.5), svg.A("stroke-width", 4),
			svg.A("stroke-linecap", "round")),
	)
}

// blooms lays flowers on a golden-angle spiral. The spiral's inner ring gets
// large focal flowers and the outer ring smaller accent ones. Every bloom has
// a curved stem down to the vase neck and a straight one inside the glass.
func (c *composer) blooms() {
	src := c.layout
	pal := c.out.Palette
	v := c.out.Vase
	stemsAbove := c.layer("stems-above")
	stemsInside := c.layer("stems-inside")
	stemsInside.Set("clip-path", "url(#vase-clip)")

	count := MinBlooms + src.Intn(MaxBlooms-MinBlooms+1)
	els := make([]*svg.Element, 0, count)
	for i := range count {
		r := spiralInset + math.Sqrt(float64(i))*spiralStep
		theta := float64(i) * goldenAngle
		x := c.cx + r*math.Cos(theta)
		y := c.cy + r*math.Sin(theta)*0.75 + src.Jitter(35)

		tier, mix := Inner, innerMix
		if r/spiralReach > outerRatio {
			tier, mix = Outer, outerMix
		}
		p := Placement{
			Kind:  mix.kinds[seed.Weighted(src, mix.weights)],
			Tier:  tier,
			X:     x,
			Y:     y,
			Scale: src.Range(mix.min, mix.max),
			Color: seed.Pick(src, pal.FlowerColors),
			Seed:  seed.Sub(c.seed, "bloom", i),
		}

		neckX := v.X + src.Jitter(20)
		neckY := v.NeckY()
		ctrlX := x + src.Jitter(20)
		stemsAbove.Add(svg.New("path",
			svg.A("d", svg.NewPath().M(x, y).Q(ctrlX, (y+neckY)/2, neckX, neckY)),
			svg.A("stroke", pal.Stem), svg.A("stroke-width", 3), svg.A("fill", "none")))

		bottomX := v.X + src.Jitter(60)
		stemsInside.Add(svg.New("path",
			svg.A("d", svg.NewPath().M(neckX, neckY).L(bottomX, v.BaseY-10)),
			svg.A("stroke", pal.Stem), svg.A("stroke-width", 3), svg.A("fill", "none"), svg.A("opacity", 0.5)))

		p.Rotation = src.Jitter(60)
		c.out.Placements = append(c.out.Placements, p)
		els = append(els, place(p.X, p.Y, p.Rotation, shapes.Generate(p.Kind, p.Seed, p.Color, p.Scale)))
	}

	slices.Reverse(els)
	c.layer("blooms").Set("filter", "url(#soft-shadow)").Add(els...)
}

func (c *composer) filler() {
	src := c.layout
	layer := c.layer("filler")
	for i := range 5 {
		angle := src.Angle()
		r := src.Range(60, 140)
		x := c.cx + math.Cos(angle)*r
		y := c.cy + math.Sin(angle)*r*0.6
		n := 8 + src.Intn(8)
		layer.Add(place(x, y, 0, shapes.BabysBreath(seed.Sub(c.seed, "filler", i), 25, n)))
	}
}

func (c *composer) ribbon() {
	v := c.out.Vase
	color := seed.Pick(c.layout, RibbonColors)
	c.out.Ribbon = color
	c.layer("ribbon").Add(place(v.X, v.Top()+5, 0, shapes.Ribbon(seed.Salt(c.seed, "ribbon"), color, 1)))
}

// faunaCount skews toward one visitor; six is rare.
func faunaCount(f float64) int {
	return min(1+int(math.Floor(f*f*6)), 6)
}

func (c *composer) fauna() {
	src := c.layout
	layer := c.layer("fauna")

	for i := range faunaCount(src.Float64()) {
		p := Placement{
			Kind:  shapes.Butterfly,
			X:     c.cx + src.Jitter(220),
			Y:     c.cy + src.Jitter(160) - 60,
			Scale: 28,
			Color: seed.Pick(src, butterflyColors),
			Seed:  seed.Sub(c.seed, "butterfly", i),
		}
		c.out.Fauna = append(c.out.Fauna, p)
		layer.Add(place(p.X, p.Y, 0, shapes.GenerateButterfly(p.Seed, p.Color, p.Scale)))
	}

	for i := range faunaCount(src.Float64()) {
		r := src.Float64() * 110
		theta := src.Angle()
		p := Placement{
			Kind:  shapes.Ladybug,
			X:     c.cx + math.Cos(theta)*r,
			Y:     c.cy + math.Sin(theta)*r,
			Scale: 12,
			Color: ladybugRed,
			Seed:  seed.Sub(c.seed, "ladybug", i),
		}
		c.out.Fauna = append(c.out.Fauna, p)
		layer.Add(place(p.X, p.Y, 0, shapes.GenerateLadybug(p.Seed, p.Color, p.Scale)))
	}
}

// accents scatters dewdrops on bloom faces and sparkles around bloom rims.
// Every accent is drawn from the stream whether or not it is emitted, so
// disabling one kind leaves the other in place.
func (c *composer) accents() {
	src := seed.New(seed.Salt(c.seed, "accent"))
	blooms := c.out.Placements
	layer := c.layer("accents")

	dews := 6 + src.Intn(6)
	for i := range dews {
		p := seed.Pick(src, blooms)
		ox, oy := polar(src.Angle(), p.Scale*src.Range(0.2, 0.6))
		el := place(p.X+ox, p.Y+oy, 0, shapes.Dewdrop(seed.Sub(c.seed, "dew", i), src.Range(3, 6)))
		if c.cfg.dewdrops {
			layer.Add(el)
		}
	}

	sparkles := 4 + src.Intn(5)
	for i := range sparkles {
		p := seed.Pick(src, blooms)
		ox, oy := polar(src.Angle(), p.Scale*src.Range(0.8, 1.1))
		color := seed.Pick(src, sparkleColors)
		el := place(p.X+ox, p.Y+oy, 0, shapes.Sparkle(seed.Sub(c.seed, "sparkle", i), color, src.Range(5, 10)))
		if c.cfg.sparkles {
			layer.Add(el)
		}
	}
}

func polar(a, r float64) (float64, float64) {
	return math.Cos(a) * r, math.Sin(a) * r
}
