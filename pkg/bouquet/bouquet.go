package bouquet

import (
	"strings"

	"github.com/venooo/dailybouquet/pkg/palette"
	"github.com/venooo/dailybouquet/pkg/shapes"
	"github.com/venooo/dailybouquet/pkg/svg"
)

// Canvas geometry.
const (
	CanvasWidth  = 600.0
	CanvasHeight = 800.0
)

// Box is an axis-aligned rectangle in scene units.
type Box struct {
	X, Y, Width, Height float64
}

// String formats the box as a viewBox value.
func (b Box) String() string {
	return svg.Num(b.X) + " " + svg.Num(b.Y) + " " + svg.Num(b.Width) + " " + svg.Num(b.Height)
}

// Contains reports whether (x, y) lies inside the box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// SafeBox encloses everything a scene can draw.
var SafeBox = Box{X: -80, Y: -80, Width: 760, Height: 900}

// ViewBox is the nominal canvas.
var ViewBox = Box{Width: CanvasWidth, Height: CanvasHeight}

// Tier is the ring of the spiral a bloom sits in.
type Tier int

const (
	Inner Tier = iota + 1
	Outer
)

func (t Tier) String() string {
	switch t {
	case Inner:
		return "inner"
	case Outer:
		return "outer"
	default:
		return ""
	}
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Placement records where one shape was drawn. Tier is set for blooms only.
type Placement struct {
	Kind     shapes.Kind `json:"kind"`
	Tier     Tier        `json:"tier,omitempty"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Scale    float64     `json:"scale"`
	Rotation float64     `json:"rotation"`
	Color    string      `json:"color"`
	Seed     string      `json:"seed"`
	Front    bool        `json:"front,omitempty"`
}

// Bouquet is one generated arrangement.
type Bouquet struct {
	SVG        string          `json:"-"`
	Seed       string          `json:"seed"`
	Palette    palette.Palette `json:"palette"`
	Vase       Vase            `json:"vase"`
	Ribbon     string          `json:"ribbonColor"`
	Placements []Placement     `json:"placements"`
	Foliage    []Placement     `json:"foliage,omitempty"`
	Fauna      []Placement     `json:"fauna"`

	// Scene is the tree SVG was serialized from.
	Scene *svg.Element `json:"-"`
}

// Option configures [Generate].
type Option func(*config)

type config struct {
	foliage  bool
	sparkles bool
	dewdrops bool
}

// WithoutFoliage omits the fern and eucalyptus passes.
func WithoutFoliage() Option { return func(c *config) { c.foliage = false } }

// WithoutSparkles omits sparkle accents.
func WithoutSparkles() Option { return func(c *config) { c.sparkles = false } }

// WithoutDewdrops omits dewdrop accents.
func WithoutDewdrops() Option { return func(c *config) { c.dewdrops = false } }

func newConfig(opts ...Option) config {
	c := config{foliage: true, sparkles: true, dewdrops: true}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Generate composes the bouquet for s.
func Generate(s string, opts ...Option) *Bouquet {
	c := newComposer(s, newConfig(opts...))
	c.shadow()
	if c.cfg.foliage {
		c.foliage()
	}
	c.vase()
	c.blooms()
	c.filler()
	c.ribbon()
	c.fauna()
	c.accents()

	b := c.out
	b.Scene = c.scene()
	b.SVG = b.Scene.String()
	return b
}

// Key returns a stable description of the options, for cache keys.
func Key(opts ...Option) string {
	c := newConfig(opts...)
	var off []string
	if !c.foliage {
		off = append(off, "no-foliage")
	}
	if !c.sparkles {
		off = append(off, "no-sparkles")
	}
	if !c.dewdrops {
		off = append(off, "no-dewdrops")
	}
	if len(off) == 0 {
		return "default"
	}
	return strings.Join(off, ",")
}
