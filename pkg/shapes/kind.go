package shapes

import (
	"math"
	"strings"

	"github.com/venooo/dailybouquet/pkg/svg"
)

// MaxExtent bounds the radius of a bloom fragment as a multiple of its scale.
const MaxExtent = 1.25

// Kind identifies a shape generator.
type Kind int

const (
	Rose Kind = iota
	Daisy
	Tulip
	Peony
	Lily
	Carnation
	Fern
	Eucalyptus
	Butterfly
	Ladybug
)

var kindNames = [...]string{
	Rose:       "rose",
	Daisy:      "daisy",
	Tulip:      "tulip",
	Peony:      "peony",
	Lily:       "lily",
	Carnation:  "carnation",
	Fern:       "fern",
	Eucalyptus: "eucalyptus",
	Butterfly:  "butterfly",
	Ladybug:    "ladybug",
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, len(kindNames))
	for i := range kindNames {
		ks[i] = Kind(i)
	}
	return ks
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[Rose]
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind looks up a kind by name, ignoring case.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return Rose, false
}

// IsBloom reports whether k is a flower head.
func (k Kind) IsBloom() bool { return k >= Rose && k <= Carnation }

// IsFoliage reports whether k is greenery.
func (k Kind) IsFoliage() bool { return k == Fern || k == Eucalyptus }

// IsFauna reports whether k is an insect.
func (k Kind) IsFauna() bool { return k == Butterfly || k == Ladybug }

// Generator renders one fragment.
type Generator func(seed, color string, scale float64) *svg.Element

// Generate renders a fragment of kind k. Unknown kinds render a rose.
func Generate(k Kind, seed, color string, scale float64) *svg.Element {
	switch k {
	case Rose:
		return GenerateRose(seed, color, scale)
	case Daisy:
		return GenerateDaisy(seed, color, scale)
	case Tulip:
		return GenerateTulip(seed, color, scale)
	case Peony:
		return GeneratePeony(seed, color, scale)
	case Lily:
		return GenerateLily(seed, color, scale)
	case Carnation:
		return GenerateCarnation(seed, color, scale)
	case Fern:
		return GenerateFern(seed, color, scale)
	case Eucalyptus:
		return GenerateEucalyptus(seed, color, scale)
	case Butterfly:
		return GenerateButterfly(seed, color, scale)
	case Ladybug:
		return GenerateLadybug(seed, color, scale)
	default:
		return GenerateRose(seed, color, scale)
	}
}

// polar returns the point at angle a (radians) and radius r.
func polar(a, r float64) (float64, float64) {
	return math.Cos(a) * r, math.Sin(a) * r
}

func deg(rad float64) float64 { return rad * 180 / math.Pi }

func pathEl(d *svg.Path, attrs ...svg.Attr) *svg.Element {
	return svg.New("path", append([]svg.Attr{svg.A("d", d)}, attrs...)...)
}

func circle(cx, cy, r float64, attrs ...svg.Attr) *svg.Element {
	return svg.New("circle", append([]svg.Attr{svg.A("cx", cx), svg.A("cy", cy), svg.A("r", r)}, attrs...)...)
}

func ellipse(cx, cy, rx, ry float64, attrs ...svg.Attr) *svg.Element {
	return svg.New("ellipse", append([]svg.Attr{svg.A("cx", cx), svg.A("cy", cy), svg.A("rx", rx), svg.A("ry", ry)}, attrs...)...)
}

func line(x1, y1, x2, y2 float64, attrs ...svg.Attr) *svg.Element {
	return svg.New("line", append([]svg.Attr{svg.A("x1", x1), svg.A("y1", y1), svg.A("x2", x2), svg.A("y2", y2)}, attrs...)...)
}
