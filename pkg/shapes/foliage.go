package shapes

import (
	"math"

	"github.com/venooo/dailybouquet/pkg/palette"
	"github.com/venooo/dailybouquet/pkg/seed"
	"github.com/venooo/dailybouquet/pkg/svg"
)

// EucalyptusGreen is the muted blue-green used for eucalyptus sprigs.
const EucalyptusGreen = "#7ca982"

// GenerateFern renders a curved frond rising from the origin, bending left
// or right, with paired leaflets that shrink toward the tip.
func GenerateFern(s, color string, scale float64) *svg.Element {
	src := seed.New(s)
	g := svg.Group(svg.A("class", "fern"))

	dir := 1.0
	if src.Chance(0.5) {
		dir = -1
	}
	h := scale * 1.2
	w := scale * 0.5 * dir
	// Quadratic spine P0=(0,0), P1=(w/2,-h/2), P2=(w,-h).
	p1x, p1y := w*0.5, -h*0.5
	p2x, p2y := w, -h
	g.Add(pathEl(svg.NewPath().M(0, 0).Q(p1x, p1y, p2x, p2y),
		svg.A("stroke", color), svg.A("stroke-width", 2), svg.A("fill", "none")))

	leaflet := palette.Shade(color, 0.04)
	for i := 1; i < 10; i++ {
		t := float64(i) / 10
		u := 1 - t
		x := 2*u*t*p1x + t*t*p2x
		y := 2*u*t*p1y + t*t*p2y
		tx := 2*u*p1x + 2*t*(p2x-p1x)
		ty := 2*u*p1y + 2*t*(p2y-p1y)
		heading := math.Atan2(ty, tx)
		size := scale * 0.2 * (1 - t*0.7)
		for _, side := range []float64{-1, 1} {
			a := heading + side*math.Pi/3
			ox, oy := polar(a, size*0.6)
			rot := deg(a) + src.Jitter(20)
			g.Add(ellipse(x+ox, y+oy, size*0.6, size*0.25,
				svg.A("fill", leaflet),
				svg.A("transform", svg.RotateAround(rot, x+ox, y+oy))))
		}
	}
	return g
}

// GenerateEucalyptus renders a straight stem with five round leaves that
// shrink toward the top, some with a small side leaf.
func GenerateEucalyptus(s, color string, scale float64) *svg.Element {
	src := seed.New(s)
	h := scale
	g := svg.Group(svg.A("class", "eucalyptus"), svg.A("transform", svg.Rotate(src.Range(-20, 20))))
	g.Add(line(0, 0, 0, -h, svg.A("stroke", palette.Shade(color, -0.12)), svg.A("stroke-width", 1.5)))

	for i := range 5 {
		y := -h*float64(i)/5 - scale*0.2
		r := scale * 0.15 * (1 - float64(i)/7.5)
		g.Add(circle(0, y, r, svg.A("fill", color), svg.A("opacity", 0.9)))
		if src.Chance(0.4) {
			x := scale * 0.1
			if i%2 == 1 {
				x = -x
			}
			g.Add(circle(x, y+r*0.4, r*0.8, svg.A("fill", palette.Shade(color, 0.05)), svg.A("opacity", 0.85)))
		}
	}
	return g
}
