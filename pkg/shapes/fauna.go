package shapes

import (
	"github.com/venooo/dailybouquet/pkg/palette"
	"github.com/venooo/dailybouquet/pkg/seed"
	"github.com/venooo/dailybouquet/pkg/svg"
)

const insectBody = "#333333"

// GenerateButterfly renders two mirrored wing pairs, each with a lighter
// inlay, around a dark body with antennae.
func GenerateButterfly(s, color string, scale float64) *svg.Element {
	src := seed.New(s)
	rot := deg(src.Angle())
	size := src.Range(0.8, 1.2)
	w := scale

	upper := func(m float64) *svg.Path {
		return svg.NewPath().M(0, -0.05*w).
			C(m*-0.9*w, -1.1*w, m*-1.4*w, -0.1*w, 0, 0.05*w).Z()
	}
	lower := func(m float64) *svg.Path {
		return svg.NewPath().M(0, 0.05*w).
			C(m*-0.9*w, 0.2*w, m*-0.6*w, 0.9*w, 0, 0.25*w).Z()
	}

	g := svg.Group(svg.A("class", "butterfly"), svg.A("transform", svg.Transform(svg.Rotate(rot), svg.Scale(size))))
	wings := svg.Group(svg.A("fill", color), svg.A("opacity", 0.9))
	inlay := svg.Group(svg.A("fill", palette.Shade(color, 0.15)), svg.A("opacity", 0.6), svg.A("transform", svg.Scale(0.55)))
	for _, m := range []float64{1, -1} {
		wings.Add(pathEl(upper(m)), pathEl(lower(m)))
		inlay.Add(pathEl(upper(m)), pathEl(lower(m)))
	}
	g.Add(wings, inlay, ellipse(0, 0, 0.08*w, 0.4*w, svg.A("fill", insectBody)))
	for _, m := range []float64{1, -1} {
		g.Add(pathEl(svg.NewPath().M(0, -0.35*w).Q(m*0.1*w, -0.6*w, m*0.25*w, -0.7*w),
			svg.A("stroke", insectBody), svg.A("stroke-width", 0.8), svg.A("fill", "none")))
	}
	return g
}

// GenerateLadybug renders a spotted disc with a centre seam and a head.
func GenerateLadybug(s, color string, scale float64) *svg.Element {
	src := seed.New(s)
	r := scale * 0.4
	g := svg.Group(svg.A("class", "ladybug"), svg.A("transform", svg.Rotate(deg(src.Angle()))))
	g.Add(
		circle(0, 0, r, svg.A("fill", color)),
		line(0, -r, 0, r, svg.A("stroke", "#000000"), svg.A("stroke-width", r*0.1), svg.A("opacity", 0.5)),
	)
	for _, spot := range [][2]float64{{-0.4, -0.3}, {0.45, 0.1}, {-0.3, 0.45}} {
		x := (spot[0] + src.Jitter(0.1)) * r
		y := (spot[1] + src.Jitter(0.1)) * r
		g.Add(circle(x, y, r*0.2, svg.A("fill", "#000000")))
	}
	g.Add(circle(0, -r*0.8, r*0.4, svg.A("fill", "#000000")))
	return g
}
