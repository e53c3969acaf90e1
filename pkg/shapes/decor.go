package shapes

import (
	"github.com/venooo/dailybouquet/pkg/palette"
	"github.com/venooo/dailybouquet/pkg/seed"
	"github.com/venooo/dailybouquet/pkg/svg"
)

// DewGradient is the id of the radial gradient dewdrops are filled with.
// Scenes that place dewdrops must define it.
const DewGradient = "dew-grad"

// Ribbon renders a bow centred on the origin: two loops, a knot and two
// tails. Shadow and highlight tones are derived from color.
func Ribbon(s, color string, scale float64) *svg.Element {
	src := seed.New(s)
	bw := 60 + src.Float64()*20
	bh := 35 + src.Float64()*10
	dark := palette.Shade(color, -0.12)
	light := palette.Shade(color, 0.12)

	loop := func(m float64) *svg.Path {
		return svg.NewPath().M(0, 0).
			C(m*-bw*0.5, -bh, m*-bw*1.2, -bh*0.6, m*-bw, 0).
			C(m*-bw*1.2, bh*0.6, m*-bw*0.5, bh*0.8, 0, 0).Z()
	}
	// tail returns the tail outline and a highlight along its middle.
	tail := func(m float64) (*svg.Path, *svg.Path) {
		sway := src.Jitter(12)
		body := svg.NewPath().M(m*-4, 6).
			Q(m*(-20+sway), 50, m*(-35+sway), 95).
			L(m*(-22+sway), 88).
			L(m*(-12+sway), 100).
			Q(m*(-6+sway), 50, m*4, 6).Z()
		shine := svg.NewPath().M(0, 12).
			Q(m*(-13+sway), 50, m*(-22+sway), 90)
		return body, shine
	}

	g := svg.Group(svg.A("class", "ribbon"), svg.A("transform", svg.Scale(scale)))
	for _, m := range []float64{1, -1} {
		body, shine := tail(m)
		g.Add(
			pathEl(body, svg.A("fill", dark)),
			pathEl(shine, svg.A("stroke", light), svg.A("stroke-width", 1.5), svg.A("fill", "none"), svg.A("opacity", 0.6)),
		)
	}
	for _, m := range []float64{1, -1} {
		g.Add(pathEl(loop(m), svg.A("fill", color), svg.A("stroke", dark), svg.A("stroke-width", 1)))
		inner := svg.NewPath().M(m*-6, 0).
			C(m*-bw*0.45, -bh*0.55, m*-bw*0.85, -bh*0.3, m*-bw*0.8, 0)
		g.Add(pathEl(inner, svg.A("stroke", light), svg.A("stroke-width", 2), svg.A("fill", "none"), svg.A("opacity", 0.7)))
	}
	g.Add(
		ellipse(0, 0, 10, 13, svg.A("fill", dark)),
		ellipse(-2, -3, 5, 6, svg.A("fill", light), svg.A("opacity", 0.6)),
	)
	return g
}

// BabysBreath renders count small white dots scattered within radius of the
// origin, each on a faint stem stub.
func BabysBreath(s string, radius float64, count int) *svg.Element {
	src := seed.New(s)
	g := svg.Group(svg.A("class", "babys-breath"))
	for range count {
		a := src.Angle()
		r := src.Float64() * radius
		x, y := polar(a, r)
		size := src.Range(2, 5)
		opacity := src.Range(0.7, 1)
		g.Add(
			line(x, y, x+src.Jitter(10), y+8,
				svg.A("stroke", "#7a9e7a"), svg.A("stroke-width", 0.5), svg.A("opacity", 0.5)),
			circle(x, y, size, svg.A("fill", "#ffffff"), svg.A("opacity", opacity)),
		)
	}
	return g
}

// Dewdrop renders a translucent droplet with a specular highlight. It is
// filled from [DewGradient].
func Dewdrop(s string, scale float64) *svg.Element {
	src := seed.New(s)
	rx := scale * src.Range(0.6, 1)
	ry := rx * 1.25
	return svg.Group(svg.A("class", "dewdrop"), svg.A("opacity", src.Range(0.5, 0.9))).Add(
		ellipse(0, 0, rx, ry, svg.A("fill", "url(#"+DewGradient+")")),
		circle(-rx*0.3, -ry*0.35, rx*0.25, svg.A("fill", "#ffffff"), svg.A("opacity", 0.8)),
	)
}

// Sparkle renders a four-pointed concave star.
func Sparkle(s, color string, scale float64) *svg.Element {
	src := seed.New(s)
	r := scale
	i := scale * 0.22
	d := svg.NewPath().M(0, -r).
		Q(i, -i, r, 0).
		Q(i, i, 0, r).
		Q(-i, i, -r, 0).
		Q(-i, -i, 0, -r).Z()
	return pathEl(d,
		svg.A("class", "sparkle"),
		svg.A("fill", color),
		svg.A("opacity", src.Range(0.6, 1)),
		svg.A("transform", svg.Rotate(src.Range(0, 45))))
}
