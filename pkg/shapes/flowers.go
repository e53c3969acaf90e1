package shapes

import (
	"math"

	"github.com/venooo/dailybouquet/pkg/palette"
	"github.com/venooo/dailybouquet/pkg/seed"
	"github.com/venooo/dailybouquet/pkg/svg"
)

// GenerateRose renders 3 to 5 concentric rings of rounded petals. Ring k
// carries 3+k petals. Outer rings are drawn first so the denser core sits
// on top.
func GenerateRose(s, color string, scale float64) *svg.Element {
	src := seed.New(s)
	g := svg.Group(svg.A("class", "rose"))

	layers := 3 + src.Intn(3)
	for i := range layers {
		k := layers - 1 - i
		petals := 3 + k
		ringScale := scale * (0.3 + float64(k)/float64(layers)*0.7)
		offset := src.Angle()
		fill := palette.Shade(color, -0.03*float64(i))
		ring := svg.Group(svg.A("opacity", math.Min(1, 0.7+float64(i)*0.1)))
		for p := range petals {
			a := offset + float64(p)/float64(petals)*2*math.Pi
			length := ringScale * src.Range(0.8, 1.2)
			tx, ty := polar(a, length)
			tx += src.Jitter(5)
			ty += src.Jitter(5)
			c1x, c1y := polar(a-0.5, length*0.5)
			c2x, c2y := polar(a+0.5, length*0.5)
			d := svg.NewPath().M(0, 0).Q(c1x, c1y, tx, ty).Q(c2x, c2y, 0, 0).Z()
			ring.Add(pathEl(d, svg.A("fill", fill)))
		}
		g.Add(ring)
	}

	g.Add(circle(0, 0, scale*0.1, svg.A("fill", "#ffe"), svg.A("opacity", 0.8)))
	return g
}

// GenerateDaisy renders 8 to 17 narrow petals around a yellow disc.
func GenerateDaisy(s, color string, scale float64) *svg.Element {
	src := seed.New(s)
	g := svg.Group(svg.A("class", "daisy"))

	petals := 8 + src.Intn(10)
	offset := src.Angle()
	w := scale * 0.15
	for p := range petals {
		a := offset + float64(p)/float64(petals)*2*math.Pi
		tx, ty := polar(a, scale)
		tx += src.Jitter(3)
		ty += src.Jitter(3)
		nx, ny := polar(a+math.Pi/2, w)
		c1x, c1y := polar(a-0.25, scale*0.45)
		c2x, c2y := polar(a+0.25, scale*0.45)
		d := svg.NewPath().M(0, 0).
			C(c1x, c1y, tx-nx, ty-ny, tx, ty).
			C(tx+nx, ty+ny, c2x, c2y, 0, 0).Z()
		g.Add(pathEl(d, svg.A("fill", color), svg.A("stroke", palette.Shade(color, -0.1)), svg.A("stroke-width", 0.5)))
	}

	g.Add(
		circle(0, 0, scale*0.25, svg.A("fill", "#ffd700")),
		circle(0, 0, scale*0.12, svg.A("fill", "#e0a800"), svg.A("opacity", 0.6)),
	)
	return g
}

// GenerateTulip renders a cup of two side lobes over a pointed base with a
// lighter inner petal, tilted by up to 20 degrees.
func GenerateTulip(s, color string, scale float64) *svg.Element {
	src := seed.New(s)
	w := scale * 0.5
	h := scale * 0.8
	tilt := src.Range(-20, 20)
	notch := src.Range(0.35, 0.5)

	outer := svg.NewPath().M(0, h*0.55).
		C(-w*1.1, h*0.4, -w*1.2, -h*0.3, -w*0.55, -h*0.55).
		Q(-w*0.2, -h*0.2, 0, -h*notch).
		Q(w*0.2, -h*0.2, w*0.55, -h*0.55).
		C(w*1.2, -h*0.3, w*1.1, h*0.4, 0, h*0.55).Z()
	inner := svg.NewPath().M(0, h*0.45).
		C(-w*0.5, h*0.2, -w*0.45, -h*0.35, 0, -h*0.6).
		C(w*0.45, -h*0.35, w*0.5, h*0.2, 0, h*0.45).Z()

	return svg.Group(svg.A("class", "tulip"), svg.A("transform", svg.Rotate(tilt))).Add(
		pathEl(outer, svg.A("fill", color)),
		pathEl(inner, svg.A("fill", palette.Shade(color, 0.08)), svg.A("opacity", 0.85)),
	)
}

// GeneratePeony renders three rings of wide ruffled petals, lighter toward
// the centre.
func GeneratePeony(s, color string, scale float64) *svg.Element {
	src := seed.New(s)
	g := svg.Group(svg.A("class", "peony"))

	rings := []struct {
		petals int
		radius float64
		shade  float64
	}{
		{9 + src.Intn(2), 1.0, -0.05},
		{7 + src.Intn(2), 0.72, 0},
		{5 + src.Intn(2), 0.45, 0.08},
	}
	for _, ring := range rings {
		r := scale * ring.radius
		offset := src.Angle()
		half := math.Pi / float64(ring.petals) * 0.9
		fill := palette.Shade(color, ring.shade)
		layer := svg.Group(svg.A("opacity", 0.9))
		for p := range ring.petals {
			a := offset + float64(p)/float64(ring.petals)*2*math.Pi
			a0, a1 := a-half, a+half
			bx0, by0 := polar(a0, r*0.3)
			cx0, cy0 := polar(a0, r*0.75)
			ex0, ey0 := polar(a0, r*0.9)
			qx1, qy1 := polar(a-half*0.66, r*1.1)
			ex1, ey1 := polar(a-half/3, r*(1+src.Jitter(0.12)))
			qx2, qy2 := polar(a, r*0.95)
			ex2, ey2 := polar(a+half/3, r*(1+src.Jitter(0.12)))
			qx3, qy3 := polar(a+half*0.66, r*1.1)
			ex3, ey3 := polar(a1, r*0.9)
			cx4, cy4 := polar(a1, r*0.75)
			bx1, by1 := polar(a1, r*0.3)
			d := svg.NewPath().M(0, 0).L(bx0, by0).
				Q(cx0, cy0, ex0, ey0).
				Q(qx1, qy1, ex1, ey1).
				Q(qx2, qy2, ex2, ey2).
				Q(qx3, qy3, ex3, ey3).
				Q(cx4, cy4, bx1, by1).Z()
			layer.Add(pathEl(d, svg.A("fill", fill), svg.A("stroke", palette.Shade(color, -0.08)), svg.A("stroke-width", 0.4)))
		}
		g.Add(layer)
	}

	heart := palette.Shade(color, 0.15)
	for range 5 {
		x, y := polar(src.Angle(), scale*src.Range(0, 0.12))
		g.Add(circle(x, y, scale*src.Range(0.05, 0.09), svg.A("fill", heart)))
	}
	return g
}

// GenerateLily renders a six-pointed star of elongated petals in two
// offset layers of three, with a pale throat and six stamens.
func GenerateLily(s, color string, scale float64) *svg.Element {
	src := seed.New(s)
	g := svg.Group(svg.A("class", "lily"))

	offset := src.Angle()
	length := scale * src.Range(0.95, 1.1)
	petal := func(a, l float64) *svg.Path {
		c1x, c1y := polar(a-0.35, l*0.5)
		c2x, c2y := polar(a-0.15, l*0.9)
		tx, ty := polar(a, l)
		c3x, c3y := polar(a+0.15, l*0.9)
		c4x, c4y := polar(a+0.35, l*0.5)
		return svg.NewPath().M(0, 0).C(c1x, c1y, c2x, c2y, tx, ty).C(c3x, c3y, c4x, c4y, 0, 0).Z()
	}

	for layer, shade := range []float64{-0.04, 0} {
		fill := palette.Shade(color, shade)
		for p := range 3 {
			a := offset + float64(layer)*math.Pi/3 + float64(p)*2*math.Pi/3
			g.Add(pathEl(petal(a, length*src.Range(0.92, 1)), svg.A("fill", fill)))
		}
	}

	throat := palette.Shade(color, 0.12)
	for p := range 6 {
		a := offset + float64(p)*math.Pi/3
		g.Add(pathEl(petal(a, length*0.45), svg.A("fill", throat), svg.A("opacity", 0.8)))
	}

	for p := range 6 {
		a := offset + math.Pi/6 + float64(p)*math.Pi/3 + src.Jitter(0.3)
		x, y := polar(a, length*0.55)
		g.Add(
			line(0, 0, x, y, svg.A("stroke", "#6b8e23"), svg.A("stroke-width", 0.8)),
			circle(x, y, scale*0.04, svg.A("fill", "#8b4513")),
		)
	}
	return g
}

// GenerateCarnation renders a frilled bloom from two serrated rims and a
// darker core.
func GenerateCarnation(s, color string, scale float64) *svg.Element {
	src := seed.New(s)
	g := svg.Group(svg.A("class", "carnation"))

	r := scale * 0.85
	offset := src.Angle()
	rim := func(teeth int, outer, inner float64) *svg.Path {
		d := svg.NewPath()
		for i := range teeth * 2 {
			a := offset + float64(i)/float64(teeth*2)*2*math.Pi
			rr := inner
			if i%2 == 0 {
				rr = outer
			}
			x, y := polar(a, rr*(1+src.Jitter(0.12)))
			if i == 0 {
				d.M(x, y)
			} else {
				d.L(x, y)
			}
		}
		return d.Z()
	}

	g.Add(
		pathEl(rim(24+src.Intn(9), r, r*0.82), svg.A("fill", color), svg.A("stroke", palette.Shade(color, -0.08)), svg.A("stroke-width", 0.5)),
		pathEl(rim(16+src.Intn(5), r*0.65, r*0.5), svg.A("fill", palette.Shade(color, 0.07))),
		circle(0, 0, r*0.22, svg.A("fill", palette.Shade(color, -0.08))),
	)
	return g
}
