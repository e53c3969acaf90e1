package svg

import "strings"

// Path builds SVG path data.
type Path struct {
	b strings.Builder
}

// NewPath returns an empty path builder.
func NewPath() *Path { return &Path{} }

func (p *Path) cmd(c string, nums ...float64) *Path {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
	p.b.WriteString(c)
	for _, n := range nums {
		p.b.WriteByte(' ')
		p.b.WriteString(Num(n))
	}
	return p
}

// M moves to (x, y).
func (p *Path) M(x, y float64) *Path { return p.cmd("M", x, y) }

// L draws a line to (x, y).
func (p *Path) L(x, y float64) *Path { return p.cmd("L", x, y) }

// Q draws a quadratic curve through control (cx, cy) to (x, y).
func (p *Path) Q(cx, cy, x, y float64) *Path { return p.cmd("Q", cx, cy, x, y) }

// C draws a cubic curve.
func (p *Path) C(c1x, c1y, c2x, c2y, x, y float64) *Path {
	return p.cmd("C", c1x, c1y, c2x, c2y, x, y)
}

// Z closes the path.
func (p *Path) Z() *Path { return p.cmd("Z") }

// String returns the path data.
func (p *Path) String() string { return p.b.String() }

// Translate formats a translate transform.
func Translate(x, y float64) string {
	return "translate(" + Num(x) + " " + Num(y) + ")"
}

// Rotate formats a rotate transform in degrees.
func Rotate(deg float64) string {
	return "rotate(" + Num(deg) + ")"
}

// RotateAround formats a rotate transform about (cx, cy).
func RotateAround(deg, cx, cy float64) string {
	return "rotate(" + Num(deg) + " " + Num(cx) + " " + Num(cy) + ")"
}

// Scale formats a uniform scale transform.
func Scale(s float64) string {
	return "scale(" + Num(s) + ")"
}

// Transform joins transform parts with spaces, skipping empty ones.
func Transform(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
