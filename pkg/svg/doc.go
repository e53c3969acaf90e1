// Package svg provides a small structured SVG scene tree.
//
// Generators build [Element] trees instead of concatenating markup, and the
// tree is serialized once at the end with [Element.Render]. Serialization is
// deterministic: attributes are written in insertion order and every float is
// formatted by [Num] with two decimals, so equal trees always produce
// byte-identical documents.
//
//	p := svg.NewPath().M(0, 0).Q(10, -20, 0, -40).Z()
//	g := svg.Group(svg.A("transform", svg.Translate(300, 200))).Add(
//	    svg.New("path", svg.A("d", p), svg.A("fill", "#e63946")),
//	)
//	var buf bytes.Buffer
//	g.Render(&buf)
package svg
