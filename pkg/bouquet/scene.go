package bouquet

import (
	"github.com/venooo/dailybouquet/pkg/shapes"
	"github.com/venooo/dailybouquet/pkg/svg"
)

func (c *composer) scene() *svg.Element {
	root := svg.New("svg",
		svg.A("xmlns", "http://www.w3.org/2000/svg"),
		svg.A("viewBox", ViewBox),
		svg.A("preserveAspectRatio", "xMidYMid meet"),
		svg.A("data-safe-box", SafeBox),
	)
	root.Add(c.defs())
	for _, name := range Layers {
		root.Add(c.layers[name])
	}
	return root
}

func stop(offset, color string, opacity float64) *svg.Element {
	return svg.New("stop", svg.A("offset", offset), svg.A("stop-color", color), svg.A("stop-opacity", opacity))
}

func (c *composer) defs() *svg.Element {
	return svg.New("defs").Add(
		svg.New("filter", svg.A("id", "glass-specular")).Add(
			svg.New("feSpecularLighting",
				svg.A("result", "specOut"), svg.A("specularExponent", 25), svg.A("lighting-color", "#ffffff")).Add(
				svg.New("fePointLight", svg.A("x", CanvasWidth/2), svg.A("y", CanvasHeight/2), svg.A("z", 250)),
			),
			svg.New("feComposite",
				svg.A("in", "SourceGraphic"), svg.A("in2", "specOut"), svg.A("operator", "arithmetic"),
				svg.A("k1", 0), svg.A("k2", 1), svg.A("k3", 1), svg.A("k4", 0)),
		),
		svg.New("filter", svg.A("id", "soft-shadow")).Add(
			svg.New("feDropShadow", svg.A("dx", 0), svg.A("dy", 4), svg.A("stdDeviation", 8), svg.A("flood-opacity", 0.15)),
		),
		svg.New("linearGradient", svg.A("id", "water-grad"), svg.A("x1", 0), svg.A("x2", 0), svg.A("y1", 0), svg.A("y2", 1)).Add(
			stop("0%", "#b5e2ff", 0.35),
			stop("100%", "#7ec8e3", 0.65),
		),
		svg.New("linearGradient", svg.A("id", "vase-glass"), svg.A("x1", 0), svg.A("x2", 1), svg.A("y1", 0), svg.A("y2", 0)).Add(
			stop("0%", "#ffffff", 0.2),
			stop("50%", "#ffffff", 0.05),
			stop("100%", "#ffffff", 0.15),
		),
		svg.New("radialGradient", svg.A("id", shapes.DewGradient), svg.A("cx", "35%"), svg.A("cy", "30%"), svg.A("r", "70%")).Add(
			stop("0%", "#ffffff", 0.95),
			stop("60%", "#d8f0ff", 0.5),
			stop("100%", "#9ccfe8", 0.3),
		),
		svg.New("clipPath", svg.A("id", "vase-clip")).Add(
			svg.New("path", svg.A("d", c.out.Vase.Body())),
		),
	)
}
