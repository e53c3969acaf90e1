package bouquet

import (
	"github.com/venooo/dailybouquet/pkg/seed"
	"github.com/venooo/dailybouquet/pkg/svg"
)

// Vase dimension bands.
const (
	vaseX     = CanvasWidth / 2
	vaseBaseY = 560.0

	MinVaseWidth  = 130.0
	MaxVaseWidth  = 170.0
	MinVaseHeight = 210.0
	MaxVaseHeight = 250.0
	MinVaseBulge  = 10.0
	MaxVaseBulge  = 20.0
	MinWaterRatio = 0.55
	MaxWaterRatio = 0.75
)

// Vase is the glass vessel holding the stems.
type Vase struct {
	X          float64 `json:"x"`
	BaseY      float64 `json:"baseY"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Bulge      float64 `json:"bulge"`
	WaterRatio float64 `json:"waterRatio"`
}

func newVase(src *seed.Source) Vase {
	return Vase{
		X:          vaseX,
		BaseY:      vaseBaseY,
		Width:      src.Range(MinVaseWidth, MaxVaseWidth),
		Height:     src.Range(MinVaseHeight, MaxVaseHeight),
		Bulge:      src.Range(MinVaseBulge, MaxVaseBulge),
		WaterRatio: src.Range(MinWaterRatio, MaxWaterRatio),
	}
}

// Top returns the y coordinate of the rim.
func (v Vase) Top() float64 { return v.BaseY - v.Height }

// NeckY returns the y coordinate where stems converge.
func (v Vase) NeckY() float64 { return v.Top() + 10 }

// WaterHeight returns the height of the water column. It is always below
// the vase height.
func (v Vase) WaterHeight() float64 { return v.Height * v.WaterRatio }

// Body returns the closed outline of the glass: straight rim, sides bowing
// outward by Bulge, and a base slightly narrower than the rim.
func (v Vase) Body() *svg.Path {
	left, right := v.X-v.Width/2, v.X+v.Width/2
	mid := v.BaseY - v.Height/2
	return svg.NewPath().
		M(left, v.Top()).
		Q(left-v.Bulge, mid, left+10, v.BaseY).
		L(right-10, v.BaseY).
		Q(right+v.Bulge, mid, right, v.Top()).
		Z()
}

// Water returns the water quadrilateral. It is drawn clipped to the body.
func (v Vase) Water() *svg.Path {
	left, right := v.X-v.Width/2, v.X+v.Width/2
	level := v.BaseY - v.WaterHeight()
	return svg.NewPath().
		M(left-v.Bulge, level).
		L(right+v.Bulge, level).
		L(right-10, v.BaseY).
		L(left+10, v.BaseY).
		Z()
}

// Highlight returns the specular streak down the left side of the glass.
func (v Vase) Highlight() *svg.Path {
	left := v.X - v.Width/2
	return svg.NewPath().
		M(left+15, v.Top()+20).
		Q(left+10-v.Bulge/2, v.BaseY-v.Height/2, left+20, v.BaseY-30)
}
