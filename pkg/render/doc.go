// Package render converts bouquet SVG into raster and print formats.
//
// # Overview
//
// Conversion shells out to rsvg-convert from librsvg, which handles the
// filters and gradients the scenes use. Install it with:
//
//	macOS:  brew install librsvg
//	Linux:  apt install librsvg2-bin
//
// # Preparing scenes
//
// Bouquet scenes deliberately draw past their nominal 600×800 canvas. Before
// rasterizing, widen the viewport to the scene's safe box:
//
//	doc := render.PrepareForRaster([]byte(b.SVG), bouquet.SafeBox.String())
//	png, err := render.ToPNG(ctx, doc, 800)
//
// Tests and callers that cannot depend on librsvg can substitute their own
// [Rasterizer].
package render
