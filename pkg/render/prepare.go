package render

import (
	"regexp"
)

var (
	rootTag    = regexp.MustCompile(`(?s)<svg\b[^>]*>`)
	viewBoxRe  = regexp.MustCompile(`\sviewBox="[^"]*"`)
	percentDim = regexp.MustCompile(`\s(?:width|height)="[^"]*%"`)
)

// PrepareForRaster rewrites the root element of an SVG document for
// rasterizing: the viewBox is replaced by box so that shapes drawn outside
// the nominal canvas are not cropped, and percentage width/height attributes,
// which rasterizers cannot resolve, are removed. Documents without a root
// <svg> tag are returned unchanged.
func PrepareForRaster(svg []byte, box string) []byte {
	loc := rootTag.FindIndex(svg)
	if loc == nil {
		return svg
	}
	tag := svg[loc[0]:loc[1]]
	tag = percentDim.ReplaceAll(tag, nil)
	viewBox := []byte(` viewBox="` + box + `"`)
	if viewBoxRe.Match(tag) {
		tag = viewBoxRe.ReplaceAllLiteral(tag, viewBox)
	} else {
		tag = append(append(append([]byte{}, tag[:4]...), viewBox...), tag[4:]...)
	}

	out := make([]byte, 0, len(svg)+len(viewBox))
	out = append(out, svg[:loc[0]]...)
	out = append(out, tag...)
	return append(out, svg[loc[1]:]...)
}
