// Package shapes is the procedural shape library for bouquet scenes.
//
// # Overview
//
// Each generator is a pure function of (seed, color, scale) that returns an
// [svg.Element] centred on its own origin. Callers position the fragment by
// wrapping it in a translate/rotate group:
//
//	rose := shapes.GenerateRose("abc/bloom#3", "#e63946", 80)
//	g := svg.Group(svg.A("transform", svg.Translate(x, y))).Add(rose)
//
// Every generator owns a [seed.Source] built from its local seed, so calling
// it twice with the same inputs yields identical fragments regardless of what
// else has been generated.
//
// # Kinds
//
// Blooms, foliage and fauna are addressed by the closed [Kind] enum and
// dispatched by [Generate]. An out-of-range kind falls back to a rose. The
// decorative primitives ([Ribbon], [BabysBreath], [Dewdrop], [Sparkle]) have
// their own signatures since their callers control density or placement.
//
// # Extents
//
// Bloom generators stay within [MaxExtent] × scale of the origin (plus a few
// units of jitter), which the composer relies on to keep scenes inside their
// crop-safe box.
package shapes
