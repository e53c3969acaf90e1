// Package bouquet composes a complete vase arrangement scene from a seed.
//
// # Overview
//
// [Generate] is the single entry point. It is a pure, synchronous function:
//
//	b := bouquet.Generate("2024-01-01")
//	os.WriteFile("bouquet.svg", []byte(b.SVG), 0o644)
//
// The same seed always yields byte-identical SVG and an identical palette.
// Generation never fails: invalid colors fall back to fixed defaults and
// unknown shape kinds render as roses.
//
// # Composition
//
// A scene is built in passes, each drawing from its own sub-seed so that
// turning an optional pass off never changes the rest of the picture:
//
//  1. palette and vase dimensions
//  2. foliage behind and in front of the blooms
//  3. blooms placed on a phyllotaxis spiral, with stems to the vase neck
//  4. baby's breath filler clusters
//  5. ribbon at the vase neck
//  6. butterflies and ladybugs
//  7. dewdrop and sparkle accents near random blooms
//
// The result is assembled into named layers (see [Layers]) in painter's
// order. Blooms are inserted in reverse generation order so the central,
// first-generated flowers end up on top.
//
// # Canvas
//
// The scene uses a 600×800 viewBox. Blooms at the edge of the spiral may
// extend past it; everything drawn stays within [SafeBox], which the root
// element advertises in its data-safe-box attribute and which rasterizers
// should use as their viewport.
package bouquet
