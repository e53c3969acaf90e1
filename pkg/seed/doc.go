// Package seed turns seed strings into reproducible random streams.
//
// # Overview
//
// Every generator in dailybouquet is a pure function of a seed string. A
// [Source] wraps one seed and yields an unbounded stream of floats in [0,1):
//
//	src := seed.New("2024-01-01")
//	a := src.Float64()
//	b := src.Range(40, 65)
//
// Two sources built from the same string always produce the same sequence,
// on every run and every platform. Any string is a valid seed, including "".
//
// # Sub-seeds
//
// A single generation consumes randomness for many independent concerns: the
// palette, the layout, each individual bloom, the message. Each concern gets
// its own source from a salted sub-seed so that adding a draw in one place
// never shifts the numbers seen by another:
//
//	layout := seed.New(seed.Salt(s, "layout"))
//	bloom := seed.New(seed.Sub(s, "bloom", i))
//
// Salts are built only through [Salt] and [Sub]. Tags never contain the
// separator characters, so two different (tag, index) pairs cannot produce the
// same sub-seed for a given base.
//
// # Seed tokens
//
// [ForDate] returns the stable "today" seed used by the daily email, and
// [Random] returns a fresh token for a "new bouquet" action.
package seed
