package palette

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate("2024-01-01")
	b := Generate("2024-01-01")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Generate not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestGenerateCoherence(t *testing.T) {
	for i := range 200 {
		s := fmt.Sprintf("seed-%d", i)
		p := Generate(s)

		if n := len(p.FlowerColors); n < 3 || n > 5 {
			t.Errorf("%s: %d flower colors, want 3..5", s, n)
		}
		for _, c := range p.FlowerColors {
			if !Valid(c) {
				t.Errorf("%s: invalid flower color %q", s, c)
			}
		}
		for name, c := range map[string]string{"stem": p.Stem, "leaf": p.Leaf, "wrap": p.Wrap, "ribbon": p.Ribbon} {
			if !Valid(c) {
				t.Errorf("%s: invalid %s color %q", s, name, c)
			}
		}
		if p.Background != Background {
			t.Errorf("%s: background %q, want %q", s, p.Background, Background)
		}
		if !slices.Contains(BaseHues, p.BaseHue) {
			t.Errorf("%s: base hue %v not curated", s, p.BaseHue)
		}
	}
}

func TestGenerateEmptySeed(t *testing.T) {
	p := Generate("")
	if len(p.FlowerColors) < 3 {
		t.Errorf("empty seed produced %d colors", len(p.FlowerColors))
	}
}

func TestOKLCHFallback(t *testing.T) {
	tests := []struct {
		name    string
		l, c, h float64
	}{
		{"nan hue", 0.6, 0.2, math.NaN()},
		{"inf lightness", math.Inf(1), 0.2, 30},
		{"nan chroma", 0.6, math.NaN(), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OKLCH(tt.l, tt.c, tt.h, RibbonFallback); got != RibbonFallback {
				t.Errorf("OKLCH() = %q, want fallback", got)
			}
		})
	}
}

func TestOKLCHHueWrap(t *testing.T) {
	if OKLCH(0.6, 0.2, 390, "") != OKLCH(0.6, 0.2, 30, "") {
		t.Error("hue 390 should equal hue 30")
	}
	if OKLCH(0.6, 0.2, -20, "") != OKLCH(0.6, 0.2, 340, "") {
		t.Error("hue -20 should equal hue 340")
	}
}

func TestShade(t *testing.T) {
	base := "#e63946"
	light, dark := Shade(base, 0.1), Shade(base, -0.1)
	if !Valid(light) || !Valid(dark) {
		t.Fatalf("Shade produced invalid colors %q %q", light, dark)
	}
	if light == base || dark == base {
		t.Error("Shade did not change the color")
	}
	if got := Shade("not-a-color", 0.1); got != "not-a-color" {
		t.Errorf("Shade(invalid) = %q", got)
	}
}

func TestOKLCHKnownColors(t *testing.T) {
	tests := []struct {
		name    string
		l, c, h float64
		want    string
	}{
		{"white", 1, 0, 0, "#ffffff"},
		{"black", 0, 0, 0, "#000000"},
		{"red", 0.627955, 0.257683, 29.2339, "#ff0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OKLCH(tt.l, tt.c, tt.h, "#123456"); got != tt.want {
				t.Errorf("OKLCH(%v, %v, %v) = %s, want %s", tt.l, tt.c, tt.h, got, tt.want)
			}
		})
	}
	if got := Shade("#ff0000", 0); got != "#ff0000" {
		t.Errorf("Shade(#ff0000, 0) = %s", got)
	}
}
