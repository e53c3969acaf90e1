package shapes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/venooo/dailybouquet/pkg/palette"
	"github.com/venooo/dailybouquet/pkg/svg"
)

func TestKindNames(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(strings.ToUpper(k.String()))
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("orchid"); ok {
		t.Error("ParseKind(orchid) succeeded")
	}
	if got := Kind(99).String(); got != "rose" {
		t.Errorf("Kind(99).String() = %q, want rose", got)
	}
}

func TestKindClasses(t *testing.T) {
	blooms, foliage, fauna := 0, 0, 0
	for _, k := range Kinds() {
		n := 0
		if k.IsBloom() {
			blooms++
			n++
		}
		if k.IsFoliage() {
			foliage++
			n++
		}
		if k.IsFauna() {
			fauna++
			n++
		}
		if n != 1 {
			t.Errorf("%v belongs to %d classes", k, n)
		}
	}
	if blooms != 6 || foliage != 2 || fauna != 2 {
		t.Errorf("classes = %d/%d/%d, want 6/2/2", blooms, foliage, fauna)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			a := Generate(k, "seed-1", "#e63946", 80).String()
			b := Generate(k, "seed-1", "#e63946", 80).String()
			if a != b {
				t.Fatal("same inputs produced different output")
			}
			c := Generate(k, "seed-2", "#e63946", 80).String()
			if a == c {
				t.Error("different seeds produced identical output")
			}
		})
	}
}

func TestGenerateUnknownKindIsRose(t *testing.T) {
	got := Generate(Kind(-1), "x", "#ff0000", 50).String()
	want := GenerateRose("x", "#ff0000", 50).String()
	if got != want {
		t.Error("unknown kind did not fall back to rose")
	}
}

func TestRosePurity(t *testing.T) {
	first := GenerateRose("pure", "#e07be0", 90).String()
	for _, k := range Kinds() {
		Generate(k, "noise", "#123456", 40)
	}
	Ribbon("noise", "#d4a373", 1)
	if again := GenerateRose("pure", "#e07be0", 90).String(); again != first {
		t.Error("rose output depends on prior generation")
	}
}

func TestBloomExtent(t *testing.T) {
	for _, k := range Kinds() {
		if !k.IsBloom() {
			continue
		}
		for i := range 50 {
			scale := 40 + float64(i)
			s := fmt.Sprintf("extent-%d", i)
			el := Generate(k, s, "#9d4edd", scale)
			limit := MaxExtent*scale + 3
			if got := extent(el); got > limit {
				t.Errorf("%v seed %q scale %v: extent %.2f > %.2f", k, s, scale, got, limit)
			}
		}
	}
}

func TestPetalCounts(t *testing.T) {
	for i := range 100 {
		s := strconv.Itoa(i)
		daisy := GenerateDaisy(s, "#ffffff", 50)
		if n := daisy.Count("path"); n < 8 || n > 17 {
			t.Errorf("daisy %q has %d petals", s, n)
		}
		rose := GenerateRose(s, "#ff0000", 50)
		// 3 layers hold 3+4+5 petals, 5 layers hold 3+4+5+6+7.
		if n := rose.Count("path"); n < 12 || n > 25 {
			t.Errorf("rose %q has %d petals", s, n)
		}
	}
}

func TestBabysBreathCount(t *testing.T) {
	g := BabysBreath("cluster", 30, 12)
	if n := g.Count("circle"); n != 12 {
		t.Errorf("circles = %d, want 12", n)
	}
	if n := g.Count("line"); n != 12 {
		t.Errorf("stems = %d, want 12", n)
	}
	if n := BabysBreath("cluster", 30, 0).Count("circle"); n != 0 {
		t.Errorf("empty cluster has %d dots", n)
	}
}

func TestDewdropUsesGradient(t *testing.T) {
	out := Dewdrop("d", 6).String()
	if !strings.Contains(out, "url(#"+DewGradient+")") {
		t.Errorf("dewdrop does not reference gradient: %s", out)
	}
}

func TestFernBendsBothWays(t *testing.T) {
	left, right := false, false
	for i := range 40 {
		g := GenerateFern(strconv.Itoa(i), "#4f7a3a", 60)
		d, _ := g.Children[0].Attr("d")
		end := strings.Fields(d)
		x, _ := strconv.ParseFloat(end[len(end)-2], 64)
		if x < 0 {
			left = true
		} else {
			right = true
		}
	}
	if !left || !right {
		t.Errorf("fern directions left=%v right=%v", left, right)
	}
}

func TestRibbonHighlights(t *testing.T) {
	const color = "#d4a373"
	light := palette.Shade(color, 0.12)
	for i := range 20 {
		g := Ribbon(strconv.Itoa(i), color, 1)
		loops, tails := 0, 0
		g.Walk(func(e *svg.Element) {
			if stroke, _ := e.Attr("stroke"); e.Tag != "path" || stroke != light {
				return
			}
			d, _ := e.Attr("d")
			f := strings.Fields(d)
			if y, _ := strconv.ParseFloat(f[len(f)-1], 64); y > 50 {
				tails++
			} else {
				loops++
			}
		})
		if loops != 2 || tails != 2 {
			t.Errorf("ribbon %d: %d loop and %d tail highlights, want 2 and 2", i, loops, tails)
		}
	}
}

func ExampleGenerate() {
	el := Generate(Daisy, "2024-01-01", "#ffffff", 50)
	v, _ := el.Attr("class")
	fmt.Println(v, el.Count("circle"))
	// Output: daisy 2
}

// extent returns the largest distance from the origin of any path vertex or
// control point, or any circle edge, in the subtree. Only rotation and
// opacity groups occur inside blooms, so transforms can be ignored.
func extent(el *svg.Element) float64 {
	far := 0.0
	el.Walk(func(e *svg.Element) {
		switch e.Tag {
		case "path":
			d, _ := e.Attr("d")
			var nums []float64
			for _, f := range strings.Fields(d) {
				if v, err := strconv.ParseFloat(f, 64); err == nil {
					nums = append(nums, v)
				}
			}
			for i := 0; i+1 < len(nums); i += 2 {
				far = math.Max(far, math.Hypot(nums[i], nums[i+1]))
			}
		case "circle":
			cx, cy, r := num(e, "cx"), num(e, "cy"), num(e, "r")
			far = math.Max(far, math.Hypot(cx, cy)+r)
		}
	})
	return far
}

func num(e *svg.Element, name string) float64 {
	v, _ := e.Attr(name)
	f, _ := strconv.ParseFloat(v, 64)
	return f
}
