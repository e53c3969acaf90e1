package render

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/venooo/dailybouquet/pkg/errors"
)

func TestPrepareForRaster(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "replace viewBox",
			in:   `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 600 800"><g/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-80 -80 760 900"><g/></svg>`,
		},
		{
			name: "strip percentages",
			in:   `<svg width="100%" height="100%" viewBox="0 0 1 1"></svg>`,
			want: `<svg viewBox="-80 -80 760 900"></svg>`,
		},
		{
			name: "keep absolute size",
			in:   `<svg width="600" viewBox="0 0 1 1"></svg>`,
			want: `<svg width="600" viewBox="-80 -80 760 900"></svg>`,
		},
		{
			name: "add missing viewBox",
			in:   `<svg xmlns="x"><rect/></svg>`,
			want: `<svg viewBox="-80 -80 760 900" xmlns="x"><rect/></svg>`,
		},
		{
			name: "only root touched",
			in:   `<?xml version="1.0"?><svg viewBox="0 0 1 1"><svg viewBox="0 0 2 2"/></svg>`,
			want: `<?xml version="1.0"?><svg viewBox="-80 -80 760 900"><svg viewBox="0 0 2 2"/></svg>`,
		},
		{
			name: "not svg",
			in:   `<html></html>`,
			want: `<html></html>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(PrepareForRaster([]byte(tt.in), "-80 -80 760 900"))
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestPrepareForRasterDoesNotAlias(t *testing.T) {
	in := []byte(`<svg viewBox="0 0 1 1"></svg>`)
	orig := bytes.Clone(in)
	PrepareForRaster(in, "0 0 2 2")
	if !bytes.Equal(in, orig) {
		t.Error("input modified")
	}
}

func TestMissingBinary(t *testing.T) {
	r := RSVG{Binary: "rsvg-convert-does-not-exist"}
	_, err := r.ToPNG(context.Background(), []byte("<svg/>"), 100)
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Fatalf("err = %v, want %s", err, errors.ErrCodeRenderFailed)
	}
	if !strings.Contains(errors.UserMessage(err), "librsvg") {
		t.Errorf("missing install hint: %v", err)
	}
}

func TestToPNG(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 20"><rect width="10" height="20" fill="#f00"/></svg>`)
	png, err := RSVG{Background: "#fdfbf7"}.ToPNG(context.Background(), svg, 50)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestCancelled(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ToPDF(ctx, []byte("<svg/>")); err == nil {
		t.Error("cancelled conversion succeeded")
	}
}
