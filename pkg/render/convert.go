package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"

	"github.com/venooo/dailybouquet/pkg/errors"
)

// DefaultWidth is the PNG width used for email attachments.
const DefaultWidth = 800

// Rasterizer converts SVG documents to PNG and PDF.
type Rasterizer interface {
	ToPNG(ctx context.Context, svg []byte, width int) ([]byte, error)
	ToPDF(ctx context.Context, svg []byte) ([]byte, error)
}

// RSVG is a Rasterizer backed by the rsvg-convert binary.
type RSVG struct {
	// Binary overrides the executable name. Defaults to "rsvg-convert".
	Binary string

	// Background fills transparent areas when set, e.g. "#fdfbf7".
	Background string
}

// ToPNG converts SVG bytes to a PNG width pixels wide, keeping the aspect
// ratio of the document's viewBox.
func (r RSVG) ToPNG(ctx context.Context, svg []byte, width int) ([]byte, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	return r.convert(ctx, svg, "png", "-w", strconv.Itoa(width), "--keep-aspect-ratio")
}

// ToPDF converts SVG bytes to a single-page PDF.
func (r RSVG) ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return r.convert(ctx, svg, "pdf")
}

func (r RSVG) binary() string {
	if r.Binary != "" {
		return r.Binary
	}
	return "rsvg-convert"
}

// convert pipes svg through rsvg-convert. The process is killed when ctx is
// cancelled.
func (r RSVG) convert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	bin := r.binary()
	if _, err := exec.LookPath(bin); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	if r.Background != "" {
		args = append(args, "-b", r.Background)
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}

// ToPNG converts with the default rsvg-convert rasterizer.
func ToPNG(ctx context.Context, svg []byte, width int) ([]byte, error) {
	return RSVG{}.ToPNG(ctx, svg, width)
}

// ToPDF converts with the default rsvg-convert rasterizer.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return RSVG{}.ToPDF(ctx, svg)
}

var _ Rasterizer = RSVG{}
