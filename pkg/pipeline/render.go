package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/venooo/dailybouquet/pkg/bouquet"
	"github.com/venooo/dailybouquet/pkg/buildinfo"
	"github.com/venooo/dailybouquet/pkg/message"
	"github.com/venooo/dailybouquet/pkg/render"
)

// Artifact is the JSON export of a generated bouquet.
type Artifact struct {
	Version string           `json:"version"`
	Seed    string           `json:"seed"`
	Hour    int              `json:"hour"`
	Message message.Message  `json:"message"`
	Bouquet *bouquet.Bouquet `json:"bouquet"`
}

// MarshalArtifact encodes b and msg as indented JSON.
func MarshalArtifact(b *bouquet.Bouquet, msg message.Message, hour int) ([]byte, error) {
	return json.MarshalIndent(Artifact{
		Version: buildinfo.Version,
		Seed:    b.Seed,
		Hour:    hour,
		Message: msg,
		Bouquet: b,
	}, "", "  ")
}

// Render produces one artifact per format. Raster formats are rendered from
// the SVG with its viewBox widened to the safe box.
func Render(ctx context.Context, ras render.Rasterizer, b *bouquet.Bouquet, msg message.Message, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, ras, b, msg, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, ras render.Rasterizer, b *bouquet.Bouquet, msg message.Message, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return []byte(b.SVG), nil
	case FormatPNG:
		return ras.ToPNG(ctx, rasterSource(b), opts.Width)
	case FormatPDF:
		return ras.ToPDF(ctx, rasterSource(b))
	case FormatJSON:
		return MarshalArtifact(b, msg, opts.Hour)
	default:
		return nil, ValidateFormat(format)
	}
}

func rasterSource(b *bouquet.Bouquet) []byte {
	return render.PrepareForRaster([]byte(b.SVG), bouquet.SafeBox.String())
}

// FileName returns the output file name for seed in format, e.g.
// "bouquet-2024-01-01.png". Characters unsafe in file names are replaced.
func FileName(seed, format string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, seed)
	slug = strings.Trim(slug, ".")
	if slug == "" {
		slug = "empty"
	}
	return "bouquet-" + slug + "." + format
}
