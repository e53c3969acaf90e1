// Package pipeline provides the generate → render pipeline behind the CLI
// and the daily email job.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: compose the bouquet scene and the accompanying message for
//     a seed. This is pure and fast.
//  2. Render: produce output in the requested formats (SVG, PNG, PDF, JSON).
//     Raster formats go through an external rasterizer and are cached.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Seed:    "2024-01-01",
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// Render many seeds with bounded concurrency:
//
//	results, err := runner.ExecuteBatch(ctx, seeds, opts, 4)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/venooo/dailybouquet/pkg/bouquet"
	"github.com/venooo/dailybouquet/pkg/cache"
	"github.com/venooo/dailybouquet/pkg/errors"
	"github.com/venooo/dailybouquet/pkg/message"
	"github.com/venooo/dailybouquet/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default PNG width in pixels.
	DefaultWidth = render.DefaultWidth

	// DefaultJobs is the default batch concurrency.
	DefaultJobs = 4
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	Seed string `json:"seed"`

	// Hour is the local hour used for time-of-day message phrasing.
	Hour int `json:"hour"`

	// Classic selects the shorter admiration and gratitude note.
	Classic bool `json:"classic,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Width      int      `json:"width,omitempty"`
	NoFoliage  bool     `json:"no_foliage,omitempty"`
	NoSparkles bool     `json:"no_sparkles,omitempty"`
	NoDewdrops bool     `json:"no_dewdrops,omitempty"`
	Refresh    bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Seed    string
	Bouquet *bouquet.Bouquet
	Message message.Message

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Blooms       int
	GenerateTime time.Duration
	RenderTime   time.Duration
	Bytes        int
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	Hits      []string // Formats served from cache
	RenderHit bool     // Whether every cacheable artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the seed and formats and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateSeed(o.Seed); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Width < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width must be positive, got %d", o.Width)
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
}

// BouquetOptions translates the toggles into composer options.
func (o *Options) BouquetOptions() []bouquet.Option {
	var opts []bouquet.Option
	if o.NoFoliage {
		opts = append(opts, bouquet.WithoutFoliage())
	}
	if o.NoSparkles {
		opts = append(opts, bouquet.WithoutSparkles())
	}
	if o.NoDewdrops {
		opts = append(opts, bouquet.WithoutDewdrops())
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:  format,
		Variant: bouquet.Key(o.BouquetOptions()...),
	}
	switch format {
	case FormatPNG:
		k.Width = o.Width
	case FormatJSON:
		k.Hour = o.Hour
	}
	return k
}

// Message composes the note for the options' seed.
func (o *Options) Message() message.Message {
	if o.Classic {
		return message.Classic(o.Seed)
	}
	return message.Generate(o.Seed, o.Hour)
}

// Cacheable reports whether a format is worth caching. Only formats that
// go through the external rasterizer are.
func Cacheable(format string) bool {
	return format == FormatPNG || format == FormatPDF
}
