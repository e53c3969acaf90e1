package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/venooo/dailybouquet/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file (single seed/format), base path or directory
	formats    []string // output formats: "svg", "png", "pdf", "json"
	today      bool     // use today's date as the seed
	width      int      // PNG width in pixels
	hour       int      // hour used for the note in the json artifact
	classic    bool     // use the classic note in the json artifact
	noFoliage  bool     // skip fern and eucalyptus
	noSparkles bool     // skip sparkle accents
	noDewdrops bool     // skip dewdrop accents
	noCache    bool     // bypass the artifact cache
	refresh    bool     // re-render and overwrite cached artifacts
	jobs       int      // concurrent renders for multiple seeds
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width: pipeline.DefaultWidth,
		hour:  c.now().Hour(),
		jobs:  pipeline.DefaultJobs,
	}

	cmd := &cobra.Command{
		Use:   "render [seed...]",
		Short: "Render bouquets to SVG, PNG, PDF or JSON",
		Long: `Render draws the bouquet for each seed and writes one file per format.

Without a seed a random one is used; --today uses today's date, the same
seed the daily email uses. PNG and PDF output needs rsvg-convert (librsvg).`,
		Example: `  bouquet render 2024-01-01
  bouquet render --today -f svg,png --width 1200
  bouquet render a b c -f png -o out/ --jobs 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), c.resolveSeeds(args, opts.today), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single seed/format), base path or directory")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.today, "today", false, "use today's date as the seed")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "PNG width in pixels")
	cmd.Flags().IntVar(&opts.hour, "hour", opts.hour, "hour of day for the note in JSON output")
	cmd.Flags().BoolVar(&opts.classic, "classic", false, "use the classic note in JSON output")
	cmd.Flags().BoolVar(&opts.noFoliage, "no-foliage", false, "omit fern and eucalyptus")
	cmd.Flags().BoolVar(&opts.noSparkles, "no-sparkles", false, "omit sparkles")
	cmd.Flags().BoolVar(&opts.noDewdrops, "no-dewdrops", false, "omit dewdrops")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render cached artifacts")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "concurrent renders when several seeds are given")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, seeds []string, opts renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Hour:       opts.hour,
		Classic:    opts.classic,
		Formats:    opts.formats,
		Width:      opts.width,
		NoFoliage:  opts.noFoliage,
		NoSparkles: opts.noSparkles,
		NoDewdrops: opts.noDewdrops,
		Refresh:    opts.refresh,
	}

	var spin *Spinner
	if needsRaster(opts.formats) {
		spin = newSpinner(ctx, c.status, c.out, "Rasterizing...")
		spin.Start()
	}
	prog := newProgress(c.Logger)

	var results []*pipeline.Result
	if len(seeds) == 1 {
		popts.Seed = seeds[0]
		var res *pipeline.Result
		res, err = runner.Execute(ctx, popts)
		results = []*pipeline.Result{res}
	} else {
		results, err = runner.ExecuteBatch(ctx, seeds, popts, opts.jobs)
	}
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	multiSeed := len(seeds) > 1
	for _, res := range results {
		if err := c.writeArtifacts(res, opts, multiSeed); err != nil {
			return err
		}
	}
	if multiSeed {
		prog.done(fmt.Sprintf("Rendered %d bouquets", len(results)))
	}
	return nil
}

func (c *CLI) writeArtifacts(res *pipeline.Result, opts renderOpts, multiSeed bool) error {
	c.out.success("Bouquet %s", StyleValue.Render(res.Seed))
	for _, format := range opts.formats {
		path := outputPath(opts.output, res.Seed, format, multiSeed, len(opts.formats) > 1)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		c.out.file(path)
	}
	c.out.stats(res.Stats.Blooms, len(res.Bouquet.Fauna), res.CacheInfo.RenderHit)
	return nil
}

// outputPath decides where one artifact goes. Without -o, files are named
// after the seed in the working directory. With several seeds -o names a
// directory; with one seed and several formats it is a base path whose
// extension is replaced per format.
func outputPath(output, seed, format string, multiSeed, multiFormat bool) string {
	name := pipeline.FileName(seed, format)
	switch {
	case output == "":
		return name
	case multiSeed:
		return filepath.Join(output, name)
	case multiFormat:
		return strings.TrimSuffix(output, filepath.Ext(output)) + "." + format
	default:
		return output
	}
}

func needsRaster(formats []string) bool {
	return slices.ContainsFunc(formats, pipeline.Cacheable)
}
