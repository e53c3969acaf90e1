// Package cli implements the bouquet command-line interface.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PNG, PDF or JSON for one or more seeds
//   - message: Print the love note for a seed
//   - palette: Show the colors drawn for a seed
//   - preview: Browse bouquets interactively in the terminal
//   - email: Send the daily bouquet email, once or on a schedule
//   - cache: Manage the rendered artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// lives on the CLI struct and is handed to the pipeline, mail and schedule
// packages.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/venooo/dailybouquet/pkg/buildinfo"
	"github.com/venooo/dailybouquet/pkg/cache"
	"github.com/venooo/dailybouquet/pkg/pipeline"
	"github.com/venooo/dailybouquet/pkg/render"
	"github.com/venooo/dailybouquet/pkg/seed"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "bouquet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out    printer
	status io.Writer // spinner frames
	now    func() time.Time

	// rasterizer overrides the runner's default rsvg-convert backend.
	rasterizer render.Rasterizer
}

// New creates a new CLI instance. Logs go to w; command output goes to
// stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    printer{w: os.Stdout},
		status: w,
		now:    time.Now,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = printer{w: w}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Bouquet draws a seeded flower arrangement and a love note",
		Long:         `Bouquet generates a hand-arranged looking bouquet in a glass vase, plus a short love note, from any seed. The same seed always yields the same picture and the same note; today's date makes a new bouquet every day.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.messageCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.emailCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(cache, newKeyer(), c.Logger)
	if c.rasterizer != nil {
		runner.Rasterizer = c.rasterizer
	}
	return runner, nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newKeyer scopes cache keys by build so a new release never serves
// artifacts drawn by an older one.
func newKeyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/bouquet/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// resolveSeeds picks the seeds a command works on: the arguments, today's
// date with --today, or a fresh random seed.
func (c *CLI) resolveSeeds(args []string, today bool) []string {
	switch {
	case today:
		return []string{seed.ForDate(c.now())}
	case len(args) > 0:
		return args
	default:
		return []string{seed.Random()}
	}
}
