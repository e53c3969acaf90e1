package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/venooo/dailybouquet/pkg/bouquet"
	"github.com/venooo/dailybouquet/pkg/errors"
	"github.com/venooo/dailybouquet/pkg/message"
	"github.com/venooo/dailybouquet/pkg/palette"
)

var testNow = time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)

type fakeRasterizer struct{}

func (fakeRasterizer) ToPNG(context.Context, []byte, int) ([]byte, error) {
	return []byte("\x89PNG fake"), nil
}

func (fakeRasterizer) ToPDF(context.Context, []byte) ([]byte, error) {
	return []byte("%PDF fake"), nil
}

func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)
	var out bytes.Buffer
	c.SetOutput(&out)
	c.status = io.Discard
	c.now = func() time.Time { return testNow }
	c.rasterizer = fakeRasterizer{}
	return c, &out
}

func run(c *CLI, args ...string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"png", []string{"png"}},
		{"svg, png,pdf", []string{"svg", "png", "pdf"}},
		{"json,,", []string{"json"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveSeeds(t *testing.T) {
	c, _ := newTestCLI(t)
	if got := c.resolveSeeds([]string{"a", "b"}, false); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("args: %v", got)
	}
	if got := c.resolveSeeds([]string{"a"}, true); !slices.Equal(got, []string{"2024-01-01"}) {
		t.Errorf("today: %v", got)
	}
	r1, r2 := c.resolveSeeds(nil, false), c.resolveSeeds(nil, false)
	if len(r1) != 1 || r1[0] == "" || r1[0] == r2[0] {
		t.Errorf("random seeds %v %v", r1, r2)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name                   string
		output, seed, format   string
		multiSeed, multiFormat bool
		want                   string
	}{
		{"default", "", "2024-01-01", "svg", false, false, "bouquet-2024-01-01.svg"},
		{"explicit file", "out/rose.svg", "x", "svg", false, false, "out/rose.svg"},
		{"base path", "out/rose.svg", "x", "png", false, true, "out/rose.png"},
		{"base without ext", "out/rose", "x", "pdf", false, true, "out/rose.pdf"},
		{"directory", "out", "a b", "png", true, false, filepath.Join("out", "bouquet-a_b.png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.output, tt.seed, tt.format, tt.multiSeed, tt.multiFormat)
			if got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c, _ := newTestCLI(t)
	root := c.RootCommand()
	for _, name := range []string{"render", "message", "palette", "preview", "email", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRenderCommandSVG(t *testing.T) {
	c, out := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "today.svg")
	if err := run(c, "render", "--today", "-o", path); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != bouquet.Generate("2024-01-01").SVG {
		t.Error("written svg differs from bouquet.Generate")
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("output does not list %s:\n%s", path, out.String())
	}
}

func TestRenderCommandBatch(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	if err := run(c, "render", "a", "b", "c", "-f", "svg,png", "-o", dir, "--no-sparkles"); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, s := range []string{"a", "b", "c"} {
		svg, err := os.ReadFile(filepath.Join(dir, "bouquet-"+s+".svg"))
		if err != nil {
			t.Fatal(err)
		}
		if string(svg) != bouquet.Generate(s, bouquet.WithoutSparkles()).SVG {
			t.Errorf("seed %s: svg mismatch", s)
		}
		png, err := os.ReadFile(filepath.Join(dir, "bouquet-"+s+".png"))
		if err != nil || !bytes.HasPrefix(png, []byte("\x89PNG")) {
			t.Errorf("seed %s: png = %q, %v", s, png, err)
		}
	}
}

func TestRenderCommandInvalidFormat(t *testing.T) {
	c, _ := newTestCLI(t)
	err := run(c, "render", "x", "-f", "gif")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v", err)
	}
}

func TestMessageCommandJSON(t *testing.T) {
	c, out := newTestCLI(t)
	if err := run(c, "message", "2024-01-01", "--hour", "21", "--json"); err != nil {
		t.Fatal(err)
	}
	var got message.Message
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", out.String(), err)
	}
	if got != message.Generate("2024-01-01", 21) {
		t.Errorf("message = %+v", got)
	}
}

func TestMessageCommandClassic(t *testing.T) {
	c, out := newTestCLI(t)
	if err := run(c, "message", "s", "--classic"); err != nil {
		t.Fatal(err)
	}
	m := message.Classic("s")
	if !strings.Contains(out.String(), m.Subject) || !strings.Contains(out.String(), m.Signature) {
		t.Errorf("output lacks classic note:\n%s", out.String())
	}
}

func TestMessageCommandBadHour(t *testing.T) {
	c, _ := newTestCLI(t)
	if err := run(c, "message", "s", "--hour", "25"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v", err)
	}
}

func TestPaletteCommand(t *testing.T) {
	c, out := newTestCLI(t)
	if err := run(c, "palette", "2024-01-01"); err != nil {
		t.Fatal(err)
	}
	p := palette.Generate("2024-01-01")
	for _, hex := range append(p.FlowerColors, p.Stem, p.Leaf, p.Ribbon) {
		if !strings.Contains(out.String(), hex) {
			t.Errorf("palette output lacks %s", hex)
		}
	}
	if rows := paletteRows(p); len(rows) != len(p.FlowerColors)+5 {
		t.Errorf("rows = %d", len(rows))
	}
}

func TestCachePathCommand(t *testing.T) {
	c, out := newTestCLI(t)
	if err := run(c, "cache", "path"); err != nil {
		t.Fatal(err)
	}
	want, _ := cacheDir()
	if strings.TrimSpace(out.String()) != want {
		t.Errorf("cache path = %q, want %q", out.String(), want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	c, out := newTestCLI(t)
	if err := run(c, "render", "cached", "-f", "png", "-o", filepath.Join(t.TempDir(), "x.png")); err != nil {
		t.Fatal(err)
	}
	dir, _ := cacheDir()
	if entries, _ := os.ReadDir(dir); len(entries) == 0 {
		t.Fatal("render did not populate the cache")
	}
	if err := run(c, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("cache still has %d entries", len(entries))
	}
	if !strings.Contains(out.String(), "Cleared cache") {
		t.Errorf("output = %q", out.String())
	}
}

func setMailEnv(t *testing.T, sendHour string) {
	t.Helper()
	for k, v := range map[string]string{
		"SMTP_USER":         "bot@example.com",
		"SMTP_APP_PASSWORD": "",
		"TO_EMAIL":          "love@example.com",
		"SITE_URL":          "https://bouquet.example.com",
		"BOUQUET_TIMEZONE":  "UTC",
		"BOUQUET_SEND_HOUR": sendHour,
	} {
		t.Setenv(k, v)
	}
}

func TestEmailDryRun(t *testing.T) {
	c, _ := newTestCLI(t)
	setMailEnv(t, "8")
	path := filepath.Join(t.TempDir(), "draft.eml")
	if err := run(c, "email", "--dry-run", "--env-file", "", "-o", path); err != nil {
		t.Fatalf("email: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"To: love@example.com", "bouquet-2024-01-01.png", "Content-Id: <bouquet-daily>"} {
		if !bytes.Contains(bytes.ReplaceAll(data, []byte("Content-ID"), []byte("Content-Id")), []byte(want)) {
			t.Errorf("draft lacks %q", want)
		}
	}
}

func TestEmailSkipsOutsideSendHour(t *testing.T) {
	c, out := newTestCLI(t)
	setMailEnv(t, "9")
	path := filepath.Join(t.TempDir(), "draft.eml")
	if err := run(c, "email", "--dry-run", "--env-file", "", "-o", path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("draft written outside the send hour")
	}
	if !strings.Contains(out.String(), "nothing sent") {
		t.Errorf("output = %q", out.String())
	}
}

func TestEmailRequiresPassword(t *testing.T) {
	c, _ := newTestCLI(t)
	setMailEnv(t, "8")
	err := run(c, "email", "--force", "--env-file", "")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v", err)
	}
}
