package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/venooo/dailybouquet/pkg/bouquet"
	"github.com/venooo/dailybouquet/pkg/errors"
	"github.com/venooo/dailybouquet/pkg/message"
	"github.com/venooo/dailybouquet/pkg/pipeline"
	"github.com/venooo/dailybouquet/pkg/seed"
)

var (
	previewHelpStyle = lipgloss.NewStyle().Foreground(colorDim)
	previewNoteStyle = lipgloss.NewStyle().Width(60).Foreground(colorWhite)
)

// previewCommand opens the interactive preview.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		today bool
		dir   string
	)

	cmd := &cobra.Command{
		Use:   "preview [seed]",
		Short: "Browse bouquets interactively",
		Long: `Preview shows the palette, composition and note for a seed.

Keys: n new random seed, t today's bouquet, s save SVG, q quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.resolveSeeds(args, today)[0]
			if err := errors.ValidateSeed(s); err != nil {
				return err
			}
			m := NewPreviewModel(s, c.now)
			m.Dir = dir
			_, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&today, "today", false, "start with today's bouquet")
	cmd.Flags().StringVar(&dir, "dir", ".", "directory for saved SVG files")
	return cmd
}

// =============================================================================
// PreviewModel - Interactive bouquet browser
// =============================================================================

// PreviewModel is the bubbletea model for the bouquet preview.
type PreviewModel struct {
	Seed    string
	Bouquet *bouquet.Bouquet
	Message message.Message
	Dir     string
	Status  string
	Width   int

	now func() time.Time
}

// savedMsg reports the outcome of writing an SVG.
type savedMsg struct {
	path string
	err  error
}

// NewPreviewModel creates a preview showing s.
func NewPreviewModel(s string, now func() time.Time) PreviewModel {
	if now == nil {
		now = time.Now
	}
	m := PreviewModel{Dir: ".", Width: 80, now: now}
	return m.load(s)
}

func (m PreviewModel) load(s string) PreviewModel {
	m.Seed = s
	m.Bouquet = bouquet.Generate(s)
	m.Message = message.Generate(s, m.now().Hour())
	return m
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n":
			m = m.load(seed.Random())
			m.Status = ""
		case "t":
			m = m.load(seed.ForDate(m.now()))
			m.Status = ""
		case "s":
			return m, saveSVG(m.Dir, m.Bouquet)
		}
	case savedMsg:
		if msg.err != nil {
			m.Status = StyleWarning.Render("save failed: " + msg.err.Error())
		} else {
			m.Status = StyleSuccess.Render(iconSuccess + " saved " + msg.path)
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
	}
	return m, nil
}

func saveSVG(dir string, b *bouquet.Bouquet) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, pipeline.FileName(b.Seed, pipeline.FormatSVG))
		err := os.WriteFile(path, []byte(b.SVG), 0o644)
		return savedMsg{path: path, err: err}
	}
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Bouquet") + " " + StyleValue.Render(m.Seed))
	b.WriteString("\n\n")

	var swatches []string
	for _, hex := range m.Bouquet.Palette.FlowerColors {
		swatches = append(swatches, swatch(hex))
	}
	swatches = append(swatches, " ", swatch(m.Bouquet.Palette.Leaf), swatch(m.Bouquet.Ribbon))
	b.WriteString(strings.Join(swatches, " "))
	b.WriteString("\n\n")

	b.WriteString(compositionTable(m.Bouquet))
	b.WriteString("\n\n")

	b.WriteString(StyleTitle.Render(m.Message.Subject))
	b.WriteString("\n")
	width := min(60, max(20, m.Width-4))
	for _, p := range m.Message.Paragraphs() {
		b.WriteString(previewNoteStyle.Width(width).Render(p))
		b.WriteString("\n")
	}
	b.WriteString(StyleSignature.Render(m.Message.Signature))
	b.WriteString("\n\n")

	if m.Status != "" {
		b.WriteString(m.Status)
		b.WriteString("\n")
	}
	b.WriteString(previewHelpStyle.Render("n new  t today  s save svg  q quit"))
	return b.String()
}

// compositionCounts tallies placements by kind name.
func compositionCounts(b *bouquet.Bouquet) map[string]int {
	counts := make(map[string]int)
	for _, group := range [][]bouquet.Placement{b.Placements, b.Foliage, b.Fauna} {
		for _, p := range group {
			counts[p.Kind.String()]++
		}
	}
	return counts
}

func compositionTable(b *bouquet.Bouquet) string {
	counts := compositionCounts(b)
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if counts[kinds[i]] != counts[kinds[j]] {
			return counts[kinds[i]] > counts[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	rows := make([][]string, len(kinds))
	for i, k := range kinds {
		rows[i] = []string{k, fmt.Sprint(counts[k])}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Count").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}
