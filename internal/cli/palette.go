package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/venooo/dailybouquet/pkg/errors"
	"github.com/venooo/dailybouquet/pkg/palette"
)

// paletteCommand shows the colors drawn for a seed.
func (c *CLI) paletteCommand() *cobra.Command {
	var today bool

	cmd := &cobra.Command{
		Use:   "palette [seed]",
		Short: "Show the color palette for a seed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.resolveSeeds(args, today)[0]
			if err := errors.ValidateSeed(s); err != nil {
				return err
			}
			p := palette.Generate(s)
			fmt.Fprintln(c.out.w, StyleTitle.Render("Palette")+" "+StyleDim.Render(s))
			fmt.Fprintln(c.out.w, paletteTable(p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&today, "today", false, "use today's date as the seed")
	return cmd
}

// paletteRows lists every role of p with its color.
func paletteRows(p palette.Palette) [][]string {
	var rows [][]string
	for i, hex := range p.FlowerColors {
		rows = append(rows, []string{"flower " + strconv.Itoa(i+1), hex})
	}
	return append(rows,
		[]string{"stem", p.Stem},
		[]string{"leaf", p.Leaf},
		[]string{"wrap", p.Wrap},
		[]string{"ribbon", p.Ribbon},
		[]string{"background", p.Background},
	)
}

func paletteTable(p palette.Palette) string {
	rows := paletteRows(p)
	for i := range rows {
		rows[i] = append(rows[i], swatch(rows[i][1]))
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Role", "Color", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return cellStyle.Foreground(colorGray)
			}
			return cellStyle
		}).
		Render() + "\n" + StyleDim.Render(fmt.Sprintf("  base hue %.0f°", p.BaseHue))
}
