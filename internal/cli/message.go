package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/venooo/dailybouquet/pkg/errors"
	"github.com/venooo/dailybouquet/pkg/message"
)

// messageCommand prints the note for a seed.
func (c *CLI) messageCommand() *cobra.Command {
	var (
		today   bool
		classic bool
		asJSON  bool
		hour    = c.now().Hour()
	)

	cmd := &cobra.Command{
		Use:   "message [seed]",
		Short: "Print the love note for a seed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.resolveSeeds(args, today)[0]
			if err := errors.ValidateSeed(s); err != nil {
				return err
			}
			if hour < 0 || hour > 23 {
				return errors.New(errors.ErrCodeInvalidInput, "hour must be 0-23, got %d", hour)
			}

			m := message.Generate(s, hour)
			if classic {
				m = message.Classic(s)
			}
			if asJSON {
				data, err := json.MarshalIndent(m, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(c.out.w, string(data))
				return nil
			}
			c.printMessage(s, m)
			return nil
		},
	}

	cmd.Flags().BoolVar(&today, "today", false, "use today's date as the seed")
	cmd.Flags().IntVar(&hour, "hour", hour, "hour of day (0-23), selects morning or evening phrasing")
	cmd.Flags().BoolVar(&classic, "classic", false, "use the shorter classic note")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

var noteStyle = lipgloss.NewStyle().Width(64).PaddingLeft(2)

func (c *CLI) printMessage(seed string, m message.Message) {
	fmt.Fprintln(c.out.w, StyleTitle.Render(m.Subject))
	c.out.detail("seed %s", seed)
	c.out.newline()
	for _, p := range m.Paragraphs() {
		fmt.Fprintln(c.out.w, noteStyle.Render(p))
		c.out.newline()
	}
	fmt.Fprintln(c.out.w, "  "+StyleSignature.Render(m.Signature))
}
