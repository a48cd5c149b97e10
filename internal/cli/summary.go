package cli

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/facetplot/pkg/describe"
	"github.com/matzehuels/facetplot/pkg/style"
)

// summaryCommand creates the summary command.
func (c *CLI) summaryCommand() *cobra.Command {
	var (
		f           inputFlags
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "summary <input-file>",
		Short: "Print per-category statistics of a wide table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd, args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			tidy, err := runner.Reshape(cmd.Context(), opts)
			if err != nil {
				return err
			}

			colors := style.Merge(style.DefaultAssignment(), opts.Styles).Colors
			if interactive {
				m := newSummaryModel(tidy, colors)
				_, err := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
				return err
			}

			_, err = c.out.Write([]byte(renderSummaryTable(describe.Summarize(tidy), colors) + "\n"))
			return err
		},
	}

	f.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse categories interactively")

	return cmd
}

// renderSummaryTable formats summaries as a bordered table. colors maps
// categories to their configured color; unstyled categories show a dash.
func renderSummaryTable(sums []describe.Summary, colors map[string]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(sums))
	for _, s := range sums {
		rows = append(rows, []string{
			s.Category,
			colorCell(colors[s.Category]),
			strconv.Itoa(s.N),
			strconv.Itoa(s.Missing),
			formatNumber(s.Mean),
			formatNumber(s.StdDev),
			formatNumber(s.Min),
			formatNumber(s.Median),
			formatNumber(s.Max),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Category", "Color", "N", "NA", "Mean", "SD", "Min", "Median", "Max").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1: // header
				return headerStyle
			case col == 0:
				return StyleValue
			case col >= 2:
				return StyleNumber
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

// colorCell renders a swatch followed by the color name.
func colorCell(name string) string {
	if name == "" {
		return "—"
	}
	c, err := style.ParseColor(name)
	if err != nil {
		return name
	}
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Hex(c))).Render("■")
	return swatch + " " + name
}
