package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/facetplot/pkg/describe"
	fptable "github.com/matzehuels/facetplot/pkg/table"
)

// List styles
var (
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

const histogramBins = 12

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// =============================================================================
// SummaryModel - Interactive category browser
// =============================================================================

// SummaryModel is the bubbletea model for browsing per-category statistics.
// The table lists every category; the pane below it shows box statistics
// and a histogram of the selected one.
type SummaryModel struct {
	Summaries []describe.Summary
	Boxes     []describe.Box
	Values    [][]float64
	Colors    map[string]string
	Cursor    int
	Height    int
	Offset    int
}

// newSummaryModel creates a browser over the categories of t.
func newSummaryModel(t *fptable.TidyTable, colors map[string]string) SummaryModel {
	m := SummaryModel{
		Summaries: describe.Summarize(t),
		Colors:    colors,
		Height:    10,
	}
	for _, cat := range t.Categories {
		v := t.Values(cat)
		m.Values = append(m.Values, v)
		m.Boxes = append(m.Boxes, describe.BoxStats(v))
	}
	return m
}

func (m SummaryModel) Init() tea.Cmd {
	return nil
}

func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Summaries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = max(len(m.Summaries)-1, 0)
			m.Offset = max(m.Cursor-m.Height+1, 0)
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 16
		if m.Height < 3 {
			m.Height = 3
		}
	}
	return m, nil
}

func (m SummaryModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Categories"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Summaries) == 0 {
		b.WriteString(listDimStyle.Render("  no categories"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Summaries))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := m.Summaries[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, s.Category, colorCell(m.Colors[s.Category]),
			strconv.Itoa(s.N), formatNumber(s.Mean), formatNumber(s.Median)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Category", "Color", "N", "Mean", "Median").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(m.detail())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Summaries))))

	return b.String()
}

// detail renders the box statistics and histogram of the selected category.
func (m SummaryModel) detail() string {
	s := m.Summaries[m.Cursor]
	box := m.Boxes[m.Cursor]

	lines := []string{
		StyleTitle.Render(s.Category),
		fmt.Sprintf("%s %s   %s %s   %s %s",
			StyleDim.Render("q1"), StyleNumber.Render(formatNumber(box.Q1)),
			StyleDim.Render("median"), StyleNumber.Render(formatNumber(box.Median)),
			StyleDim.Render("q3"), StyleNumber.Render(formatNumber(box.Q3))),
		fmt.Sprintf("%s %s … %s   %s %s   %s %d",
			StyleDim.Render("whiskers"), StyleNumber.Render(formatNumber(box.LowWhisker)),
			StyleNumber.Render(formatNumber(box.HiWhisker)),
			StyleDim.Render("sd"), StyleNumber.Render(formatNumber(s.StdDev)),
			StyleDim.Render("missing"), s.Missing),
		StyleHighlight.Render(sparkline(m.Values[m.Cursor], histogramBins)),
	}
	return detailBoxStyle.Render(strings.Join(lines, "\n"))
}

// sparkline draws a histogram of values as a row of block characters.
func sparkline(values []float64, bins int) string {
	_, counts := describe.Histogram(values, bins)
	if len(counts) == 0 {
		return ""
	}
	peak := 0.0
	for _, c := range counts {
		peak = max(peak, c)
	}
	out := make([]rune, len(counts))
	for i, c := range counts {
		idx := 0
		if peak > 0 {
			idx = int(c / peak * float64(len(sparkBlocks)-1))
		}
		out[i] = sparkBlocks[idx]
	}
	return string(out)
}
