package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/scholarnet/pkg/analysis"
)

// printSummary prints network statistics followed by a table of the top
// co-authors and their community.
func printSummary(w io.Writer, s analysis.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render("Network of "+s.Primary))
	printKeyValue(w, "Papers", strconv.Itoa(s.PrimaryPapers))
	printKeyValue(w, "Co-authors", strconv.Itoa(max(s.Authors-1, 0)))
	printKeyValue(w, "Links", strconv.Itoa(s.Collaborations))
	printKeyValue(w, "Density", fmt.Sprintf("%.3f", s.Density))
	if len(s.Communities) > 0 {
		printKeyValue(w, "Communities", fmt.Sprintf("%d (modularity %.3f)", len(s.Communities), s.Modularity))
	}

	if len(s.TopCoauthors) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, summaryTable(s).Render())
}

func summaryTable(s analysis.Summary) *table.Table {
	rows := make([][]string, 0, len(s.TopCoauthors))
	for i, co := range s.TopCoauthors {
		community := "-"
		if idx := s.CommunityOf(co.Name); idx >= 0 {
			community = strconv.Itoa(idx + 1)
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), co.Name, strconv.Itoa(co.Papers), community})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Co-author", "Papers", "Group").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 2 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		})
}
