package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// AuthorListModel - Interactive profile selection
// =============================================================================

// AuthorListModel is the bubbletea model for picking one of several
// candidate profiles.
type AuthorListModel struct {
	Profiles []string
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewAuthorListModel creates a new author list model.
func NewAuthorListModel(profiles []string) AuthorListModel {
	return AuthorListModel{
		Profiles: profiles,
		Height:   15,
	}
}

func (m AuthorListModel) Init() tea.Cmd {
	return nil
}

func (m AuthorListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Profiles)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Profiles) == 0 {
				return m, nil
			}
			m.Selected = m.Profiles[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m AuthorListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Profile"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Profiles))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, fmt.Sprint(i + 1), profileID(m.Profiles[i]), m.Profiles[i]})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "PID", "Profile").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Profiles))))

	return b.String()
}

// profileID extracts the person id from a profile URL, e.g. "12/3456"
// from "https://dblp.org/pid/12/3456.html".
func profileID(href string) string {
	_, after, ok := strings.Cut(href, coauthor.ProfilePathPattern)
	if !ok {
		return "-"
	}
	return strings.TrimSuffix(after, ".html")
}
