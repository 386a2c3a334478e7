// Package navbar renders the tab strip and the current user.
package navbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/studyed/pkg/tui/theme"
)

const brand = "StudyEd"

// Model tracks which tab is active and who is logged in.
type Model struct {
	tabs   []string
	active int
	user   string
	width  int
	th     theme.NavTheme
}

func New(th theme.NavTheme, tabs []string) Model {
	return Model{tabs: tabs, th: th}
}

func (m *Model) SetActive(i int)     { m.active = i }
func (m *Model) SetUser(name string) { m.user = name }
func (m *Model) SetWidth(w int)      { m.width = w }

// View renders brand, numbered tabs and the user flush right.
func (m Model) View() string {
	parts := []string{m.th.Brand.Render(brand)}
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d %s", i+1, t)
		if i == m.active {
			parts = append(parts, m.th.ActiveTab.Render(label))
			continue
		}
		parts = append(parts, m.th.Tab.Render(label))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	right := m.th.User.Render(m.user)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
