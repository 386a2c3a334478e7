// Package notes is the study-notes page: a course filter beside the notes,
// each of which expands to show its text.
package notes

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	notespkg "tableflip.dev/studyed/pkg/notes"
	"tableflip.dev/studyed/pkg/tui/theme"
	"tableflip.dev/studyed/pkg/tui/ui"
)

// courseWidth is the width of the course column.
const courseWidth = 18

// Model is the notes page. The cursor walks the notes under the filter.
type Model struct {
	shelf  *notespkg.Shelf
	cursor int

	viewport viewport.Model
	width    int
	height   int
	th       theme.NotesTheme
}

var _ ui.Page = (*Model)(nil)

func New(bank *notespkg.Bank, th theme.NotesTheme) *Model {
	m := &Model{
		shelf:    notespkg.NewShelf(bank),
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		th:       th,
	}
	m.render()
	return m
}

func (m *Model) Title() string   { return "Notes" }
func (m *Model) Capturing() bool { return false }
func (m *Model) Init() tea.Cmd   { return nil }
func (m *Model) Help() string {
	return "h/l course · j/k move · enter open/close"
}

// Shelf exposes the browsing state.
func (m *Model) Shelf() *notespkg.Shelf { return m.shelf }

func (m *Model) SetSize(width, height int) {
	m.width, m.height = max(width, 1), max(height, 1)
	m.viewport.SetWidth(max(width-courseWidth-3, 20))
	m.viewport.SetHeight(m.height)
	m.render()
}

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	visible := m.shelf.Notes()
	switch key.String() {
	case "h", "left":
		m.shelf.CycleCourse(-1)
		m.cursor = 0
	case "l", "right":
		m.shelf.CycleCourse(1)
		m.cursor = 0
	case "j", "down":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", "space":
		if m.cursor < len(visible) {
			m.shelf.Toggle(visible[m.cursor].ID)
		}
	case "pgdown", "pgup", "ctrl+d", "ctrl+u":
		vp, cmd := m.viewport.Update(msg)
		m.viewport = vp
		return m, cmd
	default:
		return m, nil
	}
	m.render()
	return m, nil
}

func (m *Model) render() {
	width := max(m.width-courseWidth-3, 20)
	visible := m.shelf.Notes()

	lines := []string{
		m.th.Heading.Render("Study Notes") + "  " + m.th.Count.Render(notespkg.CountLabel(len(visible))),
		"",
	}
	cursorLine := 0
	if len(visible) == 0 {
		lines = append(lines, "No notes found", m.th.Meta.Render("Nothing filed under "+m.shelf.Course()+" yet."))
	}
	for i, n := range visible {
		open := m.shelf.Expanded(n.ID)
		arrow := "▼"
		if open {
			arrow = "▲"
		}
		head := arrow + " " + m.th.Topic.Render(n.Topic) + " " + m.th.Course.Render("["+n.Course+"]")
		if i == m.cursor {
			head = m.th.Cursor.Render("›") + " " + head
			cursorLine = len(lines)
		} else {
			head = "  " + head
		}
		lines = append(lines, head, "    "+m.th.Meta.Render(n.At.Format("Mon, Jan 2, 2006")))
		if open {
			for _, l := range strings.Split(n.Content, "\n") {
				lines = append(lines, indent(wordwrap.String(l, width-4), "    "))
			}
			if len(n.Tags) > 0 {
				tags := make([]string, len(n.Tags))
				for j, t := range n.Tags {
					tags[j] = "#" + t
				}
				lines = append(lines, "    "+m.th.Tag.Render(strings.Join(tags, " ")))
			}
		}
		lines = append(lines, "")
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.SetYOffset(max(cursorLine-m.height/2, 0))
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

func (m *Model) courses() string {
	cs := m.shelf.Bank().Courses()
	lines := make([]string, 0, len(cs)+2)
	lines = append(lines, m.th.Heading.Render("Courses"), "")
	for _, c := range cs {
		if c == m.shelf.Course() {
			lines = append(lines, m.th.Active.Render("▸ "+c))
			continue
		}
		lines = append(lines, "  "+c)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(courseWidth).Render(m.courses()),
		" │ ",
		m.viewport.View(),
	)
}
