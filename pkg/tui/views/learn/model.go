// Package learn is the reading page: the day/chapter/subtopic sidebar and the
// selected subtopic's content.
package learn

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/studyed/pkg/markup"
	"tableflip.dev/studyed/pkg/navigator"
	"tableflip.dev/studyed/pkg/store"
	"tableflip.dev/studyed/pkg/tui/events"
	"tableflip.dev/studyed/pkg/tui/theme"
	"tableflip.dev/studyed/pkg/tui/ui"
)

// Progress is the reading-progress store the page reports to.
type Progress interface {
	MarkRead(day, chapter, subtopic string) error
	ReadSet(ctx context.Context) (map[string]store.ReadMark, error)
}

type readSetMsg struct {
	set map[string]store.ReadMark
}

// Model is the learn page.
type Model struct {
	nav      *navigator.Navigator
	progress Progress
	read     map[string]bool

	cursor int
	offset int

	viewport viewport.Model
	width    int
	height   int
	side     int
	content  int

	th theme.Theme
}

var _ ui.Page = (*Model)(nil)

func New(nav *navigator.Navigator, p Progress, th theme.Theme) *Model {
	m := &Model{
		nav:      nav,
		progress: p,
		read:     map[string]bool{},
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		th:       th,
	}
	m.renderContent()
	return m
}

func (m *Model) Title() string   { return "Learn" }
func (m *Model) Capturing() bool { return false }
func (m *Model) Help() string {
	return "j/k move · enter open/close · pgup/pgdn scroll"
}

// Init loads read marks.
func (m *Model) Init() tea.Cmd {
	if m.progress == nil {
		return nil
	}
	p := m.progress
	return func() tea.Msg {
		set, err := p.ReadSet(context.Background())
		if err != nil {
			return events.StatusMsg{Err: err}
		}
		return readSetMsg{set: set}
	}
}

// SetSize splits the width between the sidebar and the content.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.side = width / 3
	if m.side < 24 {
		m.side = 24
	}
	if m.side > 40 {
		m.side = 40
	}
	right := width - m.side - 3
	if right < 20 {
		right = 20
	}
	m.content = right
	m.viewport.SetWidth(right)
	m.viewport.SetHeight(max(height, 1))
	m.clamp()
	m.renderContent()
}

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case readSetMsg:
		m.read = make(map[string]bool, len(msg.set))
		for k := range msg.set {
			m.read[k] = true
		}
		return m, nil
	case tea.KeyPressMsg:
		cmd := m.handleKey(msg)
		m.clamp()
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	rows := m.nav.Rows()
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(len(rows)-1, 0)
	case "enter", "space":
		if m.cursor < len(rows) {
			return m.activate(rows[m.cursor])
		}
	case "pgdown", "pgup", "ctrl+d", "ctrl+u":
		vp, cmd := m.viewport.Update(msg)
		m.viewport = vp
		return cmd
	}
	return nil
}

func (m *Model) activate(r navigator.Row) tea.Cmd {
	before := m.nav.Selection()
	if err := m.nav.Activate(r); err != nil {
		return events.Error(err)
	}
	m.follow(r)
	m.renderContent()

	after := m.nav.Selection()
	if r.Kind != navigator.SubtopicRow || before == after {
		return nil
	}
	return m.markRead(after.Day, after.Chapter, after.Subtopic)
}

// follow keeps the cursor on the activated row after the list reshapes.
func (m *Model) follow(r navigator.Row) {
	for i, row := range m.nav.Rows() {
		if row.Kind == r.Kind && row.Key == r.Key {
			m.cursor = i
			return
		}
	}
	m.cursor = 0
}

func (m *Model) markRead(day, chapter, subtopic string) tea.Cmd {
	m.read[store.PathKey(day, chapter, subtopic)] = true
	opened := func() tea.Msg {
		return events.SubtopicOpenedMsg{Day: day, Chapter: chapter, Subtopic: subtopic}
	}
	if m.progress == nil {
		return opened
	}
	p := m.progress
	return tea.Batch(opened, func() tea.Msg {
		if err := p.MarkRead(day, chapter, subtopic); err != nil {
			return events.StatusMsg{Err: err}
		}
		return events.ProgressChangedMsg{}
	})
}

func (m *Model) renderContent() {
	width := m.content
	r, ok := m.nav.Current()
	if !ok {
		m.viewport.SetContent(m.th.Content.Text.Render(navigator.Placeholder) + "\n\n" +
			m.th.Footer.Help.Render(navigator.Hint))
		m.viewport.SetYOffset(0)
		return
	}
	var b strings.Builder
	b.WriteString(m.th.Sidebar.Heading.Render(m.nav.Breadcrumb()))
	b.WriteString("\n")
	b.WriteString(m.th.Content.H1.Render(r.Subtopic.Title))
	b.WriteString("\n\n")
	b.WriteString(markup.Terminal(m.nav.Render(), width, m.th.Content))
	m.viewport.SetContent(b.String())
	m.viewport.SetYOffset(0)
}

func (m *Model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(m.side).Render(m.sidebar()),
		" │ ",
		m.viewport.View(),
	)
}

func (m *Model) sidebar() string {
	rows := m.nav.Rows()
	if len(rows) == 0 {
		return m.th.Footer.Help.Render("No content loaded.")
	}
	end := min(m.offset+max(m.height, 1), len(rows))

	sel := m.nav.Selection()
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		line := m.rowLine(rows[i], sel)
		if i == m.cursor {
			line = m.th.Sidebar.Cursor.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// clamp keeps the cursor on a row and the sidebar window around the cursor.
func (m *Model) clamp() {
	n := len(m.nav.Rows())
	m.cursor = max(min(m.cursor, n-1), 0)
	visible := max(m.height, 1)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	m.offset = max(min(m.offset, n-1), 0)
}

func (m *Model) rowLine(r navigator.Row, sel navigator.Selection) string {
	indent := strings.Repeat("  ", r.Depth)
	switch r.Kind {
	case navigator.DayRow, navigator.ChapterRow:
		marker := "▸ "
		if r.Selected {
			marker = "▾ "
		}
		style := m.th.Sidebar.Chapter
		if r.Kind == navigator.DayRow {
			style = m.th.Sidebar.Day
		}
		return indent + marker + style.Render(r.Label)
	default:
		marker := "• "
		style := m.th.Sidebar.Subtopic
		if m.read[store.PathKey(sel.Day, sel.Chapter, r.Key)] {
			marker = m.th.Sidebar.Read.Render("✓ ")
		}
		if r.Selected {
			style = m.th.Sidebar.Selected
		}
		return indent + marker + style.Render(r.Label)
	}
}
