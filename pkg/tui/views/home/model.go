// Package home is the dashboard page.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/studyed/pkg/progress"
	"tableflip.dev/studyed/pkg/store"
	"tableflip.dev/studyed/pkg/tui/components/panel"
	"tableflip.dev/studyed/pkg/tui/events"
	"tableflip.dev/studyed/pkg/tui/theme"
	"tableflip.dev/studyed/pkg/tui/ui"
)

// Source supplies the dashboard figures.
type Source interface {
	Summary(ctx context.Context) (progress.Summary, error)
	DisplayName() string
}

type summaryMsg struct {
	summary progress.Summary
	user    string
}

const barWidth = 24

// Model is the home page.
type Model struct {
	src     Source
	summary progress.Summary
	user    string
	loaded  bool
	width   int
	height  int
	th      theme.Theme
}

var _ ui.Page = (*Model)(nil)

func New(src Source, th theme.Theme) *Model {
	return &Model{src: src, th: th}
}

func (m *Model) Title() string   { return "Home" }
func (m *Model) Capturing() bool { return false }
func (m *Model) Help() string    { return "tab/1-5 switch page · q quit" }

func (m *Model) Init() tea.Cmd { return m.Reload() }

// Reload fetches fresh figures.
func (m *Model) Reload() tea.Cmd {
	if m.src == nil {
		return nil
	}
	src := m.src
	return func() tea.Msg {
		s, err := src.Summary(context.Background())
		if err != nil {
			return events.StatusMsg{Err: err}
		}
		return summaryMsg{summary: s, user: src.DisplayName()}
	}
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryMsg:
		m.summary = msg.summary
		m.user = msg.user
		m.loaded = true
	case events.ProgressChangedMsg, events.QuizSubmittedMsg:
		return m, m.Reload()
	}
	return m, nil
}

func (m *Model) View() string {
	if !m.loaded {
		return m.th.Footer.Help.Render("Loading dashboard…")
	}
	s := m.summary
	cols := max(m.width/2-1, 30)

	welcome := panel.New(m.th.Panel)
	welcome.SetWidth(cols)
	welcome.SetContent("Welcome, "+m.user, []string{
		fmt.Sprintf("%s %d%%", Bar(s.Percent, barWidth), s.Percent),
		fmt.Sprintf("%d of %d subtopics read", s.Read, s.Total),
		lastRead(s),
	})

	learned := panel.New(m.th.Panel)
	learned.SetWidth(cols)
	learned.SetContent("Chapters", chapterLines(s))

	scores := panel.New(m.th.Panel)
	scores.SetWidth(cols)
	scores.SetContent("Quiz", quizLines(s))

	left, _ := welcome.View()
	right, _ := scores.View()
	bottom, _ := learned.View()
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		bottom,
	)
}

// Bar draws a fixed-width progress bar for percent.
func Bar(percent, width int) string {
	percent = min(max(percent, 0), 100)
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func lastRead(s progress.Summary) string {
	if s.LastReadAt.IsZero() {
		return "Nothing read yet. Open the Learn tab to start."
	}
	return "Last read " + s.LastReadAt.Format("Jan 2 15:04")
}

func chapterLines(s progress.Summary) []string {
	if len(s.Chapters) == 0 {
		return []string{"No chapters."}
	}
	lines := make([]string, 0, len(s.Chapters))
	for _, c := range s.Chapters {
		mark := "  "
		if c.Complete {
			mark = "✓ "
		}
		lines = append(lines, fmt.Sprintf("%s%s %s (%d/%d)", mark, strings.ToUpper(c.Day), c.Title, c.Read, c.Total))
	}
	return lines
}

func quizLines(s progress.Summary) []string {
	if s.Attempts == 0 {
		return []string{"No attempts yet."}
	}
	return []string{
		fmt.Sprintf("Attempts: %d", s.Attempts),
		"Latest:   " + score(s.Latest),
		"Best:     " + score(s.Best),
	}
}

func score(r *store.QuizResult) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%d / %d", r.Score, r.Total)
}
