// Package teaui is the full-screen StudyEd interface: a navbar over five
// pages and a footer.
package teaui

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/studyed/pkg/app"
	"tableflip.dev/studyed/pkg/navigator"
	"tableflip.dev/studyed/pkg/tui/components/footer"
	"tableflip.dev/studyed/pkg/tui/components/navbar"
	"tableflip.dev/studyed/pkg/tui/events"
	"tableflip.dev/studyed/pkg/tui/theme"
	"tableflip.dev/studyed/pkg/tui/ui"
	chatview "tableflip.dev/studyed/pkg/tui/views/chat"
	homeview "tableflip.dev/studyed/pkg/tui/views/home"
	learnview "tableflip.dev/studyed/pkg/tui/views/learn"
	notesview "tableflip.dev/studyed/pkg/tui/views/notes"
	quizview "tableflip.dev/studyed/pkg/tui/views/quiz"
)

// Page indexes the router's pages.
type Page int

const (
	HomePage Page = iota
	LearnPage
	QuizPage
	ChatPage
	NotesPage
)

// Model routes input to the active page.
type Model struct {
	svc    *app.Service
	pages  []ui.Page
	active Page

	nav  navbar.Model
	foot footer.Model

	termWidth  int
	termHeight int
}

// New builds the router over svc. A nil svc runs without persistence.
func New(svc *app.Service) *Model {
	if svc == nil {
		svc = app.New(nil, nil, nil, nil)
	}
	th := theme.Default()

	m := &Model{svc: svc, foot: footer.New(th.Footer)}
	m.pages = []ui.Page{
		homeview.New(svc, th),
		learnview.New(navigator.New(svc.Tree), svc, th),
		quizview.New(svc.Bank, svc, th.Quiz),
		chatview.New(th.Chat),
		notesview.New(svc.Notes, th.Notes),
	}
	titles := make([]string, len(m.pages))
	for i, p := range m.pages {
		titles[i] = p.Title()
	}
	m.nav = navbar.New(th.Nav, titles)
	m.nav.SetUser(svc.DisplayName())
	m.switchTo(HomePage)
	return m
}

// Open brings page p to the front.
func (m *Model) Open(p Page) { m.switchTo(p) }

// Run launches the program in the alternate screen with start in front.
func Run(svc *app.Service, start Page) error {
	m := New(svc)
	m.Open(start)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.pages))
	for _, p := range m.pages {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

// Active reports the page in front.
func (m *Model) Active() Page { return m.active }

func (m *Model) page() ui.Page { return m.pages[m.active] }

func (m *Model) switchTo(p Page) {
	n := Page(len(m.pages))
	m.active = ((p % n) + n) % n
	m.nav.SetActive(int(m.active))
	m.foot.SetHelp(m.page().Help())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		m.applySizes()
		return m, nil

	case tea.KeyPressMsg:
		if handled, cmd := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
		cmd := m.forward(m.active, msg)
		m.foot.SetHelp(m.page().Help())
		return m, cmd

	case events.StatusMsg:
		if msg.Err != nil {
			m.svc.Log.Warn("ui error", "error", msg.Err)
			m.foot.SetError(msg.Err)
		} else {
			m.foot.SetStatus(msg.Text)
		}
		return m, nil

	case events.SubtopicOpenedMsg:
		m.foot.SetStatus("Reading " + msg.Subtopic)
		return m, nil

	case events.ProgressChangedMsg:
		return m, m.forward(HomePage, msg)

	case events.QuizSubmittedMsg:
		m.foot.SetStatus("Quiz saved.")
		m.foot.SetHelp(m.page().Help())
		return m, m.forward(HomePage, msg)

	case events.BotReplyMsg:
		return m, m.forward(ChatPage, msg)
	}

	return m, m.forward(m.active, msg)
}

func (m *Model) handleGlobalKey(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "tab":
		m.switchTo(m.active + 1)
		return true, nil
	case "shift+tab":
		m.switchTo(m.active - 1)
		return true, nil
	}
	if m.page().Capturing() {
		return false, nil
	}
	switch msg.String() {
	case "q":
		return true, tea.Quit
	case "1", "2", "3", "4", "5":
		m.switchTo(Page(msg.String()[0] - '1'))
		return true, nil
	}
	return false, nil
}

func (m *Model) forward(p Page, msg tea.Msg) tea.Cmd {
	_, cmd := m.pages[p].Update(msg)
	return cmd
}

// applySizes hands each page the space between navbar and footer.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	m.nav.SetWidth(m.termWidth)
	body := max(m.termHeight-4, 3)
	for _, p := range m.pages {
		p.SetSize(m.termWidth, body)
	}
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.nav.View(),
		"",
		m.page().View(),
		"",
		m.foot.View(),
	)
}
