// Package quiz is the multiple-choice practice page.
package quiz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	quizpkg "tableflip.dev/studyed/pkg/quiz"
	"tableflip.dev/studyed/pkg/store"
	"tableflip.dev/studyed/pkg/tui/events"
	"tableflip.dev/studyed/pkg/tui/theme"
	"tableflip.dev/studyed/pkg/tui/ui"
)

// Submitter stores a submitted attempt.
type Submitter interface {
	SubmitAttempt(a *quizpkg.Attempt) (store.QuizResult, error)
}

type target struct {
	question int
	option   string
}

// Model is the quiz page. The cursor walks every option of every question.
type Model struct {
	attempt   *quizpkg.Attempt
	submitter Submitter
	targets   []target
	cursor    int

	viewport viewport.Model
	width    int
	height   int
	th       theme.QuizTheme
}

var _ ui.Page = (*Model)(nil)

func New(bank *quizpkg.Bank, s Submitter, th theme.QuizTheme) *Model {
	if bank == nil {
		bank = &quizpkg.Bank{}
	}
	m := &Model{
		attempt:   quizpkg.NewAttempt(bank),
		submitter: s,
		viewport:  viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		th:        th,
	}
	for _, q := range bank.Questions {
		for _, o := range q.Options {
			m.targets = append(m.targets, target{question: q.ID, option: o.ID})
		}
	}
	m.render()
	return m
}

func (m *Model) Title() string   { return "Quiz" }
func (m *Model) Capturing() bool { return false }
func (m *Model) Init() tea.Cmd   { return nil }

func (m *Model) Help() string {
	if m.attempt.Submitted() {
		return "j/k scroll · r try again"
	}
	return "j/k move · enter choose · s submit · r reset"
}

// Attempt exposes the round in progress.
func (m *Model) Attempt() *quizpkg.Attempt { return m.attempt }

func (m *Model) SetSize(width, height int) {
	m.width, m.height = max(width, 1), max(height, 1)
	m.viewport.SetWidth(max(width, 1))
	m.viewport.SetHeight(max(height, 1))
	m.render()
}

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	if m.attempt.Submitted() && key.String() != "r" {
		vp, cmd := m.viewport.Update(msg)
		m.viewport = vp
		return m, cmd
	}

	var cmd tea.Cmd
	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.targets)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", "space":
		if m.cursor < len(m.targets) {
			t := m.targets[m.cursor]
			if err := m.attempt.Choose(t.question, t.option); err != nil {
				return m, events.Error(err)
			}
		}
	case "s":
		cmd = m.submit()
	case "r":
		m.attempt.Reset()
		m.cursor = 0
		m.viewport.SetYOffset(0)
		cmd = events.Status("Quiz reset.")
	default:
		return m, nil
	}
	m.render()
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	if m.attempt.Submitted() {
		return nil
	}
	if m.submitter == nil {
		m.attempt.Submit()
		return nil
	}
	r, err := m.submitter.SubmitAttempt(m.attempt)
	if err != nil {
		return events.Error(err)
	}
	m.viewport.SetYOffset(0)
	return func() tea.Msg { return events.QuizSubmittedMsg{Result: r} }
}

func (m *Model) render() {
	width := max(m.width, 20)
	submitted := m.attempt.Submitted()
	cursorLine := 0

	var lines []string
	if submitted {
		lines = append(lines, m.scoreLines()...)
		lines = append(lines, "")
	}

	i := 0
	for n, q := range m.attempt.Bank().Questions {
		head := m.th.Subject.Render("["+q.Subject+"]") + " " + m.th.Prompt.Render(fmt.Sprintf("%d. %s", n+1, q.Prompt))
		lines = append(lines, wordwrap.String(head, width))

		choice := m.attempt.Choice(q.ID)
		for _, o := range q.Options {
			radio := "( )"
			if choice == o.ID {
				radio = "(•)"
			}
			line := fmt.Sprintf("  %s %s. %s", radio, strings.ToUpper(o.ID), o.Text)
			style := m.th.Option
			switch {
			case submitted && o.ID == q.Answer:
				style = m.th.Correct
				line += "  ✓ Correct"
			case submitted && o.ID == choice:
				style = m.th.Incorrect
				line += "  ✗ Incorrect"
			case !submitted && choice == o.ID:
				style = m.th.Chosen
			}
			if !submitted && i == m.cursor {
				line = "›" + line[1:]
				cursorLine = len(lines)
			}
			lines = append(lines, style.Render(line))
			i++
		}
		if submitted {
			lines = append(lines, m.th.Explanation.Render(wordwrap.String("  Explanation: "+q.Explanation, width)))
		}
		lines = append(lines, "")
	}

	if !submitted {
		lines = append(lines, fmt.Sprintf("Answered %d of %d · press s to submit", m.answered(), m.attempt.Total()))
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
	if !submitted {
		m.keepVisible(cursorLine)
	}
}

func (m *Model) scoreLines() []string {
	return []string{
		m.th.Score.Render(fmt.Sprintf("Your Score: %d / %d", m.attempt.Score(), m.attempt.Total())),
		m.attempt.Verdict(),
	}
}

func (m *Model) answered() int {
	n := 0
	for _, q := range m.attempt.Bank().Questions {
		if m.attempt.Choice(q.ID) != "" {
			n++
		}
	}
	return n
}

// keepVisible scrolls so line sits mid-screen.
func (m *Model) keepVisible(line int) {
	m.viewport.SetYOffset(max(line-m.height/2, 0))
}

func (m *Model) View() string {
	return m.viewport.View()
}
