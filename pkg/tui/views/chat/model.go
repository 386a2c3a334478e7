// Package chat is the study-assistant page.
package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	chatpkg "tableflip.dev/studyed/pkg/chat"
	"tableflip.dev/studyed/pkg/tui/events"
	"tableflip.dev/studyed/pkg/tui/theme"
	"tableflip.dev/studyed/pkg/tui/ui"
)

// ReplyDelay is how long the assistant "types" before answering.
const ReplyDelay = time.Second

// Model is the chat page: a transcript above a text input.
type Model struct {
	conv    *chatpkg.Conversation
	pending int
	delay   time.Duration

	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int

	th theme.ChatTheme
}

var _ ui.Page = (*Model)(nil)

func New(th theme.ChatTheme) *Model {
	in := textinput.New()
	in.Placeholder = "Ask about physics, chemistry, biology or maths…"
	in.Prompt = "› "
	m := &Model{
		conv:     chatpkg.NewConversation(),
		delay:    ReplyDelay,
		input:    in,
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		th:       th,
	}
	m.render()
	return m
}

func (m *Model) Title() string { return "Chat" }

func (m *Model) Help() string {
	if m.input.Focused() {
		return "enter send · esc stop typing"
	}
	return "i or enter type · pgup/pgdn scroll"
}

// Capturing is true while the input has focus.
func (m *Model) Capturing() bool { return m.input.Focused() }

// Conversation exposes the transcript.
func (m *Model) Conversation() *chatpkg.Conversation { return m.conv }

// SetDelay overrides ReplyDelay.
func (m *Model) SetDelay(d time.Duration) { m.delay = d }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) SetSize(width, height int) {
	m.width, m.height = max(width, 1), max(height, 1)
	m.input.SetWidth(max(width-4, 10))
	m.viewport.SetWidth(m.width)
	m.viewport.SetHeight(max(m.height-2, 1))
	m.render()
}

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case events.BotReplyMsg:
		m.conv.Deliver(msg.Message)
		if m.pending > 0 {
			m.pending--
		}
		m.render()
		return m, nil
	case tea.KeyPressMsg:
		if m.input.Focused() {
			return m, m.handleInputKey(msg)
		}
		switch msg.String() {
		case "i", "enter":
			return m, m.input.Focus()
		default:
			vp, cmd := m.viewport.Update(msg)
			m.viewport = vp
			return m, cmd
		}
	}
	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		return nil
	case "enter":
		reply, ok := m.conv.Send(m.input.Value())
		m.input.SetValue("")
		if !ok {
			return nil
		}
		m.pending++
		m.render()
		return events.ReplyAfter(m.delay, reply)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) render() {
	width := max(m.width, 20)
	var lines []string
	for _, msg := range m.conv.Messages() {
		if msg.Sender == chatpkg.FromUser {
			lines = append(lines, m.th.User.Render(wordwrap.String("You: "+msg.Text, width)))
		} else {
			lines = append(lines, m.th.Bot.Render(wordwrap.String("Assistant: "+msg.Text, width)))
		}
		lines = append(lines, "")
	}
	if m.pending > 0 {
		lines = append(lines, m.th.Pending.Render("Assistant is typing…"))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) View() string {
	return m.viewport.View() + "\n\n" + m.input.View()
}
