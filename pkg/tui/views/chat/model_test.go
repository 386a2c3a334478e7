package chat

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	chatpkg "tableflip.dev/studyed/pkg/chat"
	"tableflip.dev/studyed/pkg/tui/events"
	"tableflip.dev/studyed/pkg/tui/theme"
)

func TestSendDeliversDelayedReply(t *testing.T) {
	m := New(theme.Default().Chat)
	m.SetSize(80, 20)
	m.SetDelay(time.Millisecond)

	if m.Capturing() {
		t.Fatalf("input should start blurred")
	}
	m.Update(tea.KeyPressMsg{Text: "i", Code: 'i'})
	if !m.Capturing() {
		t.Fatalf("expected input focus after i")
	}

	m.input.SetValue("   ")
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Fatalf("blank input should not send")
	}

	m.input.SetValue("tell me about cells")
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected reply command")
	}
	if got := len(m.Conversation().Messages()); got != 2 {
		t.Fatalf("expected greeting and user message, got %d", got)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Assistant is typing") {
		t.Fatalf("expected typing indicator; view=%q", view)
	}

	reply, ok := cmd().(events.BotReplyMsg)
	if !ok {
		t.Fatalf("expected BotReplyMsg")
	}
	m.Update(reply)

	msgs := m.Conversation().Messages()
	if len(msgs) != 3 || msgs[2].Sender != chatpkg.FromBot || msgs[2].ID != 3 {
		t.Fatalf("unexpected transcript %+v", msgs)
	}
	if !strings.HasPrefix(msgs[2].Text, "Cell division") {
		t.Fatalf("unexpected reply %q", msgs[2].Text)
	}
	if view := ansi.Strip(m.View()); strings.Contains(view, "Assistant is typing") {
		t.Fatalf("typing indicator should clear; view=%q", view)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.Capturing() {
		t.Fatalf("expected esc to release input")
	}
}
