package quiz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	quizpkg "tableflip.dev/studyed/pkg/quiz"
	"tableflip.dev/studyed/pkg/store"
	"tableflip.dev/studyed/pkg/tui/events"
	"tableflip.dev/studyed/pkg/tui/theme"
)

type fakeSubmitter struct {
	saved []store.QuizResult
}

func (f *fakeSubmitter) SubmitAttempt(a *quizpkg.Attempt) (store.QuizResult, error) {
	a.Submit()
	r := a.Result(time.Unix(0, 0))
	f.saved = append(f.saved, r)
	return r, nil
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: s, Code: rune(s[0])}
}

func newTestModel(t *testing.T) (*Model, *fakeSubmitter) {
	t.Helper()
	bank, err := quizpkg.Default()
	if err != nil {
		t.Fatalf("bank: %v", err)
	}
	fs := &fakeSubmitter{}
	m := New(bank, fs, theme.Default().Quiz)
	m.SetSize(90, 80)
	return m, fs
}

func TestChooseAndSubmit(t *testing.T) {
	m, fs := newTestModel(t)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.Attempt().Choice(1); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	m.Update(key("j"))
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.Attempt().Choice(1); got != "b" {
		t.Fatalf("expected b after moving, got %q", got)
	}

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "(•) B. Newton") {
		t.Fatalf("expected chosen radio; view=%q", view)
	}
	if !strings.Contains(view, "Answered 1 of 5") {
		t.Fatalf("expected answered count; view=%q", view)
	}

	_, cmd := m.Update(key("s"))
	if cmd == nil {
		t.Fatalf("expected submit command")
	}
	if _, ok := cmd().(events.QuizSubmittedMsg); !ok {
		t.Fatalf("expected QuizSubmittedMsg")
	}
	if len(fs.saved) != 1 || fs.saved[0].Score != 1 {
		t.Fatalf("unexpected saved results %+v", fs.saved)
	}

	view = ansi.Strip(m.View())
	for _, want := range []string{"Your Score: 1 / 5", quizpkg.VerdictLow, "✓ Correct", "Explanation:"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q; view=%q", want, view)
		}
	}

	// Choices are locked once submitted.
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd = m.Update(key("s"))
	if cmd != nil || len(fs.saved) != 1 {
		t.Fatalf("expected second submit to be ignored")
	}

	m.Update(key("r"))
	if m.Attempt().Submitted() || m.Attempt().Choice(1) != "" {
		t.Fatalf("expected reset attempt")
	}
}
