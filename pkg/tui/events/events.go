// Package events defines messages passed between pages and the router.
package events

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/studyed/pkg/chat"
	"tableflip.dev/studyed/pkg/store"
)

// SubtopicOpenedMsg is emitted when a subtopic becomes the selection.
type SubtopicOpenedMsg struct {
	Day, Chapter, Subtopic string
}

// QuizSubmittedMsg reports a stored quiz result.
type QuizSubmittedMsg struct {
	Result store.QuizResult
}

// ProgressChangedMsg asks the dashboard to reload.
type ProgressChangedMsg struct{}

// StatusMsg sets the footer status line.
type StatusMsg struct {
	Text string
	Err  error
}

// BotReplyMsg delivers a pending chat reply.
type BotReplyMsg struct {
	Message chat.Message
}

// Status wraps a status line into a tea.Cmd.
func Status(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// Error wraps an error into a tea.Cmd.
func Error(err error) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Err: err} }
}

// ReplyAfter delivers m after d.
func ReplyAfter(d time.Duration, m chat.Message) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return BotReplyMsg{Message: m}
	})
}
