package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/studyed/pkg/markup"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Nav     NavTheme
	Sidebar SidebarTheme
	Footer  FooterTheme
	Panel   PanelTheme
	Quiz    QuizTheme
	Chat    ChatTheme
	Notes   NotesTheme
	Content markup.Styles
}

// NavTheme styles the top navigation bar.
type NavTheme struct {
	Brand     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	User      lipgloss.Style
}

// SidebarTheme styles the day/chapter/subtopic tree.
type SidebarTheme struct {
	Day      lipgloss.Style
	Chapter  lipgloss.Style
	Subtopic lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Read     lipgloss.Style
	Heading  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// QuizTheme styles questions and their outcomes.
type QuizTheme struct {
	Subject     lipgloss.Style
	Prompt      lipgloss.Style
	Option      lipgloss.Style
	Chosen      lipgloss.Style
	Correct     lipgloss.Style
	Incorrect   lipgloss.Style
	Explanation lipgloss.Style
	Score       lipgloss.Style
}

// ChatTheme styles the transcript.
type ChatTheme struct {
	Bot     lipgloss.Style
	User    lipgloss.Style
	Pending lipgloss.Style
}

// NotesTheme styles the study-notes page.
type NotesTheme struct {
	Heading lipgloss.Style
	Count   lipgloss.Style
	Active  lipgloss.Style
	Cursor  lipgloss.Style
	Topic   lipgloss.Style
	Course  lipgloss.Style
	Meta    lipgloss.Style
	Tag     lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")
	green := lipgloss.Color("42")
	red := lipgloss.Color("203")

	return Theme{
		Nav: NavTheme{
			Brand:     lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1),
			Tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
			ActiveTab: lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true).Padding(0, 1),
			User:      lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Padding(0, 1),
		},
		Sidebar: SidebarTheme{
			Day:      lipgloss.NewStyle().Bold(true),
			Chapter:  lipgloss.NewStyle(),
			Subtopic: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Selected: lipgloss.NewStyle().Foreground(accent),
			Cursor:   lipgloss.NewStyle().Reverse(true),
			Read:     lipgloss.NewStyle().Foreground(green),
			Heading:  lipgloss.NewStyle().Foreground(muted).Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Error:  lipgloss.NewStyle().Foreground(red),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Quiz: QuizTheme{
			Subject:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
			Prompt:      lipgloss.NewStyle().Bold(true),
			Option:      lipgloss.NewStyle(),
			Chosen:      lipgloss.NewStyle().Foreground(accent),
			Correct:     lipgloss.NewStyle().Foreground(green),
			Incorrect:   lipgloss.NewStyle().Foreground(red),
			Explanation: lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Italic(true),
			Score:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		},
		Chat: ChatTheme{
			Bot:     lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
			User:    lipgloss.NewStyle().Foreground(accent),
			Pending: lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Notes: NotesTheme{
			Heading: lipgloss.NewStyle().Bold(true),
			Count:   lipgloss.NewStyle().Foreground(accent),
			Active:  lipgloss.NewStyle().Foreground(accent).Bold(true),
			Cursor:  lipgloss.NewStyle().Foreground(accent),
			Topic:   lipgloss.NewStyle().Bold(true),
			Course:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
			Meta:    lipgloss.NewStyle().Foreground(muted),
			Tag:     lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		},
		Content: markup.DefaultStyles(),
	}
}
