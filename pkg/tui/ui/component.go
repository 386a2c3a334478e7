package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component defines the contract for reusable Bubble Tea widgets.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Page is a top-level screen reachable from the navbar.
type Page interface {
	Component
	// Title is the navbar label.
	Title() string
	// Help is the footer key hint.
	Help() string
	// Capturing reports whether the page is taking text input, in which case
	// global keys are not intercepted.
	Capturing() bool
}
