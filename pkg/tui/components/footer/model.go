// Package footer renders the help and status line.
package footer

import (
	"strings"

	"tableflip.dev/studyed/pkg/tui/theme"
)

// Model tracks footer help and status.
type Model struct {
	help   string
	status string
	err    error
	th     theme.FooterTheme
}

func New(th theme.FooterTheme) Model {
	return Model{th: th}
}

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) { m.help = help }

// SetStatus sets the status message and clears any error.
func (m *Model) SetStatus(status string) {
	m.status = status
	m.err = nil
}

// SetError replaces the status with err.
func (m *Model) SetError(err error) {
	m.err = err
	m.status = ""
}

// View renders the footer as a single line.
func (m Model) View() string {
	var segments []string
	if m.help != "" {
		segments = append(segments, m.th.Help.Render(m.help))
	}
	switch {
	case m.err != nil:
		segments = append(segments, m.th.Error.Render(m.err.Error()))
	case m.status != "":
		segments = append(segments, m.th.Status.Render(m.status))
	}
	if len(segments) == 0 {
		return " "
	}
	return strings.Join(segments, " │ ")
}
