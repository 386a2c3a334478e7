package markup

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Styles controls how Terminal paints blocks.
type Styles struct {
	H1     lipgloss.Style
	H2     lipgloss.Style
	H3     lipgloss.Style
	Text   lipgloss.Style
	Bold   lipgloss.Style
	Italic lipgloss.Style
	Marker lipgloss.Style
}

// DefaultStyles mirrors the indigo palette of the web version.
func DefaultStyles() Styles {
	return Styles{
		H1:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		H2:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		H3:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		Text:   lipgloss.NewStyle(),
		Bold:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("189")),
		Italic: lipgloss.NewStyle().Italic(true),
		Marker: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	}
}

// Terminal renders blocks with lipgloss styles, wrapped to width.
func Terminal(blocks []Block, width int, st Styles) string {
	var lines []string
	for _, blk := range blocks {
		switch blk.Kind {
		case Break:
			lines = append(lines, "")
		case Heading:
			style := st.H3
			switch blk.Level {
			case 1:
				style = st.H1
			case 2:
				style = st.H2
			}
			lines = append(lines, wrap(style.Render(blk.Text), width))
		case List:
			for i, item := range blk.Items {
				marker := "• "
				if blk.Ordered {
					marker = strconv.Itoa(i+1) + ". "
				}
				prefix := "  " + st.Marker.Render(marker)
				lines = append(lines, hangStyled(prefix, len([]rune(marker))+2, styledSpans(item, st), width))
			}
		case Paragraph:
			lines = append(lines, wrap(styledSpans(blk.Spans, st), width))
		}
	}
	return strings.Join(lines, "\n")
}

func styledSpans(spans []Span, st Styles) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Style {
		case Bold:
			b.WriteString(st.Bold.Render(s.Text))
		case Italic:
			b.WriteString(st.Italic.Render(s.Text))
		default:
			b.WriteString(st.Text.Render(s.Text))
		}
	}
	return b.String()
}

// hangStyled is hang for a prefix that carries escape codes; prefixWidth is
// its printable width.
func hangStyled(prefix string, prefixWidth int, s string, width int) string {
	inner := width - prefixWidth
	if width <= 0 || inner < 8 {
		return prefix + s
	}
	indent := strings.Repeat(" ", prefixWidth)
	parts := strings.Split(wrap(s, inner), "\n")
	for i := range parts {
		if i == 0 {
			parts[i] = prefix + parts[i]
			continue
		}
		parts[i] = indent + parts[i]
	}
	return strings.Join(parts, "\n")
}
