package markup

import (
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// PlainText renders blocks without styling, wrapped to width when width > 0.
// Used when output is not a terminal.
func PlainText(blocks []Block, width int) string {
	var lines []string
	for _, blk := range blocks {
		switch blk.Kind {
		case Break:
			lines = append(lines, "")
		case Heading:
			lines = append(lines, blk.Text)
			switch blk.Level {
			case 1:
				lines = append(lines, strings.Repeat("=", len([]rune(blk.Text))))
			case 2:
				lines = append(lines, strings.Repeat("-", len([]rune(blk.Text))))
			}
		case List:
			for i, item := range blk.Items {
				marker := "• "
				if blk.Ordered {
					marker = strconv.Itoa(i+1) + ". "
				}
				lines = append(lines, hang("  "+marker, Text(item), width))
			}
		case Paragraph:
			lines = append(lines, wrap(Text(blk.Spans), width))
		}
	}
	return strings.Join(lines, "\n")
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// hang wraps s so that the first line starts with prefix and continuation
// lines are indented to align under it.
func hang(prefix, s string, width int) string {
	return hangStyled(prefix, len([]rune(prefix)), s, width)
}
