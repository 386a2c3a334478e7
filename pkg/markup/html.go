package markup

import (
	"fmt"
	"html"
	"strings"
)

// HTML renders blocks as an HTML fragment, one element per line.
func HTML(blocks []Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		switch blk.Kind {
		case Break:
			b.WriteString("<br/>\n")
		case Heading:
			fmt.Fprintf(&b, "<h%d>%s</h%d>\n", blk.Level, html.EscapeString(blk.Text), blk.Level)
		case List:
			tag := "ul"
			if blk.Ordered {
				tag = "ol"
			}
			fmt.Fprintf(&b, "<%s>\n", tag)
			for _, item := range blk.Items {
				fmt.Fprintf(&b, "<li>%s</li>\n", htmlSpans(item))
			}
			fmt.Fprintf(&b, "</%s>\n", tag)
		case Paragraph:
			fmt.Fprintf(&b, "<p>%s</p>\n", htmlSpans(blk.Spans))
		}
	}
	return b.String()
}

func htmlSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		text := html.EscapeString(s.Text)
		switch s.Style {
		case Bold:
			b.WriteString("<strong>" + text + "</strong>")
		case Italic:
			b.WriteString("<em>" + text + "</em>")
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}
