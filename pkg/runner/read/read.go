package read

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/studyed/pkg/content"
	"tableflip.dev/studyed/pkg/markup"
	"tableflip.dev/studyed/pkg/navigator"
)

// Marker records that a subtopic was read.
type Marker interface {
	MarkRead(day, chapter, subtopic string) error
}

// Read prints one subtopic.
type Read struct {
	Tree     *content.Tree
	Marker   Marker
	Day      string
	Chapter  string
	Subtopic string

	// Format is text, html or json.
	Format string
	Width  int
	Styled bool
	Out    io.Writer
}

type document struct {
	Day      string         `json:"day"`
	Chapter  string         `json:"chapter"`
	Subtopic string         `json:"subtopic"`
	Title    string         `json:"title"`
	Blocks   []markup.Block `json:"blocks"`
}

func (n *Read) Do(_ context.Context) error {
	if n.Tree == nil {
		return errors.New("can not read, no content")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	nav := navigator.New(n.Tree)
	nav.SelectDay(n.Day)
	if err := nav.SelectChapter(n.Chapter); err != nil {
		return err
	}
	nav.SelectSubtopic(n.Subtopic)
	r, ok := nav.Current()
	if !ok {
		_, err := n.Tree.Lookup(n.Day, n.Chapter, n.Subtopic)
		return err
	}
	blocks := nav.Render()

	switch n.Format {
	case "html":
		_, _ = fmt.Fprint(out, markup.HTML(blocks))
	case "json":
		b, err := json.MarshalIndent(document{
			Day:      r.Day.Key,
			Chapter:  r.Chapter.Key,
			Subtopic: r.Subtopic.Key,
			Title:    r.Subtopic.Title,
			Blocks:   blocks,
		}, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
	default:
		if n.Styled {
			st := markup.DefaultStyles()
			_, _ = fmt.Fprintln(out, st.H3.Render(nav.Breadcrumb()))
			_, _ = fmt.Fprintln(out, markup.Terminal(blocks, n.Width, st))
		} else {
			_, _ = fmt.Fprintln(out, nav.Breadcrumb())
			_, _ = fmt.Fprintln(out, "")
			_, _ = fmt.Fprint(out, markup.PlainText(blocks, n.Width))
		}
	}

	if n.Marker != nil {
		return n.Marker.MarkRead(r.Day.Key, r.Chapter.Key, r.Subtopic.Key)
	}
	return nil
}
