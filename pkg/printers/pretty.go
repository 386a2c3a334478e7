// Package printers renders StudyEd records for the command line.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyed/pkg/content"
	"tableflip.dev/studyed/pkg/navigator"
	"tableflip.dev/studyed/pkg/notes"
	"tableflip.dev/studyed/pkg/progress"
	"tableflip.dev/studyed/pkg/store"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) None() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Tree lists every day, chapter and subtopic, marking read subtopics.
func (pp *PrettyPrint) Tree(tree *content.Tree, read map[string]store.ReadMark) {
	stats := tree.Stats()
	pp.TitleWithCount("Schedule", stats.Subtopics, "subtopic")
	if stats.Days == 0 {
		pp.None()
		return
	}

	day := color.New(color.Bold)
	faint := color.New(color.Faint)
	done := color.New(color.FgGreen)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	for _, d := range tree.Days {
		tbl.AddRow(day.Sprint(navigator.DayLabel(d.Key)), "", "")
		for _, c := range d.Chapters {
			tbl.AddRow("  "+c.Key, c.Title, "")
			for _, s := range c.Subtopics {
				mark := faint.Sprint("·")
				if _, ok := read[store.PathKey(d.Key, c.Key, s.Key)]; ok {
					mark = done.Sprint("✓")
				}
				tbl.AddRow("    "+s.Key, s.Title, mark)
			}
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Progress prints the dashboard figures.
func (pp *PrettyPrint) Progress(user string, s progress.Summary) {
	pp.Title("Progress for " + user)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Read:", fmt.Sprintf("%d of %d subtopics (%d%%)", s.Read, s.Total, s.Percent))
	if !s.LastReadAt.IsZero() {
		tbl.AddRow("Last read:", s.LastReadAt.Format("2006-01-02 15:04"))
	}
	tbl.AddRow("Quiz attempts:", s.Attempts)
	if s.Latest != nil {
		tbl.AddRow("Latest score:", fmt.Sprintf("%d / %d", s.Latest.Score, s.Latest.Total))
	}
	if s.Best != nil {
		tbl.AddRow("Best score:", fmt.Sprintf("%d / %d", s.Best.Score, s.Best.Total))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	pp.TitleWithCount("Chapters learned", len(s.Learned), "chapter")
	if len(s.Learned) == 0 {
		pp.None()
		return
	}
	ch := uitable.New()
	ch.Separator = "  "
	for _, c := range s.Learned {
		ch.AddRow(strings.ToUpper(c.Day), c.Title)
	}
	_, _ = fmt.Fprintln(pp.out(), ch)
}

// Uploads lists accepted study notes.
func (pp *PrettyPrint) Uploads(uploads []store.Upload) {
	pp.TitleWithCount("Uploads", len(uploads), "file")
	if len(uploads) == 0 {
		pp.None()
		return
	}
	y := color.New(color.FgHiYellow, color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, u := range uploads {
		tbl.AddRow(y.Sprint(u.ID[:min(8, len(u.ID))]), u.Name, humanSize(u.Size), u.At.Format("2006-01-02 15:04"))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Notes lists study notes under course, with their text when full is set.
func (pp *PrettyPrint) Notes(course string, list []notes.Note, full bool) {
	pp.TitleWithCount("Study notes: "+course, len(list), "note")
	if len(list) == 0 {
		pp.None()
		return
	}
	topic := color.New(color.Bold)
	faint := color.New(color.Faint)
	tag := color.New(color.FgCyan)
	if !full {
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, n := range list {
			tbl.AddRow(n.At.Format(notes.DateLayout), n.Course, topic.Sprint(n.Topic))
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
		return
	}
	for _, n := range list {
		_, _ = topic.Fprint(pp.out(), n.Topic)
		_, _ = faint.Fprintf(pp.out(), "  %s, %s\n", n.Course, n.At.Format("Mon, Jan 2, 2006"))
		for _, l := range strings.Split(n.Content, "\n") {
			_, _ = fmt.Fprintln(pp.out(), "  "+l)
		}
		if len(n.Tags) > 0 {
			_, _ = tag.Fprintln(pp.out(), "  #"+strings.Join(n.Tags, " #"))
		}
		pp.NewLine()
	}
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
