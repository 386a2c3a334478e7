package navigator

// RowKind is the tree level of a row.
type RowKind int

const (
	DayRow RowKind = iota
	ChapterRow
	SubtopicRow
)

// Row is one visible line of the navigation list.
type Row struct {
	Kind     RowKind
	Key      string
	Label    string
	Depth    int
	Selected bool
}

// Rows lists every day, the chapters of the selected day and the subtopics of
// the selected chapter, in tree order. Levels that do not resolve contribute
// no rows.
func (n *Navigator) Rows() []Row {
	var rows []Row
	for _, d := range n.tree.Days {
		daySelected := d.Key == n.sel.Day
		rows = append(rows, Row{
			Kind:     DayRow,
			Key:      d.Key,
			Label:    DayLabel(d.Key),
			Selected: daySelected,
		})
		if !daySelected {
			continue
		}
		for _, c := range d.Chapters {
			chapterSelected := c.Key == n.sel.Chapter
			rows = append(rows, Row{
				Kind:     ChapterRow,
				Key:      c.Key,
				Label:    c.Title,
				Depth:    1,
				Selected: chapterSelected,
			})
			if !chapterSelected {
				continue
			}
			for _, s := range c.Subtopics {
				rows = append(rows, Row{
					Kind:     SubtopicRow,
					Key:      s.Key,
					Label:    s.Title,
					Depth:    2,
					Selected: s.Key == n.sel.Subtopic,
				})
			}
		}
	}
	return rows
}

// Activate applies the select operation matching the row, as a click on its
// label would.
func (n *Navigator) Activate(r Row) error {
	switch r.Kind {
	case DayRow:
		n.SelectDay(r.Key)
	case ChapterRow:
		return n.SelectChapter(r.Key)
	case SubtopicRow:
		n.SelectSubtopic(r.Key)
	}
	return nil
}
