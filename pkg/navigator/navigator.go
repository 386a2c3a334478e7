package navigator

import (
	"strings"

	"tableflip.dev/studyed/pkg/content"
	"tableflip.dev/studyed/pkg/markup"
)

const (
	// Placeholder is shown when no subtopic resolves.
	Placeholder = "Select a subtopic to view its content."
	// Hint follows the placeholder.
	Hint = "Choose a day, then a chapter, then a subtopic from the sidebar."
)

// Navigator owns one Selection over an immutable tree.
type Navigator struct {
	tree *content.Tree
	sel  Selection
}

// New returns a navigator with nothing selected.
func New(tree *content.Tree) *Navigator {
	if tree == nil {
		tree = &content.Tree{}
	}
	return &Navigator{tree: tree}
}

// Tree returns the tree being navigated.
func (n *Navigator) Tree() *content.Tree { return n.tree }

// Selection returns the current selection.
func (n *Navigator) Selection() Selection { return n.sel }

// SelectDay toggles the day.
func (n *Navigator) SelectDay(key string) {
	n.sel = n.sel.SelectDay(key)
}

// SelectChapter toggles the chapter under the selected day.
func (n *Navigator) SelectChapter(key string) error {
	sel, err := n.sel.SelectChapter(key)
	if err != nil {
		return err
	}
	n.sel = sel
	return nil
}

// SelectSubtopic selects the subtopic under the selected chapter.
func (n *Navigator) SelectSubtopic(key string) {
	n.sel = n.sel.SelectSubtopic(key)
}

// Resolved is a selection that points at an existing subtopic.
type Resolved struct {
	Day      *content.Day
	Chapter  *content.Chapter
	Subtopic *content.Subtopic
}

// Current resolves the selection against the tree. Any level that is unset or
// missing from the tree yields ok == false.
func (n *Navigator) Current() (Resolved, bool) {
	if n.sel.Day == "" || n.sel.Chapter == "" || n.sel.Subtopic == "" {
		return Resolved{}, false
	}
	d, ok := n.tree.Day(n.sel.Day)
	if !ok {
		return Resolved{}, false
	}
	c, ok := d.Chapter(n.sel.Chapter)
	if !ok {
		return Resolved{}, false
	}
	s, ok := c.Subtopic(n.sel.Subtopic)
	if !ok {
		return Resolved{}, false
	}
	return Resolved{Day: d, Chapter: c, Subtopic: s}, true
}

// Render returns the blocks of the selected subtopic, or nil when the
// selection does not resolve.
func (n *Navigator) Render() []markup.Block {
	r, ok := n.Current()
	if !ok {
		return nil
	}
	return markup.Parse(r.Subtopic.Body)
}

// Breadcrumb describes the resolved selection as "DAY1 • Chapter title".
func (n *Navigator) Breadcrumb() string {
	r, ok := n.Current()
	if !ok {
		return ""
	}
	return DayLabel(r.Day.Key) + " • " + r.Chapter.Title
}

// DayLabel is how a day key is shown in the navigation list.
func DayLabel(key string) string {
	return strings.ToUpper(key)
}
