// Package navigator drives the day -> chapter -> subtopic drill-down over a
// content tree.
package navigator

import "errors"

// ErrNoDaySelected is returned when a chapter is selected before any day.
var ErrNoDaySelected = errors.New("navigator: no day selected")

// Selection is the three-level cursor into the tree. Empty fields are unset.
// Transitions return a new value and never touch the receiver.
type Selection struct {
	Day      string `json:"day,omitempty"`
	Chapter  string `json:"chapter,omitempty"`
	Subtopic string `json:"subtopic,omitempty"`
}

// SelectDay expands key, or collapses everything when key is already the
// selected day.
func (s Selection) SelectDay(key string) Selection {
	if s.Day == key {
		return Selection{}
	}
	return Selection{Day: key}
}

// SelectChapter expands key under the selected day, or collapses it when it is
// already selected. The subtopic is always cleared.
func (s Selection) SelectChapter(key string) (Selection, error) {
	if s.Day == "" {
		return s, ErrNoDaySelected
	}
	if s.Chapter == key {
		return Selection{Day: s.Day}, nil
	}
	return Selection{Day: s.Day, Chapter: key}, nil
}

// SelectSubtopic points at key. Selecting the same key again changes nothing.
func (s Selection) SelectSubtopic(key string) Selection {
	s.Subtopic = key
	return s
}

// IsZero reports whether nothing is selected.
func (s Selection) IsZero() bool {
	return s == Selection{}
}
