// Package content holds the static study schedule: an ordered list of days,
// each with chapters, each with subtopics. The tree is read once and never
// mutated afterwards.
package content

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a day, chapter or subtopic key does not
	// resolve inside the tree.
	ErrNotFound = errors.New("content: not found")
	// ErrMalformed is returned when the serialized tree has the wrong shape.
	ErrMalformed = errors.New("content: malformed tree")
)

// Subtopic is a leaf of the tree: a title and a markdown-like body.
type Subtopic struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Chapter groups subtopics in the order they were authored.
type Chapter struct {
	Key       string      `json:"key"`
	Title     string      `json:"title"`
	Subtopics []*Subtopic `json:"subtopics"`
}

// Day is the top-level grouping of the schedule.
type Day struct {
	Key      string     `json:"key"`
	Chapters []*Chapter `json:"chapters"`
}

// Tree is the full schedule.
type Tree struct {
	Days []*Day `json:"days"`
}

// Stats counts the nodes at each level.
type Stats struct {
	Days      int
	Chapters  int
	Subtopics int
}

// Day returns the day with the given key.
func (t *Tree) Day(key string) (*Day, bool) {
	if t == nil {
		return nil, false
	}
	for _, d := range t.Days {
		if d.Key == key {
			return d, true
		}
	}
	return nil, false
}

// Chapter returns the chapter with the given key.
func (d *Day) Chapter(key string) (*Chapter, bool) {
	if d == nil {
		return nil, false
	}
	for _, c := range d.Chapters {
		if c.Key == key {
			return c, true
		}
	}
	return nil, false
}

// Subtopic returns the subtopic with the given key.
func (c *Chapter) Subtopic(key string) (*Subtopic, bool) {
	if c == nil {
		return nil, false
	}
	for _, s := range c.Subtopics {
		if s.Key == key {
			return s, true
		}
	}
	return nil, false
}

// Lookup resolves a full day/chapter/subtopic path.
func (t *Tree) Lookup(day, chapter, subtopic string) (*Subtopic, error) {
	d, ok := t.Day(day)
	if !ok {
		return nil, fmt.Errorf("%w: day %q", ErrNotFound, day)
	}
	c, ok := d.Chapter(chapter)
	if !ok {
		return nil, fmt.Errorf("%w: chapter %q in %q", ErrNotFound, chapter, day)
	}
	s, ok := c.Subtopic(subtopic)
	if !ok {
		return nil, fmt.Errorf("%w: subtopic %q in %q/%q", ErrNotFound, subtopic, day, chapter)
	}
	return s, nil
}

// Stats walks the tree and counts days, chapters and subtopics.
func (t *Tree) Stats() Stats {
	var s Stats
	if t == nil {
		return s
	}
	for _, d := range t.Days {
		s.Days++
		for _, c := range d.Chapters {
			s.Chapters++
			s.Subtopics += len(c.Subtopics)
		}
	}
	return s
}

// Walk calls fn for every subtopic in schedule order. Returning false stops
// the walk.
func (t *Tree) Walk(fn func(d *Day, c *Chapter, s *Subtopic) bool) {
	if t == nil {
		return
	}
	for _, d := range t.Days {
		for _, c := range d.Chapters {
			for _, s := range c.Subtopics {
				if !fn(d, c, s) {
					return
				}
			}
		}
	}
}
