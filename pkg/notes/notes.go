// Package notes is the bundled study-notes shelf, browsed by course.
package notes

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed assets/notes.json
var bundled []byte

// All is the course filter that matches every note.
const All = "All"

// DateLayout is the layout of Note.Date.
const DateLayout = "2006-01-02"

var ErrUnknownCourse = errors.New("notes: unknown course")

// Note is one study note.
type Note struct {
	ID      int       `yaml:"id" json:"id"`
	Date    string    `yaml:"date" json:"date"`
	Course  string    `yaml:"course" json:"course"`
	Topic   string    `yaml:"topic" json:"topic"`
	Content string    `yaml:"content" json:"content"`
	Tags    []string  `yaml:"tags" json:"tags,omitempty"`
	At      time.Time `yaml:"-" json:"-"`
}

// Bank is the ordered shelf of notes.
type Bank struct {
	Notes []Note
}

// Default returns the bundled notes.
func Default() (*Bank, error) {
	return Parse(bundled)
}

// Load reads notes from a JSON or YAML file. An empty path is Default.
func Load(path string) (*Bank, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("notes: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a list of notes. Ids must be unique, every note needs a
// course and a topic, and dates use DateLayout.
func Parse(data []byte) (*Bank, error) {
	var ns []Note
	if err := yaml.Unmarshal(data, &ns); err != nil {
		return nil, fmt.Errorf("notes: decode: %w", err)
	}
	seen := make(map[int]bool, len(ns))
	for i := range ns {
		n := &ns[i]
		if seen[n.ID] {
			return nil, fmt.Errorf("notes: duplicate note %d", n.ID)
		}
		seen[n.ID] = true
		if strings.TrimSpace(n.Course) == "" || strings.TrimSpace(n.Topic) == "" {
			return nil, fmt.Errorf("notes: note %d needs a course and a topic", n.ID)
		}
		if n.Course == All {
			return nil, fmt.Errorf("notes: note %d: %q is reserved", n.ID, All)
		}
		at, err := time.Parse(DateLayout, n.Date)
		if err != nil {
			return nil, fmt.Errorf("notes: note %d: date: %w", n.ID, err)
		}
		n.At = at
	}
	return &Bank{Notes: ns}, nil
}

// Courses lists All followed by each course in first-seen order.
func (b *Bank) Courses() []string {
	out := []string{All}
	seen := map[string]bool{}
	for _, n := range b.Notes {
		if !seen[n.Course] {
			seen[n.Course] = true
			out = append(out, n.Course)
		}
	}
	return out
}

// Filter returns the notes of course in shelf order. All, or an empty
// course, returns every note.
func (b *Bank) Filter(course string) []Note {
	if course == "" || course == All {
		return b.Notes
	}
	var out []Note
	for _, n := range b.Notes {
		if n.Course == course {
			out = append(out, n)
		}
	}
	return out
}

// HasCourse reports whether course is a valid filter.
func (b *Bank) HasCourse(course string) bool {
	for _, c := range b.Courses() {
		if c == course {
			return true
		}
	}
	return false
}

// CountLabel is "1 Note" or "n Notes".
func CountLabel(n int) string {
	if n == 1 {
		return "1 Note"
	}
	return fmt.Sprintf("%d Notes", n)
}

// Shelf is the browsing state: the course filter and the one expanded note.
type Shelf struct {
	bank     *Bank
	course   string
	expanded int
	open     bool
}

func NewShelf(b *Bank) *Shelf {
	if b == nil {
		b = &Bank{}
	}
	return &Shelf{bank: b, course: All}
}

func (s *Shelf) Bank() *Bank    { return s.bank }
func (s *Shelf) Course() string { return s.course }

// Notes returns the notes under the current filter.
func (s *Shelf) Notes() []Note { return s.bank.Filter(s.course) }

// SetCourse changes the filter.
func (s *Shelf) SetCourse(course string) error {
	if !s.bank.HasCourse(course) {
		return fmt.Errorf("%w: %q", ErrUnknownCourse, course)
	}
	s.course = course
	return nil
}

// CycleCourse moves the filter by delta through Courses, wrapping around.
func (s *Shelf) CycleCourse(delta int) {
	cs := s.bank.Courses()
	i := 0
	for j, c := range cs {
		if c == s.course {
			i = j
		}
	}
	n := len(cs)
	s.course = cs[((i+delta)%n+n)%n]
}

// Toggle expands note id, or collapses it when it is already expanded.
// Expanding one note collapses any other.
func (s *Shelf) Toggle(id int) {
	if s.open && s.expanded == id {
		s.open = false
		return
	}
	s.expanded, s.open = id, true
}

// Expanded reports whether note id is open.
func (s *Shelf) Expanded(id int) bool {
	return s.open && s.expanded == id
}
