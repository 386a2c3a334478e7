// Package markup turns subtopic bodies into typed blocks. It is a line
// oriented transform, not a markdown parser: headings, flat lists,
// paragraphs and line breaks, with bold and italic spans inside list items and
// paragraphs.
package markup

import "fmt"

// Kind identifies a block.
type Kind int

const (
	// Break is emitted for every blank line.
	Break Kind = iota
	// Heading is a level 1-3 heading.
	Heading
	// List is an unordered or ordered list of items.
	List
	// Paragraph is a single non-blank line of running text.
	Paragraph
)

func (k Kind) String() string {
	switch k {
	case Break:
		return "break"
	case Heading:
		return "heading"
	case List:
		return "list"
	case Paragraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for _, c := range []Kind{Break, Heading, List, Paragraph} {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("markup: unknown block kind %q", b)
}

// Style is the emphasis of an inline span.
type Style int

const (
	Plain Style = iota
	Bold
	Italic
)

func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return "plain"
	}
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(b []byte) error {
	for _, c := range []Style{Plain, Bold, Italic} {
		if c.String() == string(b) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("markup: unknown span style %q", b)
}

// Span is a run of text with one emphasis.
type Span struct {
	Style Style  `json:"style"`
	Text  string `json:"text"`
}

// Block is one rendered unit.
type Block struct {
	Kind Kind `json:"kind"`

	// Heading
	Level int    `json:"level,omitempty"`
	Text  string `json:"text,omitempty"`

	// List
	Ordered bool     `json:"ordered,omitempty"`
	Items   [][]Span `json:"items,omitempty"`

	// Paragraph
	Spans []Span `json:"spans,omitempty"`
}

// Text flattens spans into their raw text.
func Text(spans []Span) string {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}
