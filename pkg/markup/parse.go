package markup

import (
	"regexp"
	"strings"
)

var orderedPrefix = regexp.MustCompile(`^\d+\.\s`)

// Parse converts body text into blocks. Empty text yields no blocks.
func Parse(text string) []Block {
	if text == "" {
		return nil
	}
	p := &parser{open: -1}
	for _, line := range strings.Split(text, "\n") {
		p.line(strings.TrimSuffix(line, "\r"))
	}
	p.closeList()
	return p.blocks
}

type parser struct {
	blocks []Block
	// open is the index of the list block accepting items, -1 when outside
	// a list.
	open int
}

func (p *parser) line(line string) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		p.closeList()
		p.blocks = append(p.blocks, Block{Kind: Break})
	case strings.HasPrefix(line, "### "):
		p.heading(3, line[4:])
	case strings.HasPrefix(line, "## "):
		p.heading(2, line[3:])
	case strings.HasPrefix(line, "# "):
		p.heading(1, line[2:])
	case strings.HasPrefix(trimmed, "* "):
		p.item(false, trimmed[2:])
	case orderedPrefix.MatchString(trimmed):
		loc := orderedPrefix.FindStringIndex(trimmed)
		p.item(true, trimmed[loc[1]:])
	default:
		p.closeList()
		p.blocks = append(p.blocks, Block{Kind: Paragraph, Spans: Inline(line)})
	}
}

func (p *parser) heading(level int, text string) {
	p.closeList()
	p.blocks = append(p.blocks, Block{Kind: Heading, Level: level, Text: text})
}

// item appends to the open list. A bullet joins whatever list is open; an
// ordered item closes an open unordered list first.
func (p *parser) item(ordered bool, text string) {
	if p.open >= 0 && ordered && !p.blocks[p.open].Ordered {
		p.closeList()
	}
	if p.open < 0 {
		p.blocks = append(p.blocks, Block{Kind: List, Ordered: ordered})
		p.open = len(p.blocks) - 1
	}
	blk := &p.blocks[p.open]
	blk.Items = append(blk.Items, Inline(text))
}

func (p *parser) closeList() {
	p.open = -1
}
