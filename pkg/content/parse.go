package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed assets/schedule.json
var bundled []byte

// Default returns the schedule bundled with the binary.
func Default() (*Tree, error) {
	return Parse(bundled)
}

// Load reads a schedule from path. An empty path loads the bundled schedule.
func Load(path string) (*Tree, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a serialized schedule. The top level is a list of day
// objects which are merged in order: a day key seen again replaces the
// earlier chapters but keeps the earlier position. Object key order is kept
// at every level. JSON input is decoded as YAML.
func Parse(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	tree := &Tree{}
	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return tree, nil
		}
		root = resolve(root.Content[0])
	}
	if root.Kind == 0 {
		return tree, nil
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a list of day objects at line %d", ErrMalformed, root.Line)
	}

	index := make(map[string]int)
	for _, item := range root.Content {
		item = resolve(item)
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: day entry at line %d is not an object", ErrMalformed, item.Line)
		}
		for i := 0; i+1 < len(item.Content); i += 2 {
			key := item.Content[i].Value
			day := &Day{Key: key, Chapters: parseChapters(item.Content[i+1])}
			if at, ok := index[key]; ok {
				tree.Days[at] = day
				continue
			}
			index[key] = len(tree.Days)
			tree.Days = append(tree.Days, day)
		}
	}
	return tree, nil
}

func parseChapters(n *yaml.Node) []*Chapter {
	n = resolve(n)
	if n.Kind != yaml.MappingNode {
		return nil
	}
	chapters := make([]*Chapter, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		body := resolve(n.Content[i+1])
		ch := &Chapter{
			Key:   key,
			Title: scalar(field(body, "title"), key),
		}
		ch.Subtopics = parseSubtopics(field(body, "subtopics"))
		chapters = append(chapters, ch)
	}
	return chapters
}

func parseSubtopics(n *yaml.Node) []*Subtopic {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	subtopics := make([]*Subtopic, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		body := resolve(n.Content[i+1])
		text := field(body, "context")
		if text == nil {
			text = field(body, "content")
		}
		subtopics = append(subtopics, &Subtopic{
			Key:   key,
			Title: scalar(field(body, "title"), key),
			Body:  scalar(text, ""),
		})
	}
	return subtopics
}

// field returns the value node of name inside a mapping node.
func field(n *yaml.Node, name string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == name {
			return resolve(n.Content[i+1])
		}
	}
	return nil
}

func scalar(n *yaml.Node, fallback string) string {
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return fallback
	}
	return n.Value
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n == nil {
		return &yaml.Node{}
	}
	return n
}
