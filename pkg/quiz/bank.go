// Package quiz runs multiple-choice practice rounds.
package quiz

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed assets/questions.json
var bundled []byte

var (
	ErrUnknownQuestion = errors.New("quiz: unknown question")
	ErrUnknownOption   = errors.New("quiz: unknown option")
	ErrSubmitted       = errors.New("quiz: already submitted")
)

type Option struct {
	ID   string `yaml:"id" json:"id"`
	Text string `yaml:"text" json:"text"`
}

type Question struct {
	ID          int      `yaml:"id" json:"id"`
	Prompt      string   `yaml:"prompt" json:"prompt"`
	Subject     string   `yaml:"subject" json:"subject"`
	Options     []Option `yaml:"options" json:"options"`
	Answer      string   `yaml:"answer" json:"answer"`
	Explanation string   `yaml:"explanation" json:"explanation"`
}

// Option returns the option with id.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Bank is an ordered set of questions.
type Bank struct {
	Questions []Question
}

// Default returns the bundled bank.
func Default() (*Bank, error) {
	return Parse(bundled)
}

// Load reads a bank from a JSON or YAML file. An empty path is Default.
func Load(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and checks a list of questions.
func Parse(data []byte) (*Bank, error) {
	var qs []Question
	if err := yaml.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("quiz: decode: %w", err)
	}
	seen := make(map[int]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			return nil, fmt.Errorf("quiz: duplicate question %d", q.ID)
		}
		seen[q.ID] = true
		if _, ok := q.Option(q.Answer); !ok {
			return nil, fmt.Errorf("quiz: question %d: answer %q is not an option", q.ID, q.Answer)
		}
	}
	return &Bank{Questions: qs}, nil
}

// Question returns the question with id.
func (b *Bank) Question(id int) (Question, bool) {
	for _, q := range b.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
