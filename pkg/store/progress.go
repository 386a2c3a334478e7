package store

import (
	"context"
	"errors"
	"strings"
	"time"
)

const progressBucket = "progress"

// ReadMark records that a subtopic was opened.
type ReadMark struct {
	Day      string    `json:"day"`
	Chapter  string    `json:"chapter"`
	Subtopic string    `json:"subtopic"`
	At       time.Time `json:"at"`
}

// Path joins the mark's keys; it is the key of ReadSet.
func (m ReadMark) Path() string {
	return PathKey(m.Day, m.Chapter, m.Subtopic)
}

// PathKey joins day, chapter and subtopic keys.
func PathKey(day, chapter, subtopic string) string {
	return strings.Join([]string{day, chapter, subtopic}, "/")
}

// Progress persists which subtopics were read.
type Progress interface {
	MarkRead(m ReadMark) error
	ReadSet(ctx context.Context) (map[string]ReadMark, error)
}

// MarkRead stores m, keeping the first time a subtopic was read.
func (p *persistence) MarkRead(m ReadMark) error {
	k := key(progressBucket, m.Path())
	var existing ReadMark
	switch err := p.get(k, &existing); {
	case err == nil:
		return nil
	case !errors.Is(err, ErrNotFound):
		return err
	}
	if m.At.IsZero() {
		m.At = time.Now()
	}
	return p.put(k, m)
}

func (p *persistence) ReadSet(ctx context.Context) (map[string]ReadMark, error) {
	out := make(map[string]ReadMark)
	err := each(ctx, p, progressBucket, func(m ReadMark) {
		out[m.Path()] = m
	})
	return out, err
}
