package store

import (
	"context"
	"sort"
	"time"
)

const (
	quizBucket   = "quiz"
	uploadBucket = "uploads"
)

// QuizResult is one submitted quiz attempt.
type QuizResult struct {
	ID      string         `json:"id"`
	Score   int            `json:"score"`
	Total   int            `json:"total"`
	Answers map[int]string `json:"answers,omitempty"`
	At      time.Time      `json:"at"`
}

// QuizResults persists submitted attempts.
type QuizResults interface {
	SaveResult(r QuizResult) error
	Results(ctx context.Context) ([]QuizResult, error)
}

func (p *persistence) SaveResult(r QuizResult) error {
	return p.put(key(quizBucket, r.ID), r)
}

// Results returns attempts newest first.
func (p *persistence) Results(ctx context.Context) ([]QuizResult, error) {
	var out []QuizResult
	err := each(ctx, p, quizBucket, func(r QuizResult) {
		out = append(out, r)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].At.Equal(out[j].At) {
			return out[i].ID < out[j].ID
		}
		return out[i].At.After(out[j].At)
	})
	return out, err
}

// Upload is an accepted study-notes file.
type Upload struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Path string    `json:"path"`
	Size int64     `json:"size"`
	MIME string    `json:"mime"`
	At   time.Time `json:"at"`
}

// Uploads persists accepted uploads.
type Uploads interface {
	SaveUpload(u Upload) error
	Uploads(ctx context.Context) ([]Upload, error)
}

func (p *persistence) SaveUpload(u Upload) error {
	return p.put(key(uploadBucket, u.ID), u)
}

// Uploads returns uploads oldest first.
func (p *persistence) Uploads(ctx context.Context) ([]Upload, error) {
	var out []Upload
	err := each(ctx, p, uploadBucket, func(u Upload) {
		out = append(out, u)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})
	return out, err
}
