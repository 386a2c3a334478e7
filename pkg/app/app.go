package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/studyed/pkg/content"
	"tableflip.dev/studyed/pkg/logging"
	"tableflip.dev/studyed/pkg/notes"
	"tableflip.dev/studyed/pkg/progress"
	"tableflip.dev/studyed/pkg/quiz"
	"tableflip.dev/studyed/pkg/session"
	"tableflip.dev/studyed/pkg/store"
	"tableflip.dev/studyed/pkg/upload"
)

// Service provides high-level operations over content, the local store and
// the logged-in session. It is shared by the UI and the CLI.
type Service struct {
	Tree        *content.Tree
	Bank        *quiz.Bank
	Notes       *notes.Bank
	Persistence store.Persistence
	Session     *session.Provider
	Log         *logging.Logger

	now func() time.Time
}

var errNoPersistence = errors.New("app: no persistence configured")

// Load builds a Service from cfg. A nil cfg reads the default configuration.
func Load(cfg store.Config) (*Service, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	log, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}
	tree, err := content.Load(cfg.ContentPath())
	if err != nil {
		return nil, fmt.Errorf("app: load content: %w", err)
	}
	bank, err := quiz.Load(cfg.QuizPath())
	if err != nil {
		return nil, fmt.Errorf("app: load questions: %w", err)
	}
	nb, err := notes.Load(cfg.NotesPath())
	if err != nil {
		return nil, fmt.Errorf("app: load notes: %w", err)
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}

	stats := tree.Stats()
	log.Info("loaded",
		"store", p.BasePath(),
		"days", stats.Days,
		"chapters", stats.Chapters,
		"subtopics", stats.Subtopics,
		"questions", len(bank.Questions),
		"notes", len(nb.Notes),
	)
	s := New(tree, bank, p, log)
	s.Notes = nb
	return s, nil
}

// New wires a Service from its parts. A nil logger discards.
func New(tree *content.Tree, bank *quiz.Bank, p store.Persistence, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	s := &Service{Tree: tree, Bank: bank, Persistence: p, Log: log, now: time.Now}
	if p != nil {
		s.Session = session.New(p)
	}
	return s
}

// Close flushes the log.
func (s *Service) Close() {
	s.Log.Sync()
}

// MarkRead records that a subtopic was opened.
func (s *Service) MarkRead(day, chapter, subtopic string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if _, err := s.Tree.Lookup(day, chapter, subtopic); err != nil {
		return err
	}
	if err := s.Persistence.MarkRead(store.ReadMark{Day: day, Chapter: chapter, Subtopic: subtopic, At: s.now()}); err != nil {
		s.Log.Error("mark read failed", "path", store.PathKey(day, chapter, subtopic), "error", err)
		return err
	}
	return nil
}

// SubmitAttempt submits a and stores its result.
func (s *Service) SubmitAttempt(a *quiz.Attempt) (store.QuizResult, error) {
	if s.Persistence == nil {
		return store.QuizResult{}, errNoPersistence
	}
	a.Submit()
	r := a.Result(s.now())
	if err := s.Persistence.SaveResult(r); err != nil {
		s.Log.Error("save quiz result failed", "error", err)
		return store.QuizResult{}, err
	}
	s.Log.Info("quiz submitted", "score", r.Score, "total", r.Total)
	return r, nil
}

// Summary collects dashboard figures.
func (s *Service) Summary(ctx context.Context) (progress.Summary, error) {
	if s.Persistence == nil {
		return progress.Summary{}, errNoPersistence
	}
	read, err := s.Persistence.ReadSet(ctx)
	if err != nil {
		return progress.Summary{}, err
	}
	results, err := s.Persistence.Results(ctx)
	if err != nil {
		return progress.Summary{}, err
	}
	return progress.Summarize(s.Tree, read, results), nil
}

// Results lists quiz results, newest first.
func (s *Service) Results(ctx context.Context) ([]store.QuizResult, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Results(ctx)
}

// Upload accepts a PDF of study notes.
func (s *Service) Upload(path string) (store.Upload, error) {
	if s.Persistence == nil {
		return store.Upload{}, errNoPersistence
	}
	u, err := upload.Save(s.Persistence, path)
	if err != nil {
		s.Log.Warn("upload rejected", "path", path, "error", err)
		return store.Upload{}, err
	}
	s.Log.Info("upload accepted", "name", u.Name, "size", u.Size)
	return u, nil
}

// Uploads lists accepted uploads, oldest first.
func (s *Service) Uploads(ctx context.Context) ([]store.Upload, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Uploads(ctx)
}

// DisplayName is the logged-in user's name or session.Guest.
func (s *Service) DisplayName() string {
	if s.Session == nil {
		return session.Guest
	}
	return s.Session.DisplayName()
}

// ReadSet returns read marks keyed by store.PathKey.
func (s *Service) ReadSet(ctx context.Context) (map[string]store.ReadMark, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.ReadSet(ctx)
}
