// Package progress turns reading marks and quiz results into dashboard figures.
package progress

import (
	"time"

	"tableflip.dev/studyed/pkg/content"
	"tableflip.dev/studyed/pkg/store"
)

// Chapter is one chapter's reading progress.
type Chapter struct {
	Day      string
	Key      string
	Title    string
	Read     int
	Total    int
	Complete bool
}

// Summary is what the dashboard shows.
type Summary struct {
	Read     int
	Total    int
	Percent  int
	Chapters []Chapter
	// Learned lists chapters whose every subtopic was read.
	Learned []Chapter

	Attempts   int
	Best       *store.QuizResult
	Latest     *store.QuizResult
	LastReadAt time.Time
}

// Summarize counts read subtopics of tree. Marks for subtopics no longer in
// the tree are ignored. results are expected newest first.
func Summarize(tree *content.Tree, read map[string]store.ReadMark, results []store.QuizResult) Summary {
	var s Summary
	if tree != nil {
		for _, d := range tree.Days {
			for _, c := range d.Chapters {
				ch := Chapter{Day: d.Key, Key: c.Key, Title: c.Title, Total: len(c.Subtopics)}
				for _, sub := range c.Subtopics {
					m, ok := read[store.PathKey(d.Key, c.Key, sub.Key)]
					if !ok {
						continue
					}
					ch.Read++
					if m.At.After(s.LastReadAt) {
						s.LastReadAt = m.At
					}
				}
				ch.Complete = ch.Total > 0 && ch.Read == ch.Total
				s.Read += ch.Read
				s.Total += ch.Total
				s.Chapters = append(s.Chapters, ch)
				if ch.Complete {
					s.Learned = append(s.Learned, ch)
				}
			}
		}
	}
	if s.Total > 0 {
		s.Percent = s.Read * 100 / s.Total
	}

	s.Attempts = len(results)
	for i := range results {
		r := &results[i]
		if s.Latest == nil {
			s.Latest = r
		}
		if s.Best == nil || ratio(*r) > ratio(*s.Best) {
			s.Best = r
		}
	}
	return s
}

func ratio(r store.QuizResult) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}
