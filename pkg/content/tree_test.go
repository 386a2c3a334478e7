package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseMergesDaysInOrder(t *testing.T) {
	data := []byte(`[
  {"day2": {"c1": {"title": "Second", "subtopics": {"s1": {"title": "A", "context": "a"}}}}},
  {"day1": {"c1": {"title": "First", "subtopics": {}}}, "day3": {}},
  {"day2": {"c9": {"title": "Replaced", "subtopics": {"z": {"title": "Z", "content": "zz"}, "a": {"title": "A"}}}}}
]`)
	tree, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var keys []string
	for _, d := range tree.Days {
		keys = append(keys, d.Key)
	}
	want := []string{"day2", "day1", "day3"}
	if len(keys) != len(want) {
		t.Fatalf("expected days %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected days %v, got %v", want, keys)
		}
	}

	day2, _ := tree.Day("day2")
	if len(day2.Chapters) != 1 || day2.Chapters[0].Key != "c9" {
		t.Fatalf("expected later day2 to replace chapters, got %+v", day2.Chapters)
	}
	subs := day2.Chapters[0].Subtopics
	if len(subs) != 2 || subs[0].Key != "z" || subs[1].Key != "a" {
		t.Fatalf("expected subtopic key order z, a; got %+v", subs)
	}
	if subs[0].Body != "zz" {
		t.Fatalf("expected content fallback body, got %q", subs[0].Body)
	}
	if subs[1].Body != "" {
		t.Fatalf("expected empty body for missing text, got %q", subs[1].Body)
	}
}

func TestParseToleratesMalformedLevels(t *testing.T) {
	tree, err := Parse([]byte(`[{"day1": null}, {"day2": {"c1": {"title": "No subtopics"}}}]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	day1, ok := tree.Day("day1")
	if !ok {
		t.Fatalf("day1 missing")
	}
	if len(day1.Chapters) != 0 {
		t.Fatalf("expected no chapters, got %d", len(day1.Chapters))
	}
	c, ok := tree.Days[1].Chapter("c1")
	if !ok || len(c.Subtopics) != 0 {
		t.Fatalf("expected empty chapter, got %+v", c)
	}
}

func TestParseRejectsNonListTopLevel(t *testing.T) {
	_, err := Parse([]byte(`{"day1": {}}`))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	tree, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tree.Days) != 0 {
		t.Fatalf("expected empty tree")
	}
}

func TestLookup(t *testing.T) {
	tree, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	s, err := tree.Lookup("day1", "chapter1", "1.1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if s.Title != "What is Living?" {
		t.Fatalf("unexpected title %q", s.Title)
	}
	if _, err := tree.Lookup("day1", "chapter4", "4.1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDefaultStats(t *testing.T) {
	tree, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	st := tree.Stats()
	if st.Days != 3 || st.Chapters != 4 || st.Subtopics != 8 {
		t.Fatalf("unexpected stats %+v", st)
	}
	count := 0
	tree.Walk(func(_ *Day, _ *Chapter, _ *Subtopic) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Fatalf("expected walk to stop after 3, got %d", count)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	body := "- monday:\n    ch:\n      title: Algebra\n      subtopics:\n        s:\n          title: Sets\n          context: \"* one\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tree, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s, err := tree.Lookup("monday", "ch", "s")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if s.Body != "* one" {
		t.Fatalf("unexpected body %q", s.Body)
	}
}
