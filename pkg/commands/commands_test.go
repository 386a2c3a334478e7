package commands

import (
	"slices"
	"testing"
)

func TestNewRegistersVerbs(t *testing.T) {
	root := New()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"ui", "quiz", "chat", "notes", "tree", "read", "login", "signup", "logout", "whoami", "progress", "upload", "info", "version", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing %q in %v", want, names)
		}
	}
}

func TestReadRejectsUnknownFormat(t *testing.T) {
	root := New()
	root.SetArgs([]string{"read", "day1", "chapter1", "1.1", "--format", "pdf"})
	root.SilenceErrors = true
	root.SilenceUsage = true
	if err := root.Execute(); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestPathCompletions(t *testing.T) {
	t.Setenv("STUDYED_CONFIG_PATH", t.TempDir())
	t.Setenv("STUDYED_CONTENT", "")
	days := pathCompletions(nil)
	if len(days) == 0 || days[0] != "day1" {
		t.Fatalf("unexpected days %v", days)
	}
	subs := pathCompletions([]string{"day1", "chapter1"})
	if !slices.Equal(subs, []string{"1.1", "1.2"}) {
		t.Fatalf("unexpected subtopics %v", subs)
	}
	if got := pathCompletions([]string{"nope"}); len(got) != 0 {
		t.Fatalf("expected nothing for unknown day, got %v", got)
	}
}

func TestCourseCompletions(t *testing.T) {
	t.Setenv("STUDYED_CONFIG_PATH", t.TempDir())
	got := courseCompletions()
	if len(got) == 0 || got[0] != "All" || !slices.Contains(got, "Physics") {
		t.Fatalf("unexpected courses %v", got)
	}
}
