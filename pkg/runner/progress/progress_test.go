package progress

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/studyed/pkg/app"
	"tableflip.dev/studyed/pkg/content"
	progresspkg "tableflip.dev/studyed/pkg/progress"
	"tableflip.dev/studyed/pkg/quiz"
	"tableflip.dev/studyed/pkg/store"
)

type testConfig struct{ path string }

func (c testConfig) BasePath() string    { return c.path }
func (c testConfig) ContentPath() string { return "" }
func (c testConfig) QuizPath() string    { return "" }
func (c testConfig) NotesPath() string   { return "" }
func (c testConfig) LogPath() string     { return "" }
func (c testConfig) LogLevel() string    { return "" }

func newService(t *testing.T) *app.Service {
	t.Helper()
	tree, err := content.Default()
	if err != nil {
		t.Fatal(err)
	}
	bank, err := quiz.Default()
	if err != nil {
		t.Fatal(err)
	}
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	return app.New(tree, bank, p, nil)
}

func TestProgressPretty(t *testing.T) {
	color.NoColor = true
	svc := newService(t)
	if err := svc.MarkRead("day1", "chapter1", "1.1"); err != nil {
		t.Fatal(err)
	}
	a := quiz.NewAttempt(svc.Bank)
	if err := a.Choose(1, "b"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SubmitAttempt(a); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	p := &Progress{Source: svc, Out: &buf}
	if err := p.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Progress for Guest", "Quiz attempts:", "1 / 5", "Chapters learned - 0 chapters"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestProgressJSON(t *testing.T) {
	svc := newService(t)
	if err := svc.MarkRead("day1", "chapter1", "1.1"); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	p := &Progress{Source: svc, JSON: true, Out: &buf}
	if err := p.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	var got progresspkg.Summary
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if got.Read != 1 || got.Total == 0 {
		t.Fatalf("unexpected summary %+v", got)
	}
}
