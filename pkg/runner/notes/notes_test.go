package notes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	notespkg "tableflip.dev/studyed/pkg/notes"
)

func TestNotesByCourse(t *testing.T) {
	color.NoColor = true
	bank, err := notespkg.Default()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n := &Notes{Bank: bank, Course: "Biology", Full: true, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "Cell Division") || strings.Contains(out, "Trigonometry") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	buf.Reset()
	n = &Notes{Bank: bank, JSON: true, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	var got []notespkg.Note
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(got) != 5 || got[4].Topic != "Essay Writing Tips" {
		t.Fatalf("unexpected notes %+v", got)
	}

	n = &Notes{Bank: bank, Course: "History", Out: &buf}
	if err := n.Do(context.Background()); !errors.Is(err, notespkg.ErrUnknownCourse) {
		t.Fatalf("expected ErrUnknownCourse, got %v", err)
	}
}
