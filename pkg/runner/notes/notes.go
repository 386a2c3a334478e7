package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	notespkg "tableflip.dev/studyed/pkg/notes"
	"tableflip.dev/studyed/pkg/printers"
)

// Notes prints the study notes of one course, or of every course.
type Notes struct {
	Bank   *notespkg.Bank
	Course string
	Full   bool
	JSON   bool
	Out    io.Writer
}

func (n *Notes) Do(_ context.Context) error {
	if n.Bank == nil {
		return errors.New("can not list, no notes")
	}
	course := n.Course
	if course == "" {
		course = notespkg.All
	}
	if !n.Bank.HasCourse(course) {
		return fmt.Errorf("%w: %q, want one of %v", notespkg.ErrUnknownCourse, course, n.Bank.Courses())
	}
	list := n.Bank.Filter(course)

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.JSON {
		if list == nil {
			list = []notespkg.Note{}
		}
		b, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: out}
	pp.Notes(course, list, n.Full)
	return nil
}
