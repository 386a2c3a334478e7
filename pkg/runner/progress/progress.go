package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/studyed/pkg/printers"
	progresspkg "tableflip.dev/studyed/pkg/progress"
)

// Source supplies the figures; app.Service satisfies it.
type Source interface {
	Summary(ctx context.Context) (progresspkg.Summary, error)
	DisplayName() string
}

type Progress struct {
	Source Source
	JSON   bool
	Out    io.Writer
}

func (n *Progress) Do(ctx context.Context) error {
	if n.Source == nil {
		return errors.New("can not summarize, no store")
	}
	s, err := n.Source.Summary(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		out := n.Out
		if out == nil {
			out = color.Output
		}
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Progress(n.Source.DisplayName(), s)
	return nil
}
