package upload

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/studyed/pkg/printers"
	"tableflip.dev/studyed/pkg/store"
)

// Service accepts and lists uploads; app.Service satisfies it.
type Service interface {
	Upload(path string) (store.Upload, error)
	Uploads(ctx context.Context) ([]store.Upload, error)
}

type Upload struct {
	Service Service
	Paths   []string
	Out     io.Writer
}

// Do uploads every path and then lists all uploads. The first rejected path
// is returned after the rest were tried.
func (n *Upload) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not upload, no store")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	var firstErr error
	for _, p := range n.Paths {
		u, err := n.Service.Upload(p)
		if err != nil {
			_, _ = bad.Fprintf(out, "✗ %v\n", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		_, _ = ok.Fprintf(out, "✓ %s uploaded successfully\n", u.Name)
	}
	if len(n.Paths) > 0 {
		_, _ = fmt.Fprintln(out, "")
	}

	all, err := n.Service.Uploads(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: out}
	pp.Uploads(all)
	return firstErr
}
