package tree

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/studyed/pkg/content"
	"tableflip.dev/studyed/pkg/printers"
	"tableflip.dev/studyed/pkg/store"
)

// Tree lists the schedule, marking read subtopics when Progress is set.
type Tree struct {
	Tree     *content.Tree
	Progress store.Progress
	Out      io.Writer
}

func (n *Tree) Do(ctx context.Context) error {
	if n.Tree == nil {
		return errors.New("can not list, no content")
	}
	var read map[string]store.ReadMark
	if n.Progress != nil {
		var err error
		read, err = n.Progress.ReadSet(ctx)
		if err != nil {
			return err
		}
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Tree(n.Tree, read)
	return nil
}
