package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/studyed/pkg/app"
	"tableflip.dev/studyed/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("STUDYED_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "STUDYED_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "STUDYED_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:   ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.content:", orBundled(n.Config.ContentPath()))
	_, _ = fmt.Fprintln(out, "Config.quiz:   ", orBundled(n.Config.QuizPath()))
	_, _ = fmt.Fprintln(out, "Config.log:    ", n.Config.LogPath())

	if n.Service == nil || n.Service.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	st := n.Service.Tree.Stats()
	_, _ = fmt.Fprintf(out, "Content:\n  %d days, %d chapters, %d subtopics\n", st.Days, st.Chapters, st.Subtopics)
	_, _ = fmt.Fprintf(out, "Quiz:\n  %d questions\n", len(n.Service.Bank.Questions))

	read, err := n.Service.ReadSet(ctx)
	if err != nil {
		return err
	}
	results, err := n.Service.Results(ctx)
	if err != nil {
		return err
	}
	uploads, err := n.Service.Uploads(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Store:\n  %d read marks, %d quiz results, %d uploads\n", len(read), len(results), len(uploads))
	_, _ = fmt.Fprintf(out, "Session:\n  %s\n", n.Service.DisplayName())
	return nil
}

func orBundled(path string) string {
	if path == "" {
		return "(bundled)"
	}
	return path
}
