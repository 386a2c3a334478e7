package commands

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/studyed/pkg/commands/options"
	"tableflip.dev/studyed/pkg/content"
	"tableflip.dev/studyed/pkg/runner/read"
	"tableflip.dev/studyed/pkg/store"
)

func addRead(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "read <day> <chapter> <subtopic>",
		Short: "Print one subtopic and mark it read.",
		Example: `
studyed read day1 chapter1 1.1
studyed read day1 chapter1 1.1 --format html
studyed read day1 chapter1 1.1 --format json
`,
		Args: cobra.ExactArgs(3),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			return pathCompletions(args), cobra.ShellCompDirectiveNoFileComp
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return fo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			defer svc.Close()
			r := read.Read{
				Tree:     svc.Tree,
				Marker:   svc,
				Day:      args[0],
				Chapter:  args[1],
				Subtopic: args[2],
				Format:   fo.Format,
				Width:    fo.Width,
				Styled:   !fo.Plain && isatty.IsTerminal(os.Stdout.Fd()),
			}
			return r.Do(context.Background())
		},
	}

	options.AddFormatArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}

// pathCompletions offers the keys of the next level below args.
func pathCompletions(args []string) []string {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	tree, err := content.Load(cfg.ContentPath())
	if err != nil {
		return nil
	}
	var keys []string
	switch len(args) {
	case 0:
		for _, d := range tree.Days {
			keys = append(keys, d.Key)
		}
	case 1:
		if d, ok := tree.Day(args[0]); ok {
			for _, c := range d.Chapters {
				keys = append(keys, c.Key)
			}
		}
	case 2:
		if d, ok := tree.Day(args[0]); ok {
			if c, ok := d.Chapter(args[1]); ok {
				for _, s := range c.Subtopics {
					keys = append(keys, s.Key)
				}
			}
		}
	}
	return keys
}
