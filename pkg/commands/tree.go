package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyed/pkg/runner/tree"
)

func addTree(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "List every day, chapter and subtopic, marking what was read.",
		Example: `
studyed tree
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			defer svc.Close()
			t := tree.Tree{
				Tree:     svc.Tree,
				Progress: svc.Persistence,
			}
			return t.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
