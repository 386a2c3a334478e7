package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyed/pkg/commands/options"
	"tableflip.dev/studyed/pkg/runner/progress"
)

func addProgress(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Summarize reading progress and quiz results.",
		Example: `
studyed progress
studyed progress --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()
			p := progress.Progress{Source: svc, JSON: oo.JSON}
			return oo.HandleError(p.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
