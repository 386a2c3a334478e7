package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyed/pkg/runner/upload"
)

func addUpload(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "upload [file.pdf...]",
		Short: "Upload PDF study notes, then list every upload.",
		Example: `
studyed upload notes.pdf
studyed upload
`,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return []string{"pdf"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			defer svc.Close()
			u := upload.Upload{Service: svc, Paths: args}
			return u.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
