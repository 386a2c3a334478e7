package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyed/pkg/runner/info"
	"tableflip.dev/studyed/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and where progress is stored.",
		Example: `
studyed info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			defer svc.Close()
			s := info.Info{
				Config:  cfg,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
