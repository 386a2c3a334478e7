package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyed/pkg/commands/options"
	notespkg "tableflip.dev/studyed/pkg/notes"
	"tableflip.dev/studyed/pkg/runner/notes"
	"tableflip.dev/studyed/pkg/store"
)

func addNotes(topLevel *cobra.Command) {
	course := ""
	full := false

	cmd := &cobra.Command{
		Use:   "notes",
		Short: "List the bundled study notes, optionally for one course.",
		Example: `
studyed notes
studyed notes --course Physics --full
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()
			n := notes.Notes{Bank: svc.Notes, Course: course, Full: full, JSON: oo.JSON}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&course, "course", "c", "", "Only notes of this course.")
	cmd.Flags().BoolVar(&full, "full", false, "Print each note's text and tags.")
	_ = cmd.RegisterFlagCompletionFunc("course", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return courseCompletions(), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

// courseCompletions offers the course filters of the configured notes.
func courseCompletions() []string {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	bank, err := notespkg.Load(cfg.NotesPath())
	if err != nil {
		return nil
	}
	return bank.Courses()
}
