package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyed/pkg/app"
	"tableflip.dev/studyed/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "studyed",
		Short: options.Wrap80("Work through a day-by-day study schedule, take a quiz and chat with a study assistant."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addQuiz(topLevel)
	addChat(topLevel)
	addNotes(topLevel)
	addTree(topLevel)
	addRead(topLevel)
	addLogin(topLevel)
	addSignup(topLevel)
	addLogout(topLevel)
	addWhoami(topLevel)
	addProgress(topLevel)
	addUpload(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadService reads the configuration and opens content and the store.
func loadService() (*app.Service, error) {
	return app.Load(nil)
}
