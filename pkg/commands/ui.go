package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyed/pkg/runner/tea"
	teaui "tableflip.dev/studyed/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	topLevel.AddCommand(uiCommand("ui", "open the text-based user interface", teaui.HomePage))
}

func addQuiz(topLevel *cobra.Command) {
	topLevel.AddCommand(uiCommand("quiz", "open the text-based user interface on the quiz", teaui.QuizPage))
}

func addChat(topLevel *cobra.Command) {
	topLevel.AddCommand(uiCommand("chat", "open the text-based user interface on the study assistant", teaui.ChatPage))
}

func uiCommand(use, short string, start teaui.Page) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Example: `
studyed ` + use + `
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			defer svc.Close()
			u := tea.UI{Service: svc, Start: start}
			return u.Do(context.Background())
		},
	}
}
