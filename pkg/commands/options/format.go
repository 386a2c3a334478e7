package options

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Formats accepted by --format.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
)

// FormatOptions selects how subtopic content is printed.
type FormatOptions struct {
	Format string
	Width  int
	Plain  bool
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", FormatText,
		Wrap80("Output format. One of 'text', 'html' or 'json'."))
	cmd.Flags().IntVarP(&o.Width, "width", "w", 80,
		"Wrap text output at this many columns.")
	cmd.Flags().BoolVar(&o.Plain, "plain", false,
		"Never style text output, even on a terminal.")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{FormatText, FormatHTML, FormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Validate rejects unknown formats.
func (o *FormatOptions) Validate() error {
	switch o.Format {
	case FormatText, FormatHTML, FormatJSON:
		return nil
	}
	return fmt.Errorf("unknown format %q, want text, html or json", o.Format)
}
