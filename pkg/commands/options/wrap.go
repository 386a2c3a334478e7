package options

import "github.com/muesli/reflow/wordwrap"

// Wrap80 wraps help text at 80 columns.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

func Wrap(text string, width int) string {
	return wordwrap.String(text, width)
}
