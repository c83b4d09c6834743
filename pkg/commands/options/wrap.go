package options

import "github.com/muesli/reflow/wordwrap"

// Wrap80 wraps help text for an 80 column terminal.
func Wrap80(text string) string {
	return wordwrap.String(text, 80)
}
