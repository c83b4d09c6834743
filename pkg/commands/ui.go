package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/ui"
	"tableflip.dev/daybook/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
daybook ui
daybook ui --on 2/28
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, on)
		},
	}
	options.AddOnArgs(cmd, on)

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command, on *options.OnOptions) error {
	t, err := on.GetOn()
	if err != nil {
		return err
	}
	p, err := store.Load(nil)
	if err != nil {
		return err
	}
	i := ui.UI{Persistence: p, On: t}
	return i.Do(cmd.Context())
}
