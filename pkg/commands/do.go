package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/do"
	"tableflip.dev/daybook/pkg/store"
)

func addDo(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "do <command>",
		Short: "Run a journal command against a day",
		Long: options.Wrap80("Run one of the commands the interactive command box accepts: " +
			"add <text>, del <n> or done <n>. Indices are the ones shown by daybook get."),
		Example: `
daybook do add call the bank
daybook do done 0
daybook do del 2 --on 2024-5-1
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := on.Day()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			d := do.Do{
				Input:       strings.Join(args, " "),
				On:          day,
				Persistence: p,
			}
			return d.Do(cmd.Context())
		},
	}

	options.AddOnArgs(cmd, on)

	topLevel.AddCommand(cmd)
}
