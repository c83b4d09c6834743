package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/calendar"
	"tableflip.dev/daybook/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Print a month, highlighting days with entries",
		Example: `
daybook calendar
daybook cal --on 2024-12-1
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := on.Day()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			c := calendar.Calendar{On: day, Persistence: p}
			return c.Do(cmd.Context())
		},
	}

	options.AddOnArgs(cmd, on)

	topLevel.AddCommand(cmd)
}
