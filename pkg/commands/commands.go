package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: options.Wrap80("Bullet journaling on the command line."),
		Long: options.Wrap80("A day-by-day bullet journal. Without a subcommand daybook " +
			"opens the interactive journal on today."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, on)
		},
	}
	options.AddOnArgs(cmd, on)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addDo(topLevel)
	addCalendar(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}
