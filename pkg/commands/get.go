package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/get"
	"tableflip.dev/daybook/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	all := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List the entries for a day",
		Example: `
daybook get
daybook get --on 2024-5-1
daybook get --all --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := on.Day()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			g := get.Get{
				On:          day,
				All:         all,
				JSON:        output.JSON,
				Persistence: p,
			}
			return output.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&all, "all", false, "List every day in the journal.")

	topLevel.AddCommand(cmd)
}
