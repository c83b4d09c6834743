package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/add"
	"tableflip.dev/daybook/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	to := &options.TypeOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add an entry to a day",
		Example: `
daybook add buy milk
daybook add --type event dentist at 3 --on 2/28
daybook add -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if !i.Interactive && len(args) == 0 {
				return errors.New("nothing to add")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := on.Day()
			if err != nil {
				return err
			}
			typ, err := to.GetType()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			a := add.Add{
				Content:     strings.Join(args, " "),
				Type:        typ,
				On:          day,
				Interactive: i.Interactive,
				Persistence: p,
			}
			return a.Do(cmd.Context())
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddTypeArgs(cmd, to)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}
