package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	plain := false

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the bullets and keybindings",
		Example: `
daybook key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Plain: plain}
			return k.Do(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the guide as markdown.")

	topLevel.AddCommand(cmd)
}
