package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/task"
)

// TypeOptions
type TypeOptions struct {
	TypeString string
}

func AddTypeArgs(cmd *cobra.Command, o *TypeOptions) {
	names := make([]string, 0, len(task.AllTypes()))
	for _, t := range task.AllTypes() {
		names = append(names, strings.ToLower(string(t)))
	}
	cmd.Flags().StringVarP(&o.TypeString, "type", "t", "todo",
		"Kind of entry, one of "+strings.Join(names, ", ")+".")
	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *TypeOptions) GetType() (task.Type, error) {
	return task.ParseType(o.TypeString)
}
