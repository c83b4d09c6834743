package add

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/daybook/pkg/task"
)

// prompt asks for whatever was not given on the command line.
func (n *Add) prompt() error {
	if n.Content == "" {
		templates := &promptui.PromptTemplates{
			Prompt:  "{{ . }}: ",
			Valid:   "{{ . | green }}: ",
			Invalid: "{{ . | red }}: ",
			Success: "{{ . | bold }}: ",
		}
		prompt := promptui.Prompt{
			Label:     "Entry",
			Templates: templates,
			Validate: func(input string) error {
				if strings.TrimSpace(input) == "" {
					return errors.New("empty")
				}
				return nil
			},
		}
		content, err := prompt.Run()
		if err != nil {
			return err
		}
		n.Content = strings.TrimSpace(content)
	}

	types := task.AllTypes()
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . }}",
		Selected: "{{ . | bold }}",
	}
	sel := promptui.Select{
		Label:     "Kind",
		Items:     types,
		Templates: templates,
		CursorPos: typeIndex(types, n.Type),
	}
	i, _, err := sel.Run()
	if err != nil {
		return err
	}
	n.Type = types[i]
	return nil
}

func typeIndex(types []task.Type, want task.Type) int {
	for i, t := range types {
		if t == want {
			return i
		}
	}
	return 0
}
