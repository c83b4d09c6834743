package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/mode"
)

// keysFromMsg translates a Bubble Tea key press into the machine's keys. A
// press that produces several characters becomes one key per rune.
func keysFromMsg(msg tea.KeyPressMsg) []mode.Key {
	switch msg.String() {
	case "enter":
		return []mode.Key{mode.Enter}
	case "esc":
		return []mode.Key{mode.Escape}
	case "backspace":
		return []mode.Key{mode.Backspace}
	}
	if msg.Text == "" {
		return []mode.Key{mode.Other}
	}
	return mode.Keys(msg.Text)
}
