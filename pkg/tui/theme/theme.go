// Package theme centralizes Lip Gloss styles for the Bubble Tea UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daybook/pkg/tui/calendar"
)

// Theme groups every style the UI draws with.
type Theme struct {
	Header   lipgloss.Style
	Pane     PaneTheme
	Command  CommandTheme
	Bullet   BulletTheme
	Footer   FooterTheme
	Calendar calendar.Options
}

// PaneTheme styles framed panels and headings.
type PaneTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Empty lipgloss.Style
	Index lipgloss.Style
}

// CommandTheme styles the command box shown in Command mode.
type CommandTheme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Prompt lipgloss.Style
}

// BulletTheme colours task glyphs by kind.
type BulletTheme struct {
	Open  lipgloss.Style
	Done  lipgloss.Style
	Event lipgloss.Style
	Note  lipgloss.Style
}

// FooterTheme styles the bottom mode/status line.
type FooterTheme struct {
	Mode   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	yellow := lipgloss.Color("11")
	return Theme{
		Header: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Foreground(yellow).
			Align(lipgloss.Center),
		Pane: PaneTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
			Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Index: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Command: CommandTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("12")).
				Padding(0, 1),
			Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Prompt: lipgloss.NewStyle().Foreground(yellow),
		},
		Bullet: BulletTheme{
			Open:  lipgloss.NewStyle().Foreground(yellow),
			Done:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Event: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Note:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		},
		Footer: FooterTheme{
			Mode:   lipgloss.NewStyle().Bold(true),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		},
		Calendar: calendar.DefaultOptions(),
	}
}
