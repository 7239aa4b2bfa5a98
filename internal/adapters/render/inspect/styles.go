package inspect

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	section  lipgloss.Style
	heading  lipgloss.Style
	entry    lipgloss.Style
	author   lipgloss.Style
	stamp    lipgloss.Style
	empty    lipgloss.Style
	count    lipgloss.Style
	barFill  lipgloss.Style
	barEmpty lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:  lipgloss.NewStyle().MarginTop(1),
		heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		author:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		stamp:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:    lipgloss.NewStyle().Faint(true),
		count:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		barFill:  lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
