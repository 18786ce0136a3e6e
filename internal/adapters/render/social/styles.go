package social

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	author   lipgloss.Style
	handle   lipgloss.Style
	body     lipgloss.Style
	meta     lipgloss.Style
	liked    lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	reply    lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	warning  lipgloss.Style
	key      lipgloss.Style
	followed lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		author:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		handle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		body:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		liked:    lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		reply:    lipgloss.NewStyle().PaddingLeft(2).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).BorderForeground(lipgloss.Color("238")),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		failure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		key:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		followed: lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
	}
}
