package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"}).
			Height(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999", Dark: "#666"})
)

// StatusMsg replaces the footer status text.
type StatusMsg string

type footer struct {
	width  int
	status string
	help   help.Model
	keys   keyMap
}

func newFooter(keys keyMap) *footer {
	return &footer{
		help: help.New(),
		keys: keys,
	}
}

func (f *footer) Init() tea.Cmd {
	return nil
}

func (f *footer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.help.Width = msg.Width
	case StatusMsg:
		f.status = string(msg)
	}
	return f, nil
}

func (f *footer) View() string {
	mouse := "mouse off"
	if zone.Enabled() {
		mouse = "mouse on"
	}
	left := statusStyle.Render(mouse + " │ " + f.status + " │ ")
	f.help.Width = max(f.width-lipgloss.Width(left), 0)
	content := lipgloss.JoinHorizontal(lipgloss.Top, left, f.help.View(f.keys))
	return footerStyle.Width(f.width).MaxWidth(f.width).MaxHeight(1).Render(content)
}
