package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}).
			Height(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Background(subtle)

	headerButtonStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Margin(0, 1).
				Padding(0, 1)
)

// HeaderAction is a header button.
type HeaderAction int

const (
	ActionReset HeaderAction = iota
	ActionCopy
	ActionQuit
)

func (a HeaderAction) String() string {
	switch a {
	case ActionReset:
		return "Reset"
	case ActionCopy:
		return "Copy"
	case ActionQuit:
		return "Quit"
	}
	return "?"
}

// HeaderActionMsg is emitted when a header button is clicked.
type HeaderActionMsg struct {
	Action HeaderAction
}

type header struct {
	id      string
	width   int
	title   string
	actions []HeaderAction
	pointer *PointerTracker
	loc     Locator
}

func newHeader(title string, loc Locator) *header {
	return &header{
		id:      zone.NewPrefix(),
		title:   title,
		actions: []HeaderAction{ActionReset, ActionCopy, ActionQuit},
		pointer: NewPointerTracker(),
		loc:     loc,
	}
}

func (h *header) Init() tea.Cmd {
	return nil
}

func (h *header) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
	case tea.MouseMsg:
		// A button fires only when pressed and released on it, so a row
		// drag that ends over the header does nothing here.
		g, ok := h.pointer.Handle(msg, h.loc, h.buttonIDs())
		if !ok || g.Kind != GestureEnd {
			return h, nil
		}
		if _, over := inBounds(h.loc, g.ID, msg); !over {
			return h, nil
		}
		for _, a := range h.actions {
			if h.buttonID(a) == g.ID {
				action := a
				return h, func() tea.Msg { return HeaderActionMsg{Action: action} }
			}
		}
	}
	return h, nil
}

func (h *header) View() string {
	var buttons []string
	for _, a := range h.actions {
		buttons = append(buttons, zone.Mark(h.buttonID(a), headerButtonStyle.Render(a.String())))
	}
	buttonsSection := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
	buttonsWidth := lipgloss.Width(buttonsSection)

	maxTitleWidth := max(h.width-buttonsWidth-2, 0)
	title := titleStyle.Render(truncate(h.title, maxTitleWidth))

	spacingWidth := max(h.width-lipgloss.Width(title)-buttonsWidth, 0)
	spacing := lipgloss.NewStyle().Background(subtle).Width(spacingWidth).Render("")
	content := lipgloss.JoinHorizontal(lipgloss.Center, title, spacing, buttonsSection)
	return headerStyle.Width(h.width).Render(content)
}

func (h *header) buttonID(a HeaderAction) string {
	return h.id + "button_" + a.String()
}

func (h *header) buttonIDs() []string {
	ids := make([]string, len(h.actions))
	for i, a := range h.actions {
		ids[i] = h.buttonID(a)
	}
	return ids
}

// truncate shortens s to fit width cells, ending in an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
