package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileylov/dragsort/internal/dataset"
)

var (
	previewCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(subtle).
				Padding(0, 1)
	previewCardActiveStyle = previewCardStyle.
				BorderForeground(highlight)
	previewImageStyle  = lipgloss.NewStyle().Foreground(muted).Italic(true)
	previewStatusStyle = lipgloss.NewStyle().Foreground(muted).MarginTop(1)
)

// Preview shows a card for the item being dragged, standing in for the
// drag image a graphical toolkit would attach to the pointer.
type Preview struct {
	width   int
	height  int
	item    dataset.Item
	hasItem bool
	status  DragStatus
	length  int
}

// NewPreview creates an empty preview pane.
func NewPreview() *Preview {
	return &Preview{}
}

// SetSubject updates what the card shows.
func (p *Preview) SetSubject(it dataset.Item, ok bool, st DragStatus, length int) {
	p.item, p.hasItem = it, ok
	p.status = st
	p.length = length
}

func (p *Preview) Init() tea.Cmd {
	return nil
}

func (p *Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		p.width = msg.Width
		p.height = msg.Height
	}
	return p, nil
}

func (p *Preview) View() string {
	if !p.hasItem {
		return ""
	}
	style := previewCardStyle
	if p.status.Dragging {
		style = previewCardActiveStyle
	}
	if p.width > 4 {
		style = style.Width(p.width - 2)
	}
	card := style.Render(lipgloss.JoinVertical(lipgloss.Left,
		previewImageStyle.Render("▣ "+p.item.Image),
		rowTitleStyle.Render(p.item.Title),
		rowLocationStyle.Render("⌖ "+p.item.Location),
	))
	return lipgloss.JoinVertical(lipgloss.Left, card, previewStatusStyle.Render(p.describe()))
}

func (p *Preview) describe() string {
	st := p.status
	switch {
	case !st.Dragging:
		return "Drag a row to reorder"
	case !st.HasTarget:
		return fmt.Sprintf("Dragging #%d", st.Source+1)
	case st.Target >= p.length:
		return fmt.Sprintf("Dragging #%d → end of list", st.Source+1)
	case st.Target == st.Source:
		return fmt.Sprintf("Dragging #%d → own position", st.Source+1)
	default:
		return fmt.Sprintf("Dragging #%d → %s #%d", st.Source+1, st.Side, st.Target+1)
	}
}
