package ui

import (
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	dividerWidth  = 1
	minPaneWidth  = 24
	maxPaneShare  = 0.75
	dividerGlyph  = "│"
	defaultShares = 0.6
)

var (
	dividerStyle = lipgloss.NewStyle().
			Width(dividerWidth).
			Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#585858"})
	dividerActiveStyle = dividerStyle.
				Foreground(highlight)
)

// Split lays panes out left to right with draggable dividers between them.
type Split struct {
	id      string
	width   int
	height  int
	panes   []tea.Model
	shares  []float64 // width share per pane, summing to 1
	pointer *PointerTracker
	loc     Locator
}

// NewSplit creates a split over panes. shares are normalized to sum to 1;
// it panics when the two slices differ in length.
func NewSplit(panes []tea.Model, shares []float64, loc Locator) *Split {
	if len(panes) != len(shares) {
		panic("panes and shares must have the same length")
	}
	s := &Split{
		id:      zone.NewPrefix(),
		panes:   panes,
		shares:  append([]float64(nil), shares...),
		pointer: NewPointerTracker(),
		loc:     loc,
	}
	s.normalize()
	return s
}

func (s *Split) Init() tea.Cmd {
	return nil
}

func (s *Split) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, s.resizePanes()
	case tea.MouseMsg:
		g, ok := s.pointer.Handle(msg, s.loc, s.dividerIDs())
		if ok {
			if g.DX != 0 {
				s.moveDivider(g.ID, g.DX)
				return s, s.resizePanes()
			}
			return s, nil
		}
	}
	return s, s.broadcast(msg)
}

func (s *Split) View() string {
	if len(s.panes) == 0 {
		return ""
	}
	widths := s.paneWidths()
	parts := make([]string, 0, 2*len(s.panes)-1)
	for i, p := range s.panes {
		parts = append(parts, lipgloss.NewStyle().
			Width(widths[i]).
			Height(s.height).
			MaxHeight(s.height).
			Render(p.View()))
		if i < len(s.panes)-1 {
			parts = append(parts, s.renderDivider(s.dividerID(i)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (s *Split) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, p := range s.panes {
		var cmd tea.Cmd
		s.panes[i], cmd = p.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (s *Split) resizePanes() tea.Cmd {
	var cmds []tea.Cmd
	for i, w := range s.paneWidths() {
		var cmd tea.Cmd
		s.panes[i], cmd = s.panes[i].Update(tea.WindowSizeMsg{Width: w, Height: s.height})
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (s *Split) available() int {
	return s.width - (len(s.panes)-1)*dividerWidth
}

func (s *Split) paneWidths() []int {
	avail := s.available()
	widths := make([]int, len(s.panes))
	used := 0
	for i := range s.panes {
		if i == len(s.panes)-1 {
			// The last pane takes whatever rounding left over.
			widths[i] = max(avail-used, 0)
			break
		}
		widths[i] = int(math.Round(float64(avail) * s.shares[i]))
		used += widths[i]
	}
	return widths
}

func (s *Split) dividerIDs() []string {
	ids := make([]string, 0, len(s.panes)-1)
	for i := 0; i < len(s.panes)-1; i++ {
		ids = append(ids, s.dividerID(i))
	}
	return ids
}

func (s *Split) dividerID(i int) string {
	return s.id + "divider_" + strconv.Itoa(i)
}

func (s *Split) renderDivider(id string) string {
	style := dividerStyle
	if s.pointer.Held() && s.pointer.HeldID() == id {
		style = dividerActiveStyle
	}
	lines := make([]string, max(s.height, 1))
	for i := range lines {
		lines[i] = dividerGlyph
	}
	return zone.Mark(id, style.Render(strings.Join(lines, "\n")))
}

// moveDivider shifts the divider identified by id by dx cells, keeping
// both neighbours between minPaneWidth and maxPaneShare.
func (s *Split) moveDivider(id string, dx int) {
	left := -1
	for i := 0; i < len(s.panes)-1; i++ {
		if s.dividerID(i) == id {
			left = i
			break
		}
	}
	avail := s.available()
	if left < 0 || avail <= 0 {
		return
	}
	right := left + 1

	pair := s.shares[left] + s.shares[right]
	minShare := float64(minPaneWidth) / float64(avail)

	newLeft := s.shares[left] + float64(dx)/float64(avail)
	newLeft = max(newLeft, minShare)
	newLeft = min(newLeft, maxPaneShare)
	newRight := pair - newLeft
	if newRight < minShare {
		newRight = minShare
		newLeft = pair - newRight
	}
	if newRight > maxPaneShare {
		newRight = maxPaneShare
		newLeft = pair - newRight
	}

	s.shares[left] = newLeft
	s.shares[right] = newRight
}

func (s *Split) normalize() {
	total := 0.0
	for _, v := range s.shares {
		total += v
	}
	if total <= 0 {
		return
	}
	for i := range s.shares {
		s.shares[i] /= total
	}
}
