package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dragsort/internal/dataset"
	"github.com/rileylov/dragsort/internal/reorder"
)

var (
	listHeader = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(subtle).
			Render
	rowStyle       = lipgloss.NewStyle().PaddingLeft(2)
	rowCursorStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(highlight).
			PaddingLeft(1)
	rowTitleStyle    = lipgloss.NewStyle().Bold(true)
	rowLocationStyle = lipgloss.NewStyle().Foreground(muted)
	rowDraggedStyle  = lipgloss.NewStyle().Faint(true).Foreground(muted)
	indicatorStyle   = lipgloss.NewStyle().Foreground(special)
	endStyle         = lipgloss.NewStyle().Foreground(muted).PaddingLeft(2)
)

const (
	listHeaderLines = 2 // title and its bottom border
	rowLines        = 3 // gap line plus the two-line row
	footLines       = 2 // last gap plus the sentinel or "more" line
)

// OrderChangedMsg is emitted after a drop produced a new order.
type OrderChangedMsg struct {
	Moved    dataset.Item
	From, To int
	Order    []dataset.Item
}

// DragStatus is the list's view of the drag in progress.
type DragStatus struct {
	Dragging  bool
	Source    int
	HasTarget bool
	Target    int
	Side      reorder.Side
}

// List renders items as zone-marked rows and drives a reorder.Session from
// mouse gestures over them.
type List struct {
	id     string
	width  int
	height int
	title  string
	items  []dataset.Item
	cursor int
	offset int // first visible row

	session reorder.Session[dataset.Item]
	pointer *PointerTracker
	loc     Locator
	keys    keyMap
	logger  *slog.Logger
}

// NewList creates a list over a copy of items. Row bounds are resolved
// through loc.
func NewList(title string, items []dataset.Item, loc Locator, logger *slog.Logger) *List {
	return &List{
		id:      zone.NewPrefix(),
		title:   title,
		items:   append([]dataset.Item(nil), items...),
		pointer: NewPointerTracker(),
		loc:     loc,
		keys:    defaultKeyMap(),
		logger:  logger,
	}
}

func (l *List) Init() tea.Cmd {
	return nil
}

func (l *List) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width
		l.height = msg.Height
		l.clampOffset()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, l.keys.Up):
			if l.cursor > 0 {
				l.cursor--
			}
			l.follow(l.cursor)
		case key.Matches(msg, l.keys.Down):
			if l.cursor < len(l.items)-1 {
				l.cursor++
			}
			l.follow(l.cursor)
		case key.Matches(msg, l.keys.Cancel):
			if l.session.Active() {
				l.pointer.Reset()
				l.cancel("cancelled from keyboard")
			}
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				l.scroll(-1)
				return l, nil
			case tea.MouseButtonWheelDown:
				l.scroll(1)
				return l, nil
			}
		}
		g, ok := l.pointer.Handle(msg, l.loc, l.rowIDs())
		if !ok {
			return l, nil
		}
		switch g.Kind {
		case GestureStart:
			i := l.indexOfZone(g.ID)
			if i < 0 {
				l.pointer.Reset()
				return l, nil
			}
			if l.session.Active() {
				l.logger.Debug("abandoning previous drag")
			}
			l.session.Start(i)
			l.cursor = i
			l.logger.Debug("drag started", "index", i, "id", l.items[i].ID)
		case GestureMove:
			l.track(msg)
		case GestureEnd:
			if !l.track(msg) {
				l.cancel("released outside list")
				return l, nil
			}
			return l, l.commit()
		}
	}
	return l, nil
}

// track points the session at the visible row (or end-of-list sentinel)
// under the pointer, using that row's own bounds. It reports whether
// anything was under the pointer.
func (l *List) track(msg tea.MouseMsg) bool {
	first, end := l.window()
	for i := first; i < end; i++ {
		if r, ok := inBounds(l.loc, l.rowID(l.items[i]), msg); ok {
			l.session.UpdateTarget(i, float64(msg.Y), float64(r.StartY), float64(r.Height()))
			l.autoScroll(i, first, end)
			return true
		}
	}
	if end == len(l.items) {
		if _, ok := inBounds(l.loc, l.endID(), msg); ok {
			l.session.SetTarget(len(l.items), reorder.SideAbove)
			return true
		}
	}
	return false
}

// autoScroll brings the next hidden row into view while a drag targets
// the outer half of the first or last visible row.
func (l *List) autoScroll(target, first, end int) {
	_, side, ok := l.session.Target()
	if !ok {
		return
	}
	switch {
	case target == first && side == reorder.SideAbove:
		l.scroll(-1)
	case target == end-1 && side == reorder.SideBelow:
		l.scroll(1)
	}
}

// visibleRows is how many rows fit in the pane. Room for the last gap and
// the sentinel is always kept.
func (l *List) visibleRows() int {
	if l.height <= 0 {
		return len(l.items)
	}
	return max((l.height-listHeaderLines-footLines)/rowLines, 1)
}

// window returns the half-open range of rows currently rendered.
func (l *List) window() (first, end int) {
	return l.offset, min(l.offset+l.visibleRows(), len(l.items))
}

func (l *List) maxOffset() int {
	return max(len(l.items)-l.visibleRows(), 0)
}

func (l *List) scroll(delta int) {
	l.offset += delta
	l.clampOffset()
}

func (l *List) clampOffset() {
	l.offset = min(max(l.offset, 0), l.maxOffset())
}

// follow scrolls the least amount that makes row i visible.
func (l *List) follow(i int) {
	if i < l.offset {
		l.offset = i
	}
	if vis := l.visibleRows(); i >= l.offset+vis {
		l.offset = i - vis + 1
	}
	l.clampOffset()
}

func (l *List) commit() tea.Cmd {
	src, _ := l.session.Source()
	before := l.items
	after := l.session.Commit(before)
	if sameOrder(before, after) {
		l.logger.Debug("drop left order unchanged")
		return nil
	}

	moved := before[src]
	to := indexOfID(after, moved.ID)
	l.items = after
	l.cursor = to
	l.follow(to)
	l.logger.Info("item moved", "id", moved.ID, "from", src, "to", to)

	msg := OrderChangedMsg{Moved: moved, From: src, To: to, Order: l.Items()}
	return func() tea.Msg { return msg }
}

func (l *List) cancel(reason string) {
	if !l.session.Active() {
		return
	}
	src, _ := l.session.Source()
	l.session.Cancel()
	l.logger.Debug("drag cancelled", "index", src, "reason", reason)
}

// Items returns a copy of the current order.
func (l *List) Items() []dataset.Item {
	return append([]dataset.Item(nil), l.items...)
}

// SetItems replaces the list, abandoning any drag in progress.
func (l *List) SetItems(items []dataset.Item) {
	l.pointer.Reset()
	l.cancel("list replaced")
	l.items = append([]dataset.Item(nil), items...)
	if l.cursor >= len(l.items) {
		l.cursor = max(len(l.items)-1, 0)
	}
	l.clampOffset()
}

// Status reports the drag in progress, if any.
func (l *List) Status() DragStatus {
	src, dragging := l.session.Source()
	target, side, hasTarget := l.session.Target()
	return DragStatus{
		Dragging:  dragging,
		Source:    src,
		HasTarget: hasTarget,
		Target:    target,
		Side:      side,
	}
}

// Subject is the item the preview should show: the dragged one while a
// drag is in progress, otherwise the one under the cursor.
func (l *List) Subject() (dataset.Item, bool) {
	if len(l.items) == 0 {
		return dataset.Item{}, false
	}
	if src, ok := l.session.Source(); ok && src < len(l.items) {
		return l.items[src], true
	}
	return l.items[l.cursor], true
}

// indicatorGap is the gap (0 above the first row, len below the last) that
// holds the insertion line, or -1.
func (l *List) indicatorGap() int {
	st := l.Status()
	if !st.Dragging || !st.HasTarget || st.Target == st.Source {
		return -1
	}
	if st.Target >= len(l.items) {
		return len(l.items)
	}
	if st.Side == reorder.SideAbove {
		return st.Target
	}
	return st.Target + 1
}

func (l *List) View() string {
	gap := l.indicatorGap()
	st := l.Status()
	first, end := l.window()

	out := []string{listHeader(l.title)}
	for i := first; i < end; i++ {
		it := l.items[i]
		out = append(out, l.renderGap(i == gap, i == first && first > 0))
		out = append(out, zone.Mark(l.rowID(it), l.renderRow(it, st.Dragging && st.Source == i, i == l.cursor)))
	}
	out = append(out, l.renderGap(gap == end, false))
	if end == len(l.items) {
		out = append(out, zone.Mark(l.endID(), endStyle.Render("↧ end of list")))
	} else {
		out = append(out, endStyle.Render(fmt.Sprintf("↓ %d more", len(l.items)-end)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, out...)
	style := lipgloss.NewStyle()
	if l.width > 0 {
		style = style.Width(l.width).MaxWidth(l.width)
	}
	if l.height > 0 {
		style = style.Height(l.height).MaxHeight(l.height)
	}
	return style.Render(content)
}

func (l *List) renderRow(it dataset.Item, dragged, cursor bool) string {
	body := rowTitleStyle.Render(it.Title) + "\n" + rowLocationStyle.Render("⌖ "+it.Location)
	switch {
	case dragged:
		return rowStyle.Render(rowDraggedStyle.Render(it.Title + "\n⌖ " + it.Location))
	case cursor:
		return rowCursorStyle.Render(body)
	default:
		return rowStyle.Render(body)
	}
}

func (l *List) renderGap(indicator, moreAbove bool) string {
	if !indicator {
		if moreAbove {
			return endStyle.Render(fmt.Sprintf("↑ %d more", l.offset))
		}
		return ""
	}
	w := l.width - 2
	if w < 8 {
		w = 8
	}
	return indicatorStyle.Render(" " + strings.Repeat("━", w))
}

func (l *List) rowID(it dataset.Item) string {
	return l.id + "row_" + it.ID
}

func (l *List) endID() string {
	return l.id + "end"
}

// rowIDs returns the zones of the visible rows. Hidden rows keep no
// usable bounds.
func (l *List) rowIDs() []string {
	first, end := l.window()
	ids := make([]string, 0, end-first)
	for _, it := range l.items[first:end] {
		ids = append(ids, l.rowID(it))
	}
	return ids
}

func (l *List) indexOfZone(id string) int {
	for i, it := range l.items {
		if l.rowID(it) == id {
			return i
		}
	}
	return -1
}

func indexOfID(items []dataset.Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func sameOrder(a, b []dataset.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
