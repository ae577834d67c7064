package ui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/dragsort/internal/dataset"
	"github.com/rileylov/dragsort/internal/reorder"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// layoutRows places row i on lines 3i+1..3i+2, with a one line gap above
// each row, and the end-of-list sentinel after the last gap.
func layoutRows(loc StaticLocator, l *List) {
	for i, it := range l.items {
		loc[l.rowID(it)] = Rect{StartX: 0, StartY: 3*i + 1, EndX: 30, EndY: 3*i + 2}
	}
	n := len(l.items)
	loc[l.endID()] = Rect{StartX: 0, StartY: 3*n + 1, EndX: 30, EndY: 3*n + 1}
}

func newTestList(t *testing.T) (*List, StaticLocator) {
	t.Helper()
	loc := StaticLocator{}
	l := NewList("Items", dataset.Default(), loc, discardLogger())
	layoutRows(loc, l)
	return l, loc
}

func rowTop(i int) int    { return 3*i + 1 }
func rowBottom(i int) int { return 3*i + 2 }

func drag(t *testing.T, l *List, msgs ...tea.MouseMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = l.Update(msg)
	}
	return cmd
}

func TestList_DragForwardBelow(t *testing.T) {
	l, _ := newTestList(t)

	cmd := drag(t, l, press(2, rowTop(0)), motion(2, rowBottom(3)), release(2, rowBottom(3)))
	require.NotNil(t, cmd)

	assert.Equal(t, []string{"2", "3", "4", "1", "5", "6"}, dataset.IDs(l.Items()))
	msg, ok := cmd().(OrderChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "1", msg.Moved.ID)
	assert.Equal(t, 0, msg.From)
	assert.Equal(t, 3, msg.To)
	assert.Equal(t, dataset.IDs(l.Items()), dataset.IDs(msg.Order))
	assert.False(t, l.Status().Dragging)
	assert.Equal(t, 3, l.cursor)
}

func TestList_DragBackwardAbove(t *testing.T) {
	l, _ := newTestList(t)

	cmd := drag(t, l, press(2, rowBottom(3)), motion(2, rowTop(1)), release(2, rowTop(1)))
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"1", "4", "2", "3", "5", "6"}, dataset.IDs(l.Items()))
}

func TestList_DropOnEndSentinel(t *testing.T) {
	l, _ := newTestList(t)

	cmd := drag(t, l, press(2, rowTop(0)), release(2, rowTop(6)))
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"2", "3", "4", "5", "6", "1"}, dataset.IDs(l.Items()))
}

func TestList_ReleaseOutsideCancels(t *testing.T) {
	l, _ := newTestList(t)

	cmd := drag(t, l, press(2, rowTop(0)), motion(2, rowBottom(3)), release(2, 60))
	assert.Nil(t, cmd)
	assert.Equal(t, dataset.IDs(dataset.Default()), dataset.IDs(l.Items()))
	assert.False(t, l.Status().Dragging)
}

func TestList_SelfDropIsNoop(t *testing.T) {
	l, _ := newTestList(t)

	cmd := drag(t, l, press(2, rowTop(2)), motion(2, rowBottom(2)), release(2, rowBottom(2)))
	assert.Nil(t, cmd)
	assert.Equal(t, dataset.IDs(dataset.Default()), dataset.IDs(l.Items()))
}

func TestList_MotionWithoutPressIsIgnored(t *testing.T) {
	l, _ := newTestList(t)

	cmd := drag(t, l, motion(2, rowTop(3)), release(2, rowTop(3)))
	assert.Nil(t, cmd)
	assert.False(t, l.Status().Dragging)
	assert.False(t, l.Status().HasTarget)
}

func TestList_EscCancelsDrag(t *testing.T) {
	l, _ := newTestList(t)

	drag(t, l, press(2, rowTop(0)), motion(2, rowBottom(3)))
	require.True(t, l.Status().Dragging)

	l.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, l.Status().Dragging)

	cmd := drag(t, l, release(2, rowBottom(3)))
	assert.Nil(t, cmd)
	assert.Equal(t, dataset.IDs(dataset.Default()), dataset.IDs(l.Items()))
}

func TestList_NewPressReplacesDrag(t *testing.T) {
	l, _ := newTestList(t)

	cmd := drag(t, l,
		press(2, rowTop(0)), motion(2, rowBottom(3)),
		press(2, rowTop(2)), motion(2, rowBottom(4)), release(2, rowBottom(4)),
	)
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"1", "2", "4", "5", "3", "6"}, dataset.IDs(l.Items()))
}

func TestList_Status(t *testing.T) {
	l, _ := newTestList(t)

	drag(t, l, press(2, rowTop(1)))
	st := l.Status()
	assert.True(t, st.Dragging)
	assert.Equal(t, 1, st.Source)
	assert.False(t, st.HasTarget)

	drag(t, l, motion(2, rowTop(4)))
	st = l.Status()
	require.True(t, st.HasTarget)
	assert.Equal(t, 4, st.Target)
	assert.Equal(t, reorder.SideAbove, st.Side)
	assert.Equal(t, 4, l.indicatorGap())

	drag(t, l, motion(2, rowBottom(4)))
	assert.Equal(t, reorder.SideBelow, l.Status().Side)
	assert.Equal(t, 5, l.indicatorGap())

	drag(t, l, motion(2, rowTop(6)))
	assert.Equal(t, 6, l.Status().Target)
	assert.Equal(t, 6, l.indicatorGap())

	// Pointer over a gap keeps the last target.
	drag(t, l, motion(2, 3*4))
	assert.Equal(t, 6, l.Status().Target)

	drag(t, l, motion(2, rowTop(1)))
	assert.Equal(t, -1, l.indicatorGap(), "no indicator over the dragged row itself")
}

func TestList_ViewShowsIndicatorOnlyWhileTargeting(t *testing.T) {
	l, _ := newTestList(t)
	l.Update(tea.WindowSizeMsg{Width: 40, Height: 30})

	view := l.View()
	assert.Contains(t, view, "Scotland Island")
	assert.Contains(t, view, "end of list")
	assert.NotContains(t, view, "━")

	drag(t, l, press(2, rowTop(0)), motion(2, rowBottom(3)))
	assert.Contains(t, l.View(), "━")

	drag(t, l, release(2, 60))
	assert.NotContains(t, l.View(), "━")
}

func TestList_ViewKeepsRowGeometryStable(t *testing.T) {
	l, _ := newTestList(t)
	l.Update(tea.WindowSizeMsg{Width: 40, Height: 30})

	idle := strings.Count(l.View(), "\n")
	drag(t, l, press(2, rowTop(0)), motion(2, rowTop(3)))
	assert.Equal(t, idle, strings.Count(l.View(), "\n"))
}

func TestList_CursorKeys(t *testing.T) {
	l, _ := newTestList(t)

	l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, l.cursor)

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, l.cursor)

	it, ok := l.Subject()
	require.True(t, ok)
	assert.Equal(t, "3", it.ID)

	for i := 0; i < 10; i++ {
		l.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 5, l.cursor)
}

func TestList_SubjectFollowsDrag(t *testing.T) {
	l, _ := newTestList(t)

	drag(t, l, press(2, rowTop(4)))
	it, ok := l.Subject()
	require.True(t, ok)
	assert.Equal(t, "5", it.ID)
}

func TestList_SetItemsAbandonsDrag(t *testing.T) {
	l, loc := newTestList(t)
	drag(t, l, press(2, rowTop(5)), motion(2, rowTop(1)))

	l.SetItems(dataset.Default()[:3])
	layoutRows(loc, l)
	assert.False(t, l.Status().Dragging)
	assert.Equal(t, 2, l.cursor)

	cmd := drag(t, l, release(2, rowTop(1)))
	assert.Nil(t, cmd)
	assert.Len(t, l.Items(), 3)
}

func manyItems(n int) []dataset.Item {
	items := make([]dataset.Item, n)
	for i := range items {
		id := fmt.Sprintf("%02d", i)
		items[i] = dataset.Item{ID: id, Title: "Stop " + id, Location: "Somewhere"}
	}
	return items
}

// layoutWindow places only the rendered rows, the way bubblezone would
// after a scan: visible row k on lines 3k+3..3k+4 below the two header
// lines, and the sentinel after the last gap when it is rendered.
func layoutWindow(loc StaticLocator, l *List) {
	for k := range loc {
		delete(loc, k)
	}
	first, end := l.window()
	for i := first; i < end; i++ {
		k := i - first
		loc[l.rowID(l.items[i])] = Rect{StartX: 0, StartY: 3*k + 3, EndX: 30, EndY: 3*k + 4}
	}
	if end == len(l.items) {
		k := end - first
		loc[l.endID()] = Rect{StartX: 0, StartY: 3*k + 3, EndX: 30, EndY: 3*k + 3}
	}
}

func visibleTop(k int) int    { return 3*k + 3 }
func visibleBottom(k int) int { return 3*k + 4 }

func newScrollingList(t *testing.T, n, height int) (*List, StaticLocator) {
	t.Helper()
	loc := StaticLocator{}
	l := NewList("Items", manyItems(n), loc, discardLogger())
	l.Update(tea.WindowSizeMsg{Width: 40, Height: height})
	layoutWindow(loc, l)
	return l, loc
}

func TestList_WindowFitsPane(t *testing.T) {
	// 20 lines: header 2, five rows of 3, last gap and footer line.
	l, _ := newScrollingList(t, 20, 20)

	first, end := l.window()
	assert.Equal(t, 0, first)
	assert.Equal(t, 5, end)

	view := l.View()
	assert.Contains(t, view, "Stop 04")
	assert.NotContains(t, view, "Stop 05")
	assert.Contains(t, view, "↓ 15 more")
	assert.NotContains(t, view, "end of list")
	assert.LessOrEqual(t, strings.Count(view, "\n")+1, 20)
}

func TestList_DefaultItemsShowSentinelAfterScrolling(t *testing.T) {
	// The list pane of an 80x24 terminal.
	l, _ := newScrollingList(t, 6, 20)
	require.NotContains(t, l.View(), "end of list")

	l.Update(tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	view := l.View()
	assert.Contains(t, view, "end of list")
	assert.Contains(t, view, "↑ 1 more")

	l.Update(tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	first, _ := l.window()
	assert.Equal(t, 1, first, "scrolling stops at the last row")
}

func TestList_CursorScrollsWindow(t *testing.T) {
	l, _ := newScrollingList(t, 20, 20)

	for i := 0; i < 7; i++ {
		l.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	first, end := l.window()
	assert.Equal(t, 3, first)
	assert.Equal(t, 8, end)

	for i := 0; i < 7; i++ {
		l.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	first, _ = l.window()
	assert.Equal(t, 0, first)
}

func TestList_DragToEndOfLongList(t *testing.T) {
	l, loc := newScrollingList(t, 20, 20)

	for i := 0; i < 30; i++ {
		l.Update(tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	}
	layoutWindow(loc, l)
	first, end := l.window()
	require.Equal(t, 15, first)
	require.Equal(t, 20, end)

	cmd := drag(t, l, press(2, visibleTop(0)), release(2, visibleTop(5)))
	require.NotNil(t, cmd)
	ids := dataset.IDs(l.Items())
	assert.Equal(t, "15", ids[19])
	assert.Len(t, ids, 20)
}

func TestList_HiddenRowsAreNotTargets(t *testing.T) {
	l, loc := newScrollingList(t, 20, 20)
	// A stale zone for a row that is no longer rendered.
	loc[l.rowID(l.items[10])] = Rect{StartX: 0, StartY: 40, EndX: 30, EndY: 41}

	cmd := drag(t, l, press(2, visibleTop(1)), release(2, 40))
	assert.Nil(t, cmd)
	assert.Equal(t, dataset.IDs(manyItems(20)), dataset.IDs(l.Items()))
}

func TestList_DragAutoScrolls(t *testing.T) {
	l, loc := newScrollingList(t, 20, 20)

	drag(t, l, press(2, visibleTop(0)), motion(2, visibleBottom(4)))
	first, _ := l.window()
	assert.Equal(t, 1, first)
	target, side, ok := l.session.Target()
	require.True(t, ok)
	assert.Equal(t, 4, target)
	assert.Equal(t, reorder.SideBelow, side)

	// Row 05 is now rendered last; dropping on its top half puts 00 before it.
	layoutWindow(loc, l)
	cmd := drag(t, l, motion(2, visibleTop(4)), release(2, visibleTop(4)))
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"01", "02", "03", "04", "00", "05"}, dataset.IDs(l.Items())[:6])
}
