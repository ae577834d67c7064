// Package ui is the terminal front end: a Bubble Tea program whose rows
// can be dragged with the mouse to reorder them.
package ui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dragsort/internal/dataset"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Config configures an App.
type Config struct {
	Title  string
	Items  []dataset.Item
	Logger *slog.Logger
	// Locator defaults to ZoneLocator.
	Locator Locator
}

type copiedMsg struct {
	err error
}

// App is the root model: header, list and preview split, footer.
type App struct {
	height int
	width  int

	initial []dataset.Item
	header  *header
	footer  *footer
	list    *List
	preview *Preview
	split   *Split
	keys    keyMap
	logger  *slog.Logger
}

// NewApp creates the root model for cfg.Items.
func NewApp(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	loc := cfg.Locator
	if loc == nil {
		loc = ZoneLocator{}
	}
	keys := defaultKeyMap()

	list := NewList("Items", cfg.Items, loc, logger)
	preview := NewPreview()
	a := &App{
		initial: append([]dataset.Item(nil), cfg.Items...),
		header:  newHeader(cfg.Title, loc),
		footer:  newFooter(keys),
		list:    list,
		preview: preview,
		split:   NewSplit([]tea.Model{list, preview}, []float64{defaultShares, 1 - defaultShares}, loc),
		keys:    keys,
		logger:  logger,
	}
	a.syncPreview()
	return a
}

// Order returns the list as it currently stands.
func (a *App) Order() []dataset.Item {
	return a.list.Items()
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) isInitialized() bool {
	return a.height != 0 && a.width != 0
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !a.isInitialized() {
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Mouse):
			zone.SetEnabled(!zone.Enabled())
			return a, nil
		case key.Matches(msg, a.keys.Reset):
			return a, a.reset()
		case key.Matches(msg, a.keys.Copy):
			return a, a.copyOrder()
		}
		cmd = a.propagate(msg)
	case HeaderActionMsg:
		switch msg.Action {
		case ActionReset:
			return a, a.reset()
		case ActionCopy:
			return a, a.copyOrder()
		case ActionQuit:
			return a, tea.Quit
		}
	case OrderChangedMsg:
		a.footer.Update(StatusMsg(fmt.Sprintf("moved %q from #%d to #%d", msg.Moved.Title, msg.From+1, msg.To+1)))
	case copiedMsg:
		status := "copied order to clipboard"
		if msg.err != nil {
			status = fmt.Sprintf("couldn't write to clipboard: %v", msg.err)
			a.logger.Warn("clipboard write failed", "err", msg.err)
		}
		a.footer.Update(StatusMsg(status))
	case tea.WindowSizeMsg:
		a.height = msg.Height
		a.width = msg.Width
		// Leave room for the outer border.
		msg.Height -= 2
		msg.Width -= 2
		cmd = a.propagate(msg)
	default:
		cmd = a.propagate(msg)
	}
	a.syncPreview()
	return a, cmd
}

func (a *App) propagate(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	collect := func(_ tea.Model, cmd tea.Cmd) {
		cmds = append(cmds, cmd)
	}

	collect(a.header.Update(msg))
	if wmsg, ok := msg.(tea.WindowSizeMsg); ok {
		collect(a.footer.Update(wmsg))
		middle := wmsg
		middle.Height = max(wmsg.Height-lipgloss.Height(a.header.View())-lipgloss.Height(a.footer.View()), 1)
		collect(a.split.Update(middle))
		return tea.Batch(cmds...)
	}
	collect(a.split.Update(msg))
	collect(a.footer.Update(msg))
	return tea.Batch(cmds...)
}

func (a *App) syncPreview() {
	it, ok := a.list.Subject()
	a.preview.SetSubject(it, ok, a.list.Status(), len(a.list.items))
}

func (a *App) reset() tea.Cmd {
	a.list.SetItems(a.initial)
	a.syncPreview()
	a.logger.Info("order reset")
	return func() tea.Msg { return StatusMsg("order reset") }
}

func (a *App) copyOrder() tea.Cmd {
	items := a.list.Items()
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(FormatOrder(items))}
	}
}

// FormatOrder renders items as a numbered list, one per line.
func FormatOrder(items []dataset.Item) string {
	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, it.Title, it.ID)
	}
	return b.String()
}

func (a *App) View() string {
	if !a.isInitialized() {
		return ""
	}
	s := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(highlight).
		MaxHeight(a.height).
		MaxWidth(a.width)
	return zone.Scan(s.Render(lipgloss.JoinVertical(lipgloss.Top,
		a.header.View(),
		a.split.View(),
		a.footer.View(),
	)))
}
