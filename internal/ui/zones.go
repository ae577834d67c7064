package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Rect is the inclusive cell rectangle a marked zone occupied in the last
// rendered frame.
type Rect struct {
	StartX, StartY int
	EndX, EndY     int
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.StartX && x <= r.EndX && y >= r.StartY && y <= r.EndY
}

// Height is the number of lines r spans.
func (r Rect) Height() int {
	return r.EndY - r.StartY + 1
}

// Locator resolves zone IDs to their on-screen bounds.
type Locator interface {
	Locate(id string) (Rect, bool)
}

// ZoneLocator reads bounds from the global bubblezone manager.
type ZoneLocator struct{}

func (ZoneLocator) Locate(id string) (Rect, bool) {
	z := zone.Get(id)
	if z.IsZero() {
		return Rect{}, false
	}
	return Rect{StartX: z.StartX, StartY: z.StartY, EndX: z.EndX, EndY: z.EndY}, true
}

// StaticLocator serves fixed bounds. Useful when nothing is rendered
// through bubblezone, e.g. in headless runs.
type StaticLocator map[string]Rect

func (s StaticLocator) Locate(id string) (Rect, bool) {
	r, ok := s[id]
	return r, ok
}

func inBounds(loc Locator, id string, msg tea.MouseMsg) (Rect, bool) {
	r, ok := loc.Locate(id)
	if !ok || !r.Contains(msg.X, msg.Y) {
		return Rect{}, false
	}
	return r, true
}
