package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type pointerState int

const (
	pointerIdle pointerState = iota
	pointerHeld
)

// GestureKind is the phase of a press-drag-release gesture.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureStart
	GestureMove
	GestureEnd
)

// Gesture is what the tracker made of one mouse message.
type Gesture struct {
	Kind GestureKind
	ID   string // zone the gesture started in
	X, Y int
	DX   int // horizontal movement since the previous event
}

// PointerTracker turns raw mouse messages into gestures that start on one
// of a set of zones.
type PointerTracker struct {
	state pointerState
	id    string
	lastX int
}

// NewPointerTracker creates an idle tracker.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{state: pointerIdle}
}

// Handle processes msg. ok is false when msg is not part of a gesture and
// should be passed on.
func (p *PointerTracker) Handle(msg tea.MouseMsg, loc Locator, ids []string) (g Gesture, ok bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return Gesture{}, false
		}
		for _, id := range ids {
			if _, hit := inBounds(loc, id, msg); hit {
				p.start(id, msg.X)
				return Gesture{Kind: GestureStart, ID: id, X: msg.X, Y: msg.Y}, true
			}
		}
	case tea.MouseActionMotion:
		if p.state == pointerHeld {
			dx := msg.X - p.lastX
			p.lastX = msg.X
			return Gesture{Kind: GestureMove, ID: p.id, X: msg.X, Y: msg.Y, DX: dx}, true
		}
	case tea.MouseActionRelease:
		// X10 mouse reporting does not say which button was released.
		if p.state == pointerHeld && (msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone) {
			id := p.id
			p.Reset()
			return Gesture{Kind: GestureEnd, ID: id, X: msg.X, Y: msg.Y}, true
		}
	}
	return Gesture{}, false
}

// Held reports whether a gesture is in progress.
func (p *PointerTracker) Held() bool {
	return p.state == pointerHeld
}

// HeldID returns the zone the current gesture started in.
func (p *PointerTracker) HeldID() string {
	return p.id
}

// Reset drops any gesture in progress.
func (p *PointerTracker) Reset() {
	p.state = pointerIdle
	p.id = ""
	p.lastX = 0
}

func (p *PointerTracker) start(id string, x int) {
	p.state = pointerHeld
	p.id = id
	p.lastX = x
}
