package controls

import "vrcollab/internal/engine"

type PointerState int

const (
	Idle PointerState = iota
	Hovering
)

func (s PointerState) String() string {
	if s == Hovering {
		return "Hovering"
	}
	return "Idle"
}

// Tracker is the Idle/Hovering machine fed with one hit-test result per tick.
type Tracker struct {
	target *engine.GameObject
}

func (t *Tracker) State() PointerState {
	if t.target == nil {
		return Idle
	}
	return Hovering
}

// Target returns the hovered object, or nil when Idle.
func (t *Tracker) Target() *engine.GameObject {
	return t.target
}

// Update applies one transition and returns the events it produced, Leave
// before Enter. Passing the current target again produces nothing.
func (t *Tracker) Update(hit *engine.GameObject) []engine.Event {
	if hit == t.target {
		return nil
	}
	var events []engine.Event
	if t.target != nil {
		events = append(events, engine.Event{Type: engine.EventPointerLeave, Source: t.target})
	}
	if hit != nil {
		events = append(events, engine.Event{Type: engine.EventPointerEnter, Source: hit})
	}
	t.target = hit
	return events
}

// Reset forces Idle, returning the Leave for the hovered target if any.
func (t *Tracker) Reset() []engine.Event {
	return t.Update(nil)
}
