package controls

import (
	"log"

	"vrcollab/internal/engine"
	"vrcollab/internal/input"
	"vrcollab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyHandler receives keystrokes while it holds keyboard focus.
type KeyHandler interface {
	Focused() bool
	HandleKey(k engine.Key) bool
	Blur()
}

// Locomotion consumes look and movement intent that no widget claimed.
type Locomotion interface {
	Look(delta rl.Vector2)
	Move(m input.Movement, deltaTime float32)
}

// Controls runs the per-tick interaction pipeline: adapter frame, hit test,
// hover transitions, then button and key routing. It is also an event source
// in its own right; every routed event is re-published on it.
type Controls struct {
	adapter input.Adapter
	hits    *physics.HitTester
	tracker Tracker
	keys    KeyHandler
	loco    Locomotion
	events  engine.Emitter

	hit    physics.Intersection
	hasHit bool
	held   map[engine.ButtonID]*engine.GameObject
}

func New(adapter input.Adapter, hits *physics.HitTester) *Controls {
	return &Controls{
		adapter: adapter,
		hits:    hits,
		held:    make(map[engine.ButtonID]*engine.GameObject),
	}
}

func (c *Controls) SetKeyHandler(k KeyHandler) { c.keys = k }
func (c *Controls) SetLocomotion(l Locomotion) { c.loco = l }
func (c *Controls) Adapter() input.Adapter { return c.adapter }
func (c *Controls) Hits() *physics.HitTester { return c.hits }
func (c *Controls) State() PointerState { return c.tracker.State() }
func (c *Controls) Hovered() *engine.GameObject { return c.tracker.Target() }

func (c *Controls) AddListener(t engine.EventType, fn engine.Listener) engine.ListenerID {
	return c.events.AddListener(t, fn)
}

func (c *Controls) RemoveListener(t engine.EventType, id engine.ListenerID) {
	c.events.RemoveListener(t, id)
}

// Intersection returns the current nearest hit, if any.
func (c *Controls) Intersection() (physics.Intersection, bool) {
	return c.hit, c.hasHit
}

// Update runs one tick.
func (c *Controls) Update(deltaTime float32) {
	frame := c.adapter.Update(deltaTime)

	c.updatePointer(frame)
	for _, ev := range frame.Events {
		c.dispatch(ev)
	}
	if frame.SessionEnded {
		c.Cancel()
	}

	if c.loco != nil {
		if frame.Look.X != 0 || frame.Look.Y != 0 {
			c.loco.Look(frame.Look)
		}
		c.loco.Move(frame.Move, deltaTime)
	}
}

func (c *Controls) updatePointer(frame input.Frame) {
	c.hasHit = false
	c.hit = physics.Intersection{}
	if frame.HasRay && c.hits != nil {
		c.hit, c.hasHit = c.hits.Raycast(frame.Ray)
	}
	c.deliverAll(c.tracker.Update(c.hit.Object))
}

func (c *Controls) deliverAll(events []engine.Event) {
	for _, ev := range events {
		ev.Source.SendEvent(ev)
		c.events.Emit(ev)
	}
}

func (c *Controls) dispatch(ev engine.Event) {
	switch ev.Type {
	case engine.EventButtonDown, engine.EventButtonUp:
		if ev.Button.Device == engine.DeviceKeyboard {
			c.dispatchKey(ev)
			return
		}
		c.dispatchButton(ev)
	default:
		c.events.Emit(ev)
	}
}

// dispatchKey gives keystrokes to the focus holder; otherwise they are
// navigation input for whoever listens on Controls.
func (c *Controls) dispatchKey(ev engine.Event) {
	if c.keys != nil && c.keys.Focused() {
		if ev.Type == engine.EventButtonDown {
			c.keys.HandleKey(ev.Key)
		}
		return
	}
	c.events.Emit(ev)
}

// dispatchButton delivers a pointer button edge to the hovered target only.
// An Up that lands somewhere other than where its Down went cancels the
// press at the origin so it cannot stay latched.
func (c *Controls) dispatchButton(ev engine.Event) {
	target := c.tracker.Target()
	if c.hasHit {
		ev.Point = c.hit.Point
	}

	switch ev.Type {
	case engine.EventButtonDown:
		// A repeated Down without its Up replaces the origin; the old one
		// would otherwise never hear about the release.
		if origin, ok := c.held[ev.Button]; ok && origin != target {
			delete(c.held, ev.Button)
			origin.SendEvent(engine.Event{Type: engine.EventCancel, Button: ev.Button, Controller: ev.Controller})
		}
		if target != nil {
			c.held[ev.Button] = target
		}
	case engine.EventButtonUp:
		if origin, ok := c.held[ev.Button]; ok {
			delete(c.held, ev.Button)
			if origin != target {
				origin.SendEvent(engine.Event{Type: engine.EventCancel, Button: ev.Button, Controller: ev.Controller})
			}
		}
	}

	if target != nil {
		target.SendEvent(ev)
	}
	ev.Source = target
	c.events.Emit(ev)
}

// Cancel is the cleanup path for session end or device loss: pressed
// targets get Cancel, the hovered target gets Leave, focus is released and
// the adapter drops its latched levels.
func (c *Controls) Cancel() {
	for button, obj := range c.held {
		obj.SendEvent(engine.Event{Type: engine.EventCancel, Button: button})
		delete(c.held, button)
	}
	c.deliverAll(c.tracker.Reset())
	c.hasHit = false
	c.hit = physics.Intersection{}
	if c.keys != nil {
		c.keys.Blur()
	}
	c.adapter.Reset()
	log.Println("Controls: input cancelled, interaction state released")
}
