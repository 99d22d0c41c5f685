package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// EventType names an interaction event delivered through an Emitter.
type EventType int

const (
	EventPointerEnter EventType = iota
	EventPointerLeave
	EventButtonDown
	EventButtonUp
	EventPressed
	EventReleased
	EventChanged
	EventControllerConnected
	EventKeyPressed
	// EventCancel tells a widget that a Down it received will never see its Up.
	EventCancel
)

var eventTypeNames = map[EventType]string{
	EventPointerEnter:        "PointerEnter",
	EventPointerLeave:        "PointerLeave",
	EventButtonDown:          "ButtonDown",
	EventButtonUp:            "ButtonUp",
	EventPressed:             "Pressed",
	EventReleased:            "Released",
	EventChanged:             "Changed",
	EventControllerConnected: "ControllerConnected",
	EventKeyPressed:          "KeyPressed",
	EventCancel:              "Cancel",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the single payload shape for every interaction event. Fields that
// do not apply to a type are left zero.
type Event struct {
	Type   EventType
	Source *GameObject

	// Button events
	Button     ButtonID
	Key        Key
	Point      rl.Vector3
	Controller *ControllerHandle

	// Changed and KeyPressed
	Text string
}

// Listener receives events from an Emitter.
type Listener func(Event)

// ListenerID identifies one registration. Go funcs are not comparable, so the
// ID returned by AddListener is what RemoveListener matches on.
type ListenerID uint64

type listenerEntry struct {
	id ListenerID
	fn Listener
}

// Emitter is a multi-cast event hub keyed by event type.
// Listeners for a type fire synchronously in registration order.
type Emitter struct {
	listeners map[EventType][]listenerEntry
	nextID    ListenerID
}

// AddListener registers fn for events of type t. Registering the same func
// twice yields two registrations that both fire.
func (e *Emitter) AddListener(t EventType, fn Listener) ListenerID {
	if fn == nil {
		return 0
	}
	if e.listeners == nil {
		e.listeners = make(map[EventType][]listenerEntry)
	}
	e.nextID++
	e.listeners[t] = append(e.listeners[t], listenerEntry{id: e.nextID, fn: fn})
	return e.nextID
}

// RemoveListener removes the first registration of type t matching id.
// Unknown ids are ignored.
func (e *Emitter) RemoveListener(t EventType, id ListenerID) {
	entries := e.listeners[t]
	for i, entry := range entries {
		if entry.id == id {
			e.listeners[t] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Emit invokes all listeners currently registered for ev.Type. Listeners
// added or removed during dispatch take effect on the next Emit.
func (e *Emitter) Emit(ev Event) {
	entries := e.listeners[ev.Type]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)
	for _, entry := range snapshot {
		entry.fn(ev)
	}
}
