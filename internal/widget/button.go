package widget

import (
	"vrcollab/internal/engine"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Behavior selects how a Button reacts to Down and Up.
type Behavior int

const (
	// Momentary is pressed only between Down and Up.
	Momentary Behavior = iota
	// Toggle stays pressed after the Up that pressed it; the next full
	// press releases it.
	Toggle
	// CheckboxToggle is a Toggle whose caption reads "on" or "off".
	CheckboxToggle
)

func (b Behavior) String() string {
	switch b {
	case Toggle:
		return "toggle"
	case CheckboxToggle:
		return "checkbox"
	}
	return "momentary"
}

// ButtonState tracks the current visual state of a button
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
)

// Button is a pressable widget. It emits EventPressed and EventReleased on
// its GameObject only when the pressed state actually changes.
type Button struct {
	engine.BaseComponent

	Behavior Behavior
	Label    string
	Caption  string

	// Depth animates between Inset and InsetPressed
	Inset         float32
	InsetPressed  float32
	PressDuration float32
	Depth         float32

	pressed bool
	armed   bool
	hovered bool
	group   *ToggleGroup
	tween   *gween.Tween
}

func NewButton(behavior Behavior, label string) *Button {
	b := &Button{
		Behavior:      behavior,
		Label:         label,
		Inset:         -0.1,
		InsetPressed:  -0.3,
		PressDuration: 0.12,
	}
	b.Depth = b.Inset
	b.updateCaption()
	return b
}

func (b *Button) SetGameObject(g *engine.GameObject) {
	b.BaseComponent.SetGameObject(g)
	g.AddListener(engine.EventButtonDown, func(engine.Event) { b.Down() })
	g.AddListener(engine.EventButtonUp, func(engine.Event) { b.Up() })
	g.AddListener(engine.EventCancel, func(engine.Event) { b.Cancel() })
	g.AddListener(engine.EventPointerEnter, func(engine.Event) { b.hovered = true })
	g.AddListener(engine.EventPointerLeave, func(engine.Event) { b.hovered = false })
}

func (b *Button) Pressed() bool { return b.pressed }
func (b *Button) Armed() bool { return b.armed }
func (b *Button) Group() *ToggleGroup { return b.group }

func (b *Button) State() ButtonState {
	switch {
	case b.pressed:
		return ButtonPressed
	case b.hovered:
		return ButtonHovered
	}
	return ButtonNormal
}

// Down handles a pointer press aimed at the button.
func (b *Button) Down() {
	switch b.Behavior {
	case Momentary:
		if !b.pressed {
			b.press()
		}
	default:
		if b.pressed {
			b.armed = true
			return
		}
		b.press()
		b.armed = false
	}
}

// Up handles the matching pointer release.
func (b *Button) Up() {
	switch b.Behavior {
	case Momentary:
		if b.pressed {
			b.release()
		}
	default:
		if b.pressed && b.armed {
			b.release()
		}
	}
}

// Cancel abandons an in-flight press: a momentary button releases, a toggle
// keeps its state but forgets a pending release.
func (b *Button) Cancel() {
	if b.Behavior == Momentary && b.pressed {
		b.release()
		return
	}
	b.armed = false
}

// SetPressed changes state programmatically. Setting the current state is a
// no-op and emits nothing.
func (b *Button) SetPressed(pressed bool) {
	if pressed == b.pressed {
		return
	}
	if pressed {
		b.press()
	} else {
		b.release()
	}
	b.armed = false
}

func (b *Button) press() {
	if b.group != nil {
		b.group.releaseOthers(b)
	}
	b.pressed = true
	b.updateCaption()
	b.animate(b.InsetPressed)
	b.emit(engine.EventPressed)
}

func (b *Button) release() {
	b.pressed = false
	b.armed = false
	b.updateCaption()
	b.animate(b.Inset)
	b.emit(engine.EventReleased)
}

func (b *Button) emit(t engine.EventType) {
	if g := b.GetGameObject(); g != nil {
		g.SendEvent(engine.Event{Type: t})
	}
}

func (b *Button) updateCaption() {
	if b.Behavior != CheckboxToggle {
		return
	}
	if b.pressed {
		b.Caption = "on"
	} else {
		b.Caption = "off"
	}
}

// Text is what the button displays.
func (b *Button) Text() string {
	if b.Behavior == CheckboxToggle {
		if b.Label == "" {
			return b.Caption
		}
		return b.Label + ": " + b.Caption
	}
	return b.Label
}

func (b *Button) animate(to float32) {
	if b.PressDuration <= 0 {
		b.Depth = to
		b.tween = nil
		return
	}
	b.tween = gween.New(b.Depth, to, b.PressDuration, ease.OutQuad)
}

func (b *Button) Update(deltaTime float32) {
	if b.tween == nil {
		return
	}
	depth, finished := b.tween.Update(deltaTime)
	b.Depth = depth
	if finished {
		b.tween = nil
	}
}
