package input

import (
	"unicode"

	"vrcollab/internal/config"
	"vrcollab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MouseButton int

const (
	MousePrimary MouseButton = iota
	// MouseSecondary drags the camera orientation and is never forwarded.
	MouseSecondary
)

var keyboardButton = engine.ButtonID{Device: engine.DeviceKeyboard, Code: engine.CodeKey}

// Desktop adapts mouse and keyboard callbacks.
type Desktop struct {
	proj Projector
	nav  *NavigationLock
	conf config.Desktop

	ndcX, ndcY   float32
	hasRay       bool
	lastX, lastY float32
	seenCursor   bool
	dragging     bool
	look         rl.Vector2
	movementKeys map[rune]bool
	pending      []engine.Event
}

func NewDesktop(proj Projector, nav *NavigationLock, conf config.Desktop) *Desktop {
	return &Desktop{
		proj:         proj,
		nav:          nav,
		conf:         conf,
		movementKeys: make(map[rune]bool),
	}
}

func (d *Desktop) Platform() Platform { return PlatformDesktop }

// MouseMove records a cursor sample in window pixels.
func (d *Desktop) MouseMove(x, y, width, height float32) {
	if d.dragging && d.seenCursor {
		d.look.X += (x - d.lastX) * d.conf.LookSpeed
		d.look.Y -= (y - d.lastY) * d.conf.LookSpeed
	} else if !d.dragging {
		d.ndcX, d.ndcY = ndc(x, y, width, height)
		d.hasRay = true
	}
	d.lastX, d.lastY = x, y
	d.seenCursor = true
}

func (d *Desktop) MouseDown(b MouseButton) {
	switch b {
	case MousePrimary:
		d.pending = append(d.pending, engine.Event{Type: engine.EventButtonDown, Button: engine.MouseLeft})
	case MouseSecondary:
		d.dragging = true
	}
}

func (d *Desktop) MouseUp(b MouseButton) {
	switch b {
	case MousePrimary:
		d.pending = append(d.pending, engine.Event{Type: engine.EventButtonUp, Button: engine.MouseLeft})
	case MouseSecondary:
		d.dragging = false
	}
}

func (d *Desktop) KeyDown(k engine.Key) {
	if r, ok := movementRune(k); ok {
		d.movementKeys[r] = true
	}
	d.pending = append(d.pending, engine.Event{Type: engine.EventButtonDown, Button: keyboardButton, Key: k})
}

func (d *Desktop) KeyUp(k engine.Key) {
	if r, ok := movementRune(k); ok {
		d.movementKeys[r] = false
	}
	d.pending = append(d.pending, engine.Event{Type: engine.EventButtonUp, Button: keyboardButton, Key: k})
}

func movementRune(k engine.Key) (rune, bool) {
	if k.Name != engine.KeyChar {
		return 0, false
	}
	r := unicode.ToLower(k.Char)
	switch r {
	case 'w', 'a', 's', 'd':
		return r, true
	}
	return 0, false
}

func (d *Desktop) Update(dt float32) Frame {
	frame := Frame{
		Events: d.pending,
		Look:   d.look,
	}
	d.pending = nil
	d.look = rl.Vector2{}

	if d.hasRay && d.proj != nil {
		frame.Ray = d.proj.RayFromNDC(d.ndcX, d.ndcY)
		frame.HasRay = true
	}

	if !d.nav.Suppressed() {
		frame.Move = Movement{
			Forward: axis(d.movementKeys['w'], d.movementKeys['s']),
			Side:    axis(d.movementKeys['d'], d.movementKeys['a']),
		}
	}
	return frame
}

func (d *Desktop) Reset() {
	d.dragging = false
	d.look = rl.Vector2{}
	d.pending = nil
	for r := range d.movementKeys {
		delete(d.movementKeys, r)
	}
}

func axis(positive, negative bool) float32 {
	var v float32
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
