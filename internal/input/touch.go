package input

import (
	"vrcollab/internal/config"
	"vrcollab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Touch adapts a touchscreen. Only the first contact of a gesture is
// tracked; tap or drag is decided when that contact lifts.
type Touch struct {
	proj Projector
	conf config.Touch

	active       bool
	contact      int
	moved        bool
	lastX, lastY float32
	ndcX, ndcY   float32
	hasRay       bool
	look         rl.Vector2
	pending      []engine.Event
}

func NewTouch(proj Projector, conf config.Touch) *Touch {
	return &Touch{proj: proj, conf: conf}
}

func (t *Touch) Platform() Platform { return PlatformTouch }

func (t *Touch) TouchStart(id int, x, y, width, height float32) {
	if t.active {
		return
	}
	t.active = true
	t.contact = id
	t.moved = false
	t.lastX, t.lastY = x, y
	t.ndcX, t.ndcY = ndc(x, y, width, height)
	t.hasRay = true
}

func (t *Touch) TouchMove(id int, x, y float32) {
	if !t.active || id != t.contact {
		return
	}
	dx, dy := x-t.lastX, y-t.lastY
	if dx != 0 || dy != 0 {
		t.moved = true
		t.look.X += dx * t.conf.LookSpeed
		t.look.Y -= dy * t.conf.LookSpeed
	}
	t.lastX, t.lastY = x, y
}

// TouchEnd lifts the tracked contact. A gesture that never moved is a tap
// and fires Down then Up; any movement makes it a drag that fires nothing.
func (t *Touch) TouchEnd(id int) {
	if !t.active || id != t.contact {
		return
	}
	t.active = false
	if t.moved {
		return
	}
	t.pending = append(t.pending,
		engine.Event{Type: engine.EventButtonDown, Button: engine.TouchScreen},
		engine.Event{Type: engine.EventButtonUp, Button: engine.TouchScreen},
	)
}

func (t *Touch) Update(dt float32) Frame {
	frame := Frame{
		Events: t.pending,
		Look:   t.look,
	}
	t.pending = nil
	t.look = rl.Vector2{}
	if t.hasRay && t.proj != nil {
		frame.Ray = t.proj.RayFromNDC(t.ndcX, t.ndcY)
		frame.HasRay = true
	}
	return frame
}

// Reset abandons an in-flight gesture without classifying it.
func (t *Touch) Reset() {
	t.active = false
	t.moved = false
	t.look = rl.Vector2{}
	t.pending = nil
}
