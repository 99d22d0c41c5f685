package app

import (
	"log"
	"unicode"

	"vrcollab/internal/camera"
	"vrcollab/internal/engine"
	"vrcollab/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// backend polls raylib once per frame and feeds the active adapter.
type backend interface {
	Poll()
}

func newBackend(a input.Adapter, rig *camera.Rig, blocked func(x, y float32) bool) backend {
	switch ad := a.(type) {
	case *input.Desktop:
		return &desktopBackend{d: ad, blocked: blocked}
	case *input.Touch:
		return &touchBackend{t: ad, active: make(map[int32]bool)}
	case *input.Controllers:
		return &gamepadBackend{c: ad, rig: rig}
	}
	log.Printf("App: no raylib backend for %s", a.Platform())
	return nopBackend{}
}

type nopBackend struct{}

func (nopBackend) Poll() {}

var movementKeys = []struct {
	key int32
	r   rune
}{
	{rl.KeyW, 'w'},
	{rl.KeyA, 'a'},
	{rl.KeyS, 's'},
	{rl.KeyD, 'd'},
}

var namedKeys = []struct {
	key  int32
	name engine.KeyName
}{
	{rl.KeyBackspace, engine.KeyBackspace},
	{rl.KeyTab, engine.KeyTab},
	{rl.KeyEnter, engine.KeyEnter},
	{rl.KeyEscape, engine.KeyEscape},
}

type desktopBackend struct {
	d       *input.Desktop
	blocked func(x, y float32) bool
	lastPos rl.Vector2
	primary bool
}

func (b *desktopBackend) Poll() {
	pos := rl.GetMousePosition()
	if pos != b.lastPos {
		b.d.MouseMove(pos.X, pos.Y, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
		b.lastPos = pos
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && (b.blocked == nil || !b.blocked(pos.X, pos.Y)) {
		b.d.MouseDown(input.MousePrimary)
		b.primary = true
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) && b.primary {
		b.d.MouseUp(input.MousePrimary)
		b.primary = false
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		b.d.MouseDown(input.MouseSecondary)
	}
	if rl.IsMouseButtonReleased(rl.MouseRightButton) {
		b.d.MouseUp(input.MouseSecondary)
	}

	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	// Movement letters are tracked as held keys; the character queue would
	// only report them once.
	for _, m := range movementKeys {
		if rl.IsKeyPressed(m.key) {
			r := m.r
			if shift {
				r = unicode.ToUpper(r)
			}
			b.d.KeyDown(engine.CharKey(r))
		}
		if rl.IsKeyReleased(m.key) {
			b.d.KeyUp(engine.CharKey(m.r))
		}
	}
	for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
		r := rune(c)
		switch unicode.ToLower(r) {
		case 'w', 'a', 's', 'd':
			continue
		}
		b.d.KeyDown(engine.CharKey(r))
		b.d.KeyUp(engine.CharKey(r))
	}
	for _, k := range namedKeys {
		name := k.name
		if name == engine.KeyTab && shift {
			name = engine.KeyBacktab
		}
		if rl.IsKeyPressed(k.key) {
			b.d.KeyDown(engine.Key{Name: name})
		}
		if rl.IsKeyReleased(k.key) {
			b.d.KeyUp(engine.Key{Name: name})
		}
	}
}

type touchBackend struct {
	t      *input.Touch
	active map[int32]bool
}

func (b *touchBackend) Poll() {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	seen := make(map[int32]bool)
	count := rl.GetTouchPointCount()
	for i := int32(0); i < count; i++ {
		id := rl.GetTouchPointId(i)
		pos := rl.GetTouchPosition(i)
		seen[id] = true
		if b.active[id] {
			b.t.TouchMove(int(id), pos.X, pos.Y)
		} else {
			b.t.TouchStart(int(id), pos.X, pos.Y, w, h)
		}
	}
	for id := range b.active {
		if !seen[id] {
			b.t.TouchEnd(int(id))
		}
	}
	b.active = seen
}

// gamepadBackend presents gamepad 0 as a right-hand controller locked to
// the head pose. The left stick turns the head.
type gamepadBackend struct {
	c   *input.Controllers
	rig *camera.Rig
}

const gamepad = 0

var gamepadButtons = []int32{
	rl.GamepadButtonRightTrigger2, // trigger
	rl.GamepadButtonRightTrigger1, // grip
	rl.GamepadButtonUnknown,
	rl.GamepadButtonRightThumb,
	rl.GamepadButtonRightFaceDown,
	rl.GamepadButtonRightFaceRight,
}

func (b *gamepadBackend) Poll() {
	available := rl.IsGamepadAvailable(gamepad)
	switch {
	case available && !b.c.Connected(gamepad):
		b.c.Connect(gamepad, input.ControllerInfo{
			Hand:    engine.HandRight,
			Profile: rl.GetGamepadName(gamepad),
			Buttons: len(gamepadButtons),
			Axes:    int(rl.GetGamepadAxisCount(gamepad)),
		})
	case !available && b.c.Connected(gamepad):
		b.c.Disconnect(gamepad)
	}
	if !available {
		return
	}

	buttons := make([]bool, len(gamepadButtons))
	for i, btn := range gamepadButtons {
		buttons[i] = btn != rl.GamepadButtonUnknown && rl.IsGamepadButtonDown(gamepad, btn)
	}
	axes := make([]float32, rl.GetGamepadAxisCount(gamepad))
	for i := range axes {
		axes[i] = rl.GetGamepadAxisMovement(gamepad, int32(i))
	}
	b.c.SetLevels(gamepad, buttons, axes)

	if len(axes) >= 2 {
		const turnSpeed = 2.0
		b.rig.Look(rl.Vector2{X: axes[0] * turnSpeed, Y: -axes[1] * turnSpeed})
	}
	b.c.SetPose(gamepad, b.rig.HeadPose())
}
