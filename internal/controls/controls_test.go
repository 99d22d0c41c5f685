package controls

import (
	"testing"

	"vrcollab/internal/engine"
	"vrcollab/internal/input"
	"vrcollab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeAdapter returns queued frames one per tick.
type fakeAdapter struct {
	frames []input.Frame
	resets int
}

func (f *fakeAdapter) Platform() input.Platform { return input.PlatformDesktop }

func (f *fakeAdapter) Update(float32) input.Frame {
	if len(f.frames) == 0 {
		return input.Frame{}
	}
	frame := f.frames[0]
	f.frames = f.frames[1:]
	return frame
}

func (f *fakeAdapter) Reset() { f.resets++ }

func (f *fakeAdapter) push(frames ...input.Frame) { f.frames = append(f.frames, frames...) }

type fakeKeys struct {
	focused bool
	keys    []engine.Key
	blurs   int
}

func (k *fakeKeys) Focused() bool { return k.focused }
func (k *fakeKeys) HandleKey(key engine.Key) bool {
	k.keys = append(k.keys, key)
	return true
}
func (k *fakeKeys) Blur() {
	k.focused = false
	k.blurs++
}

type fakeLoco struct {
	looks []rl.Vector2
	moves []input.Movement
}

func (l *fakeLoco) Look(d rl.Vector2) { l.looks = append(l.looks, d) }
func (l *fakeLoco) Move(m input.Movement, dt float32) { l.moves = append(l.moves, m) }

var (
	atBox   = rl.Ray{Direction: rl.Vector3{Z: -1}}
	atPanel = rl.Ray{Position: rl.Vector3{X: 3}, Direction: rl.Vector3{Z: -1}}
	away    = rl.Ray{Direction: rl.Vector3{Z: 1}}
)

type trace struct {
	events []string
}

func (l *trace) watch(name string, obj *engine.GameObject) {
	for _, t := range []engine.EventType{
		engine.EventPointerEnter, engine.EventPointerLeave,
		engine.EventButtonDown, engine.EventButtonUp, engine.EventCancel,
	} {
		t := t
		obj.AddListener(t, func(engine.Event) { l.events = append(l.events, name+":"+t.String()) })
	}
}

func setup(t *testing.T) (*Controls, *fakeAdapter, *engine.GameObject, *engine.GameObject) {
	t.Helper()
	box := engine.NewGameObject("Box")
	box.Transform.Position = rl.Vector3{Z: -2}
	box.AddComponent(physics.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))

	panel := engine.NewGameObject("Panel")
	panel.Transform.Position = rl.Vector3{X: 3, Z: -2}
	panel.AddComponent(physics.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))

	hits := physics.NewHitTester(physics.DefaultNear, physics.DefaultFar)
	hits.Enable(box)
	hits.Enable(panel)

	adapter := &fakeAdapter{}
	return New(adapter, hits), adapter, box, panel
}

func pointer(ray rl.Ray, events ...engine.Event) input.Frame {
	return input.Frame{Ray: ray, HasRay: true, Events: events}
}

func down(id engine.ButtonID) engine.Event {
	return engine.Event{Type: engine.EventButtonDown, Button: id}
}

func up(id engine.ButtonID) engine.Event {
	return engine.Event{Type: engine.EventButtonUp, Button: id}
}

func TestControlsHoverAndClick(t *testing.T) {
	c, adapter, box, _ := setup(t)
	rec := &trace{}
	rec.watch("box", box)

	var downPoint rl.Vector3
	box.AddListener(engine.EventButtonDown, func(ev engine.Event) { downPoint = ev.Point })

	adapter.push(
		pointer(atBox),
		pointer(atBox, down(engine.MouseLeft)),
		pointer(atBox, up(engine.MouseLeft)),
		pointer(away),
	)
	for i := 0; i < 4; i++ {
		c.Update(0.016)
	}

	want := []string{"box:PointerEnter", "box:ButtonDown", "box:ButtonUp", "box:PointerLeave"}
	if len(rec.events) != len(want) {
		t.Fatalf("Expected %v, got %v", want, rec.events)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, rec.events[i])
		}
	}
	if downPoint.Z != -1.5 {
		t.Errorf("Expected hit point on the front face (z=-1.5), got %v", downPoint)
	}
	if c.State() != Idle {
		t.Errorf("Expected Idle, got %s", c.State())
	}
}

func TestControlsIdleButtonsOnlyReachControls(t *testing.T) {
	c, adapter, box, panel := setup(t)
	rec := &trace{}
	rec.watch("box", box)
	rec.watch("panel", panel)

	var global []engine.Event
	c.AddListener(engine.EventButtonDown, func(ev engine.Event) { global = append(global, ev) })

	adapter.push(pointer(away, down(engine.MouseLeft)))
	c.Update(0.016)

	if len(rec.events) != 0 {
		t.Errorf("Expected no widget events, got %v", rec.events)
	}
	if len(global) != 1 || global[0].Source != nil {
		t.Errorf("Expected one sourceless Down on Controls, got %v", global)
	}
}

func TestControlsUpElsewhereCancelsOrigin(t *testing.T) {
	c, adapter, box, panel := setup(t)
	rec := &trace{}
	rec.watch("box", box)
	rec.watch("panel", panel)

	adapter.push(
		pointer(atBox, down(engine.MouseLeft)),
		pointer(atPanel, up(engine.MouseLeft)),
	)
	c.Update(0.016)
	c.Update(0.016)

	want := []string{
		"box:PointerEnter", "box:ButtonDown",
		"box:PointerLeave", "panel:PointerEnter",
		"box:Cancel", "panel:ButtonUp",
	}
	if len(rec.events) != len(want) {
		t.Fatalf("Expected %v, got %v", want, rec.events)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, rec.events[i])
		}
	}
}

func TestControlsRepeatedDownCancelsEarlierOrigin(t *testing.T) {
	c, adapter, box, panel := setup(t)
	rec := &trace{}
	rec.watch("box", box)
	rec.watch("panel", panel)

	adapter.push(
		pointer(atBox, down(engine.MouseLeft)),
		pointer(atPanel, down(engine.MouseLeft)),
		pointer(atPanel, up(engine.MouseLeft)),
	)
	for i := 0; i < 3; i++ {
		c.Update(0.016)
	}

	want := []string{
		"box:PointerEnter", "box:ButtonDown",
		"box:PointerLeave", "panel:PointerEnter",
		"box:Cancel", "panel:ButtonDown",
		"panel:ButtonUp",
	}
	if len(rec.events) != len(want) {
		t.Fatalf("Expected %v, got %v", want, rec.events)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, rec.events[i])
		}
	}
}

func TestControlsRepeatedDownSameTarget(t *testing.T) {
	c, adapter, box, _ := setup(t)
	rec := &trace{}
	rec.watch("box", box)

	adapter.push(pointer(atBox, down(engine.MouseLeft), down(engine.MouseLeft)))
	c.Update(0.016)

	for _, ev := range rec.events {
		if ev == "box:Cancel" {
			t.Error("A repeated Down on the same target should not cancel it")
		}
	}
}

func TestControlsKeysGoToFocus(t *testing.T) {
	c, adapter, box, _ := setup(t)
	keys := &fakeKeys{focused: true}
	c.SetKeyHandler(keys)
	rec := &trace{}
	rec.watch("box", box)

	keyID := engine.ButtonID{Device: engine.DeviceKeyboard, Code: engine.CodeKey}
	var global int
	c.AddListener(engine.EventButtonDown, func(engine.Event) { global++ })

	adapter.push(pointer(atBox,
		engine.Event{Type: engine.EventButtonDown, Button: keyID, Key: engine.CharKey('w')},
		engine.Event{Type: engine.EventButtonUp, Button: keyID, Key: engine.CharKey('w')},
	))
	c.Update(0.016)

	if len(keys.keys) != 1 || keys.keys[0] != engine.CharKey('w') {
		t.Errorf("Expected focus to receive 'w' once, got %v", keys.keys)
	}
	if global != 0 {
		t.Errorf("Expected focused keys to be swallowed, got %d on Controls", global)
	}
	for _, ev := range rec.events {
		if ev == "box:ButtonDown" {
			t.Error("Keys should never reach the hovered widget")
		}
	}

	keys.focused = false
	adapter.push(pointer(atBox, engine.Event{Type: engine.EventButtonDown, Button: keyID, Key: engine.CharKey('w')}))
	c.Update(0.016)
	if global != 1 {
		t.Errorf("Expected unfocused key on Controls, got %d", global)
	}
}

func TestControlsSessionEnd(t *testing.T) {
	c, adapter, box, _ := setup(t)
	keys := &fakeKeys{focused: true}
	c.SetKeyHandler(keys)
	rec := &trace{}
	rec.watch("box", box)

	trigger := engine.ButtonID{Device: engine.DeviceController, Hand: engine.HandRight, Code: engine.CodeTrigger}
	adapter.push(pointer(atBox, down(trigger)))
	c.Update(0.016)

	adapter.push(input.Frame{SessionEnded: true})
	c.Update(0.016)

	want := []string{"box:PointerEnter", "box:ButtonDown", "box:PointerLeave", "box:Cancel"}
	if len(rec.events) != len(want) {
		t.Fatalf("Expected %v, got %v", want, rec.events)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("Expected event %d to be %s, got %s", i, want[i], rec.events[i])
		}
	}
	if c.State() != Idle {
		t.Errorf("Expected Idle, got %s", c.State())
	}
	if keys.blurs != 1 {
		t.Errorf("Expected focus blurred once, got %d", keys.blurs)
	}
	if adapter.resets != 1 {
		t.Errorf("Expected adapter reset once, got %d", adapter.resets)
	}
}

func TestControlsLocomotion(t *testing.T) {
	c, adapter, _, _ := setup(t)
	loco := &fakeLoco{}
	c.SetLocomotion(loco)

	adapter.push(
		input.Frame{Look: rl.Vector2{X: 2}, Move: input.Movement{Forward: 1}},
		input.Frame{},
	)
	c.Update(0.016)
	c.Update(0.016)

	if len(loco.looks) != 1 {
		t.Errorf("Expected 1 look, got %d", len(loco.looks))
	}
	if len(loco.moves) != 2 || loco.moves[0].Forward != 1 {
		t.Errorf("Expected moves [forward, zero], got %v", loco.moves)
	}
}
