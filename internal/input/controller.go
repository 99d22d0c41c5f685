package input

import (
	"log"

	"vrcollab/internal/config"
	"vrcollab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const MaxControllers = 2

// ControllerInfo arrives with a "connected" notification.
type ControllerInfo struct {
	Hand    engine.Handedness
	Profile string
	Buttons int
	Axes    int
}

const (
	dirUp = iota
	dirDown
	dirLeft
	dirRight
)

var dirCodes = [4]engine.ButtonCode{
	dirUp:    engine.CodeStickUp,
	dirDown:  engine.CodeStickDown,
	dirLeft:  engine.CodeStickLeft,
	dirRight: engine.CodeStickRight,
}

type controllerSlot struct {
	handle    *engine.ControllerHandle
	connected bool
	hasPose   bool
	pose      rl.Matrix

	buttons     []bool
	prevButtons []bool
	axes        []float32
	prevDirs    [4]bool
}

// Controllers adapts immersive hand controllers. The hardware only reports
// levels, so Update diffs them against the previous tick to produce edges.
type Controllers struct {
	conf    config.Controller
	slots   [MaxControllers]controllerSlot
	pending []engine.Event
	ended   bool
}

func NewControllers(conf config.Controller) *Controllers {
	return &Controllers{conf: conf}
}

func (c *Controllers) Platform() Platform { return PlatformImmersive }

// Connect (re)initializes a slot. A repeated connect on a live slot first
// releases anything the old connection still held.
func (c *Controllers) Connect(slot int, info ControllerInfo) {
	if slot < 0 || slot >= MaxControllers {
		log.Printf("Input: ignoring controller on slot %d", slot)
		return
	}
	s := &c.slots[slot]
	if s.connected {
		c.releaseHeld(s)
	}
	*s = controllerSlot{
		handle: &engine.ControllerHandle{
			Slot:    slot,
			Hand:    info.Hand,
			Profile: info.Profile,
			Buttons: info.Buttons,
			Axes:    info.Axes,
		},
		connected: true,
	}
	c.pending = append(c.pending, engine.Event{Type: engine.EventControllerConnected, Controller: s.handle})
	log.Printf("Input: %s controller connected on slot %d (%s)", info.Hand, slot, info.Profile)
}

func (c *Controllers) Disconnect(slot int) {
	if slot < 0 || slot >= MaxControllers || !c.slots[slot].connected {
		return
	}
	s := &c.slots[slot]
	c.releaseHeld(s)
	s.connected = false
	s.hasPose = false
	log.Printf("Input: controller on slot %d disconnected", slot)
}

func (c *Controllers) Connected(slot int) bool {
	return slot >= 0 && slot < MaxControllers && c.slots[slot].connected
}

func (c *Controllers) SetPose(slot int, pose rl.Matrix) {
	if !c.Connected(slot) {
		return
	}
	c.slots[slot].pose = pose
	c.slots[slot].hasPose = true
}

// SetLevels records the raw button and axis levels sampled this tick.
func (c *Controllers) SetLevels(slot int, buttons []bool, axes []float32) {
	if !c.Connected(slot) {
		return
	}
	s := &c.slots[slot]
	s.buttons = append(s.buttons[:0], buttons...)
	s.axes = append(s.axes[:0], axes...)
}

// EndSession reports that the immersive session ended.
func (c *Controllers) EndSession() {
	c.ended = true
}

func (c *Controllers) Update(dt float32) Frame {
	frame := Frame{Events: c.pending, SessionEnded: c.ended}
	c.pending = nil
	c.ended = false

	for i := range c.slots {
		s := &c.slots[i]
		if !s.connected {
			continue
		}
		frame.Events = c.diffButtons(s, frame.Events)
		frame.Events = c.diffStick(s, frame.Events)
	}

	// The session is gone, so there is nothing left to point at.
	if frame.SessionEnded {
		return frame
	}
	if s := c.pointingSlot(); s != nil {
		frame.Ray = poseRay(s.pose)
		frame.HasRay = true
	}
	return frame
}

func (c *Controllers) diffButtons(s *controllerSlot, events []engine.Event) []engine.Event {
	n := len(s.buttons)
	if len(s.prevButtons) > n {
		n = len(s.prevButtons)
	}
	for i := 0; i < n; i++ {
		now := i < len(s.buttons) && s.buttons[i]
		was := i < len(s.prevButtons) && s.prevButtons[i]
		if now == was {
			continue
		}
		typ := engine.EventButtonUp
		if now {
			typ = engine.EventButtonDown
		}
		events = append(events, engine.Event{Type: typ, Button: buttonID(s.handle, i), Controller: s.handle})
	}
	s.prevButtons = append(s.prevButtons[:0], s.buttons...)
	return events
}

func (c *Controllers) diffStick(s *controllerSlot, events []engine.Event) []engine.Event {
	x := axisValue(s.axes, c.conf.StickX)
	y := axisValue(s.axes, c.conf.StickY)
	th := c.conf.AxisThreshold
	dirs := [4]bool{
		dirUp:    y < -th,
		dirDown:  y > th,
		dirLeft:  x < -th,
		dirRight: x > th,
	}
	for d, now := range dirs {
		if now == s.prevDirs[d] {
			continue
		}
		typ := engine.EventButtonUp
		if now {
			typ = engine.EventButtonDown
		}
		id := engine.ButtonID{Device: engine.DeviceController, Hand: s.handle.Hand, Index: -1, Code: dirCodes[d]}
		events = append(events, engine.Event{Type: typ, Button: id, Controller: s.handle})
	}
	s.prevDirs = dirs
	return events
}

// releaseHeld queues Up edges for every level the slot last reported down.
func (c *Controllers) releaseHeld(s *controllerSlot) {
	for i, was := range s.prevButtons {
		if was {
			c.pending = append(c.pending, engine.Event{Type: engine.EventButtonUp, Button: buttonID(s.handle, i), Controller: s.handle})
		}
	}
	for d, was := range s.prevDirs {
		if was {
			id := engine.ButtonID{Device: engine.DeviceController, Hand: s.handle.Hand, Index: -1, Code: dirCodes[d]}
			c.pending = append(c.pending, engine.Event{Type: engine.EventButtonUp, Button: id, Controller: s.handle})
		}
	}
	s.prevButtons = nil
	s.buttons = nil
	s.prevDirs = [4]bool{}
}

// pointingSlot prefers the right hand, then any connected controller with a pose.
func (c *Controllers) pointingSlot() *controllerSlot {
	var fallback *controllerSlot
	for i := range c.slots {
		s := &c.slots[i]
		if !s.connected || !s.hasPose {
			continue
		}
		if s.handle.Hand == engine.HandRight {
			return s
		}
		if fallback == nil {
			fallback = s
		}
	}
	return fallback
}

func (c *Controllers) Reset() {
	c.pending = nil
	c.ended = false
	for i := range c.slots {
		s := &c.slots[i]
		s.buttons = nil
		s.prevButtons = nil
		s.axes = nil
		s.prevDirs = [4]bool{}
	}
}

// buttonID maps xr-standard gamepad indices to logical codes.
func buttonID(h *engine.ControllerHandle, index int) engine.ButtonID {
	code := engine.CodeControllerButton
	switch index {
	case 0:
		code = engine.CodeTrigger
	case 1:
		code = engine.CodeGrip
	case 3:
		code = engine.CodeStickPress
	case 4:
		code = engine.CodePrimary
	case 5:
		code = engine.CodeSecondary
	}
	return engine.ButtonID{Device: engine.DeviceController, Hand: h.Hand, Index: index, Code: code}
}

func axisValue(axes []float32, i int) float32 {
	if i < 0 || i >= len(axes) {
		return 0
	}
	return axes[i]
}

// poseRay points along the pose's local -Z axis from its translation.
func poseRay(m rl.Matrix) rl.Ray {
	origin := rl.Vector3{X: m.M12, Y: m.M13, Z: m.M14}
	forward := rl.Vector3Normalize(rl.Vector3{X: -m.M8, Y: -m.M9, Z: -m.M10})
	return rl.Ray{Position: origin, Direction: forward}
}
