package input

import (
	"log"
	"strings"

	"vrcollab/internal/config"
	"vrcollab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformDesktop
	PlatformTouch
	PlatformImmersive
)

func (p Platform) String() string {
	switch p {
	case PlatformDesktop:
		return "desktop"
	case PlatformTouch:
		return "touch"
	case PlatformImmersive:
		return "immersive"
	}
	return "unknown"
}

func ParsePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desktop":
		return PlatformDesktop
	case "touch":
		return PlatformTouch
	case "immersive", "xr", "vr":
		return PlatformImmersive
	}
	return PlatformUnknown
}

// Capabilities are the platform flags probed once at startup.
type Capabilities struct {
	Immersive bool
	Touch     bool
}

// Probe picks the platform from capability flags. Immersive wins over touch.
func Probe(caps Capabilities) Platform {
	switch {
	case caps.Immersive:
		return PlatformImmersive
	case caps.Touch:
		return PlatformTouch
	}
	return PlatformDesktop
}

// Movement is locomotion intent in camera space, each axis in [-1, 1].
type Movement struct {
	Forward float32
	Side    float32
}

func (m Movement) IsZero() bool {
	return m.Forward == 0 && m.Side == 0
}

// Frame is everything an adapter observed during one tick.
type Frame struct {
	Ray    rl.Ray
	HasRay bool
	// Look is a camera orientation delta in degrees (yaw, pitch).
	Look   rl.Vector2
	Move   Movement
	Events []engine.Event
	// SessionEnded reports an abrupt end of the input session.
	SessionEnded bool
}

// Adapter normalizes one device family into Frames.
type Adapter interface {
	Platform() Platform
	// Update folds everything queued since the previous call into a Frame.
	// It is called exactly once per tick.
	Update(dt float32) Frame
	// Reset drops latched device state after an abrupt loss.
	Reset()
}

// Projector turns normalized device coordinates into a world-space ray.
type Projector interface {
	RayFromNDC(x, y float32) rl.Ray
}

// NavigationLock is the shared flag that stops movement keys from moving
// the camera while a text field has focus.
type NavigationLock struct {
	suppressed bool
}

func (n *NavigationLock) Suppress() { n.suppressed = true }
func (n *NavigationLock) Restore() { n.suppressed = false }
func (n *NavigationLock) Suppressed() bool { return n != nil && n.suppressed }

// NewAdapter builds the adapter for p. An unrecognized platform falls back to
// the desktop adapter.
func NewAdapter(p Platform, conf config.Config, proj Projector, nav *NavigationLock) Adapter {
	switch p {
	case PlatformDesktop:
		return NewDesktop(proj, nav, conf.Desktop)
	case PlatformTouch:
		return NewTouch(proj, conf.Touch)
	case PlatformImmersive:
		return NewControllers(conf.Controller)
	}
	log.Printf("Input: unrecognized platform %q, falling back to desktop", p)
	return NewDesktop(proj, nav, conf.Desktop)
}

// ndc maps a screen position to normalized device coordinates, y up.
func ndc(x, y, width, height float32) (float32, float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return x/width*2 - 1, -(y/height)*2 + 1
}
