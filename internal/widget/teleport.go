package widget

import (
	"vrcollab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Teleporter moves the viewer so that it stands on point.
type Teleporter interface {
	Teleport(point rl.Vector3)
}

// TeleportTarget moves the viewer to where a floor surface was clicked.
type TeleportTarget struct {
	engine.BaseComponent

	Rig Teleporter
}

func NewTeleportTarget(rig Teleporter) *TeleportTarget {
	return &TeleportTarget{Rig: rig}
}

func (t *TeleportTarget) SetGameObject(g *engine.GameObject) {
	t.BaseComponent.SetGameObject(g)
	g.AddListener(engine.EventButtonUp, t.handleUp)
}

func (t *TeleportTarget) handleUp(ev engine.Event) {
	if t.Rig == nil || !teleportButton(ev.Button) {
		return
	}
	t.Rig.Teleport(ev.Point)
}

// Only the primary pointer teleports: mouse, touch or the right trigger.
func teleportButton(id engine.ButtonID) bool {
	switch {
	case id == engine.MouseLeft, id == engine.TouchScreen:
		return true
	case id.Device == engine.DeviceController:
		return id.Code == engine.CodeTrigger && id.Hand == engine.HandRight
	}
	return false
}
