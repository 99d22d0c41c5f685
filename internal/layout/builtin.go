package layout

import (
	"vrcollab/internal/engine"
	"vrcollab/internal/physics"
	"vrcollab/internal/widget"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var defaultSize = rl.Vector3{X: 0.4, Y: 0.15, Z: 0.05}

func init() {
	Register("button", buttonFactory(widget.Momentary))
	Register("toggle", buttonFactory(widget.Toggle))
	Register("checkbox", buttonFactory(widget.CheckboxToggle))
	Register("textfield", newTextField)
	Register("label", newLabel)
	Register("keyboard", newKeyboard)
	Register("teleport", newTeleport)
}

// base creates the object with the transform and style every kind shares.
func base(def WidgetDef) *engine.GameObject {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]}
	g.Transform.Rotation = rl.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]}
	g.AddComponent(widget.NewStyle(lookupColor(def.Color)))
	return g
}

func size(def WidgetDef) rl.Vector3 {
	if def.Size == [3]float32{} {
		return defaultSize
	}
	return rl.Vector3{X: def.Size[0], Y: def.Size[1], Z: def.Size[2]}
}

func buttonFactory(behavior widget.Behavior) Factory {
	return func(def WidgetDef, env *Env) (*engine.GameObject, error) {
		g := base(def)
		g.AddComponent(physics.NewBoxCollider(size(def)))
		b := widget.NewButton(behavior, def.Label)
		if env.PressDuration > 0 {
			b.PressDuration = env.PressDuration
		}
		g.AddComponent(b)
		return g, nil
	}
}

func newTextField(def WidgetDef, env *Env) (*engine.GameObject, error) {
	g := base(def)
	g.AddComponent(physics.NewBoxCollider(size(def)))
	tf := widget.NewTextField(env.Focus, def.Text)
	tf.Placeholder = def.Placeholder
	g.AddComponent(tf)
	return g, nil
}

func newLabel(def WidgetDef, env *Env) (*engine.GameObject, error) {
	g := base(def)
	text := def.Label
	if text == "" {
		text = def.Text
	}
	g.AddComponent(widget.NewLabel(text))
	return g, nil
}

// The keyboard's key size is taken from size[1].
func newKeyboard(def WidgetDef, env *Env) (*engine.GameObject, error) {
	g := base(def)
	kb := widget.NewKeyboard(def.Size[1])
	if env.Focus != nil {
		kb.Target = env.Focus
	}
	g.AddComponent(kb)
	return g, nil
}

func newTeleport(def WidgetDef, env *Env) (*engine.GameObject, error) {
	g := base(def)
	g.AddComponent(physics.NewBoxCollider(size(def)))
	g.AddComponent(widget.NewTeleportTarget(env.Teleporter))
	return g, nil
}
