package app

import (
	"fmt"

	"vrcollab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// bodyTag marks objects the renderer draws and the hierarchy can select.
const bodyTag = "body"

// Body is how an editable object is drawn.
type Body struct {
	engine.BaseComponent
	Shape   string // Cube, Sphere or Cylinder
	Visible bool
	Comment string
}

func NewBody(shape string) *Body {
	return &Body{Shape: shape, Visible: true}
}

// NewEditable creates a drawable object that shows up in the hierarchy.
func NewEditable(name, shape string, pos, scale rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Tags = append(g.Tags, bodyTag)
	g.Transform.Position = pos
	g.Transform.Scale = scale
	g.AddComponent(NewBody(shape))
	return g
}

func editable(g *engine.GameObject) bool {
	return engine.GetComponent[*Body](g) != nil
}

// NewWorld builds the sample objects edited through the panel.
func NewWorld() *engine.GameObject {
	world := engine.NewGameObject("World")

	box := NewEditable("Box", "Cube", rl.Vector3{X: 1.5, Y: 0.5, Z: -3}, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	box.AddChild(NewEditable("Lid", "Cube", rl.Vector3{Y: 0.6}, rl.Vector3{X: 1.1, Y: 0.2, Z: 1.1}))
	world.AddChild(box)

	world.AddChild(NewEditable("Ball", "Sphere", rl.Vector3{X: -1.5, Y: 0.4, Z: -3}, rl.Vector3{X: 0.8, Y: 0.8, Z: 0.8}))

	// More books than one page of the child list holds.
	shelf := NewEditable("Shelf", "Cube", rl.Vector3{Y: 0.25, Z: -4.5}, rl.Vector3{X: 3, Y: 0.5, Z: 0.4})
	for i := 0; i < 12; i++ {
		pos := rl.Vector3{X: -0.44 + float32(i)*0.08, Y: 0.5}
		shelf.AddChild(NewEditable(fmt.Sprintf("Book %d", i+1), "Cylinder", pos, rl.Vector3{X: 0.02, Y: 0.8, Z: 0.5}))
	}
	world.AddChild(shelf)

	return world
}
