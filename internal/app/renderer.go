package app

import (
	"vrcollab/internal/engine"
	"vrcollab/internal/physics"
	"vrcollab/internal/widget"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorHovered = rl.NewColor(130, 120, 255, 255)
	colorPressed = rl.NewColor(108, 99, 255, 255)
	colorFocused = rl.NewColor(167, 139, 250, 255)
)

// Renderer draws widgets as boxes with screen-space captions. It needs a
// window, so it is created inside Run.
type Renderer struct {
	cube     rl.Model
	sphere   rl.Model
	cylinder rl.Model
	labels   []label
}

type label struct {
	text string
	pos  rl.Vector3
}

func NewRenderer() *Renderer {
	return &Renderer{
		cube:     rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1)),
		sphere:   rl.LoadModelFromMesh(rl.GenMeshSphere(0.5, 16, 16)),
		cylinder: rl.LoadModelFromMesh(rl.GenMeshCylinder(0.5, 1, 16)),
	}
}

func (r *Renderer) Unload() {
	rl.UnloadModel(r.cube)
	rl.UnloadModel(r.sphere)
	rl.UnloadModel(r.cylinder)
}

func transform(g *engine.GameObject, offset, size rl.Vector3) rl.Matrix {
	rot := engine.RotationMatrix(g.WorldRotation())
	center := rl.Vector3Add(g.WorldPosition(), rl.Vector3Transform(offset, rot))
	scaleMatrix := rl.MatrixScale(size.X, size.Y, size.Z)
	transMatrix := rl.MatrixTranslate(center.X, center.Y, center.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rot), transMatrix)
}

// DrawWidgets draws root's subtree. Must be called inside BeginMode3D.
func (r *Renderer) DrawWidgets(root *engine.GameObject) {
	r.labels = r.labels[:0]
	root.Walk(func(g *engine.GameObject) bool {
		if !g.Active {
			return false
		}
		r.drawWidget(g)
		return true
	})
}

func (r *Renderer) drawWidget(g *engine.GameObject) {
	front := rl.Vector3{}
	if box := engine.GetComponent[*physics.BoxCollider](g); box != nil {
		size := box.GetWorldSize()
		offset := box.Offset
		if b := engine.GetComponent[*widget.Button](g); b != nil {
			// Depth is negative; it pushes the face back into the panel.
			offset.Z += b.Depth * size.Z / 2
		}
		r.cube.Transform = transform(g, offset, size)
		rl.DrawModel(r.cube, rl.Vector3Zero(), 1.0, widgetColor(g))
		front = rl.Vector3{Z: offset.Z + size.Z/2 + 0.005}
	}
	if text := widget.Caption(g); text != "" {
		rot := engine.RotationMatrix(g.WorldRotation())
		r.labels = append(r.labels, label{text: text, pos: rl.Vector3Add(g.WorldPosition(), rl.Vector3Transform(front, rot))})
	}
}

func widgetColor(g *engine.GameObject) rl.Color {
	base := rl.LightGray
	if s := engine.GetComponent[*widget.Style](g); s != nil {
		base = s.Color
	}
	if b := engine.GetComponent[*widget.Button](g); b != nil {
		switch b.State() {
		case widget.ButtonPressed:
			return colorPressed
		case widget.ButtonHovered:
			return colorHovered
		}
	}
	if tf := engine.GetComponent[*widget.TextField](g); tf != nil && tf.Focused() {
		return colorFocused
	}
	return base
}

// DrawBodies draws every visible editable object in scene. The selection
// gets a wireframe.
func (r *Renderer) DrawBodies(scene *engine.Scene, selected *engine.GameObject) {
	for _, g := range scene.FindByTag(bodyTag) {
		body := engine.GetComponent[*Body](g)
		if body == nil || !body.Visible {
			continue
		}
		model := r.model(body.Shape)
		rot := engine.RotationMatrix(g.WorldRotation())
		s := g.WorldScale()
		p := g.WorldPosition()
		model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(rl.MatrixScale(s.X, s.Y, s.Z), rot), rl.MatrixTranslate(p.X, p.Y, p.Z))
		rl.DrawModel(model, rl.Vector3Zero(), 1.0, rl.Orange)
		if g == selected {
			rl.DrawModelWires(model, rl.Vector3Zero(), 1.0, rl.Maroon)
		}
	}
}

func (r *Renderer) model(shape string) rl.Model {
	switch shape {
	case "Sphere":
		return r.sphere
	case "Cylinder":
		return r.cylinder
	}
	return r.cube
}

// DrawPointer marks the current hit point.
func (r *Renderer) DrawPointer(hit physics.Intersection, ok bool) {
	if !ok {
		return
	}
	rl.DrawSphere(hit.Point, 0.015, rl.Yellow)
	end := rl.Vector3Add(hit.Point, rl.Vector3Scale(hit.Normal, 0.08))
	rl.DrawLine3D(hit.Point, end, rl.Yellow)
}

// DrawLabels draws the captions collected by DrawWidgets. Call after
// EndMode3D.
func (r *Renderer) DrawLabels(cam rl.Camera3D) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	for _, l := range r.labels {
		if rl.Vector3DotProduct(rl.Vector3Subtract(l.pos, cam.Position), forward) <= 0 {
			continue
		}
		screen := rl.GetWorldToScreen(l.pos, cam)
		const size = 18
		w := rl.MeasureText(l.text, size)
		rl.DrawText(l.text, int32(screen.X)-w/2, int32(screen.Y)-size/2, size, rl.Black)
	}
}
