package app

import (
	"fmt"
	"log"
	"math"
	"strings"

	"vrcollab/internal/engine"
	"vrcollab/internal/layout"
	"vrcollab/internal/widget"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	moveStep   = 0.1
	snapStep   = 0.25
	rotateStep = 15
	scaleStep  = 1.1
	minScale   = 0.1

	// PageSize is how many children the hierarchy lists at once.
	PageSize = 10
)

// readout selects which vector the X/Y/Z labels show.
type readout int

const (
	readPosition readout = iota
	readRotation
	readScale
)

var axisNames = [3]string{"X", "Y", "Z"}

// Manipulator applies the panel's commands to the selected object and keeps
// the hierarchy screen in sync with the selection.
type Manipulator struct {
	Root    *engine.GameObject
	Target  *engine.GameObject
	Snap    bool
	Uniform bool

	axis     int // 0 X, 1 Y, 2 Z
	offset   int
	children []*engine.GameObject

	childButtons []*widget.Button
	breadcrumb   *widget.Label
	page         *widget.Label
	readouts     [3]*widget.Label
	name         *widget.TextField
	comment      *widget.TextField
	shapes       map[string]*widget.Button
	visible      *widget.Button
}

// NewManipulator edits objects below root, starting with root itself.
func NewManipulator(root *engine.GameObject) *Manipulator {
	return &Manipulator{Root: root, Target: root, shapes: make(map[string]*widget.Button)}
}

func (m *Manipulator) Axis() int { return m.axis }
func (m *Manipulator) Offset() int { return m.offset }

// Children returns the editable children of the selection.
func (m *Manipulator) Children() []*engine.GameObject { return m.children }

// Body returns the selection's drawing state, or nil for plain containers.
func (m *Manipulator) Body() *Body {
	if m.Target == nil {
		return nil
	}
	return engine.GetComponent[*Body](m.Target)
}

// Bind wires the named widgets of l. Missing widgets are skipped so that a
// layout may offer only part of the panel.
func (m *Manipulator) Bind(l *layout.Layout) {
	onPress := func(name string, fn func()) {
		if obj := l.Widget(name); obj != nil {
			obj.AddListener(engine.EventPressed, func(engine.Event) { fn() })
		}
	}
	flag := func(name string, dst *bool) {
		obj := l.Widget(name)
		if obj == nil {
			return
		}
		if b := engine.GetComponent[*widget.Button](obj); b != nil {
			b.SetPressed(*dst)
		}
		obj.AddListener(engine.EventPressed, func(engine.Event) { *dst = true })
		obj.AddListener(engine.EventReleased, func(engine.Event) { *dst = false })
	}

	for i, name := range []string{"Axis X", "Axis Y", "Axis Z"} {
		axis := i
		onPress(name, func() { m.axis = axis })
		if b := button(l, name); b != nil && b.Pressed() {
			m.axis = axis
		}
	}
	for _, name := range []string{"Cube", "Sphere", "Cylinder"} {
		shape := name
		m.shapes[shape] = button(l, name)
		onPress(name, func() {
			if body := m.Body(); body != nil {
				body.Shape = shape
			}
		})
	}
	if obj := l.Widget("Visible"); obj != nil {
		m.visible = engine.GetComponent[*widget.Button](obj)
		obj.AddListener(engine.EventPressed, func(engine.Event) { m.setVisible(true) })
		obj.AddListener(engine.EventReleased, func(engine.Event) { m.setVisible(false) })
	}

	onPress("Move Minus", func() { m.Move(-1) })
	onPress("Move Plus", func() { m.Move(1) })
	onPress("Rotate Left", func() { m.Rotate(-rotateStep) })
	onPress("Rotate Right", func() { m.Rotate(rotateStep) })
	onPress("Rotate Reset", m.ResetRotation)
	onPress("Shrink", func() { m.Scale(1 / scaleStep) })
	onPress("Grow", func() { m.Scale(scaleStep) })

	flag("Snap", &m.Snap)
	flag("Uniform", &m.Uniform)

	onPress("Tab Properties", func() { m.showReadouts(readPosition) })
	onPress("Tab Move", func() { m.showReadouts(readPosition) })
	onPress("Tab Rotate", func() { m.showReadouts(readRotation) })
	onPress("Tab Scale", func() { m.showReadouts(readScale) })

	m.childButtons = m.childButtons[:0]
	for i := 0; i < PageSize; i++ {
		slot := i
		name := fmt.Sprintf("Child %d", i+1)
		m.childButtons = append(m.childButtons, button(l, name))
		onPress(name, func() { m.selectSlot(slot) })
	}
	onPress("Level Up", m.LevelUp)
	onPress("Previous Page", m.PreviousPage)
	onPress("Next Page", m.NextPage)
	m.breadcrumb = textLabel(l, "Hierarchy")
	m.page = textLabel(l, "Page")
	for i, name := range axisNames {
		m.readouts[i] = textLabel(l, "Readout "+name)
	}

	if obj := l.Widget("Name"); obj != nil {
		m.name = engine.GetComponent[*widget.TextField](obj)
		obj.AddListener(engine.EventChanged, func(ev engine.Event) {
			if ev.Text != "" && m.Target != nil {
				m.Target.Name = ev.Text
				m.updateBreadcrumb()
			}
		})
	}
	if obj := l.Widget("Comment"); obj != nil {
		m.comment = engine.GetComponent[*widget.TextField](obj)
		obj.AddListener(engine.EventChanged, func(ev engine.Event) {
			if body := m.Body(); body != nil {
				body.Comment = ev.Text
			}
		})
	}

	m.Select(m.Target)
}

func button(l *layout.Layout, name string) *widget.Button {
	if obj := l.Widget(name); obj != nil {
		return engine.GetComponent[*widget.Button](obj)
	}
	return nil
}

func textLabel(l *layout.Layout, name string) *widget.Label {
	if obj := l.Widget(name); obj != nil {
		return engine.GetComponent[*widget.Label](obj)
	}
	return nil
}

// Select makes obj the edited object and refreshes every panel widget that
// shows selection state.
func (m *Manipulator) Select(obj *engine.GameObject) {
	if obj == nil {
		return
	}
	m.Target = obj
	m.children = m.children[:0]
	for _, c := range obj.Children {
		if editable(c) {
			m.children = append(m.children, c)
		}
	}
	m.updateBreadcrumb()
	m.ShowChildren(0)

	if m.name != nil {
		m.name.SetText(obj.Name)
	}
	if body := m.Body(); body != nil {
		if m.comment != nil {
			m.comment.SetText(body.Comment)
		}
		if b := m.shapes[body.Shape]; b != nil {
			b.SetPressed(true)
		}
		if m.visible != nil {
			m.visible.SetPressed(body.Visible)
		}
	}
	m.showReadouts(readPosition)
	log.Printf("Manipulate: selected %s", m.Breadcrumb())
}

func (m *Manipulator) selectSlot(slot int) {
	if i := m.offset + slot; i < len(m.children) {
		m.Select(m.children[i])
	}
}

// LevelUp selects the parent of the selection. It stops at Root.
func (m *Manipulator) LevelUp() {
	if m.Target == nil || m.Target == m.Root || m.Target.Parent == nil {
		return
	}
	m.Select(m.Target.Parent)
}

// ShowChildren lists one page of children starting at offset.
func (m *Manipulator) ShowChildren(offset int) {
	if offset < 0 || offset >= len(m.children) {
		offset = 0
	}
	m.offset = offset
	for j, b := range m.childButtons {
		if b == nil {
			continue
		}
		b.Label = ""
		if i := offset + j; i < len(m.children) {
			b.Label = displayName(m.children[i])
		}
	}
	if m.page != nil {
		m.page.Text = fmt.Sprintf("Page %d / %d", m.offset/PageSize+1, m.PageCount())
	}
}

func (m *Manipulator) PageCount() int {
	if n := (len(m.children) + PageSize - 1) / PageSize; n > 0 {
		return n
	}
	return 1
}

func (m *Manipulator) NextPage() {
	if m.offset < len(m.children)-PageSize {
		m.ShowChildren(m.offset + PageSize)
	}
}

func (m *Manipulator) PreviousPage() {
	if m.offset > 0 {
		m.ShowChildren(m.offset - PageSize)
	}
}

// Breadcrumb names the path from Root down to the selection.
func (m *Manipulator) Breadcrumb() string {
	var parts []string
	for g := m.Target; g != nil; g = g.Parent {
		parts = append([]string{displayName(g)}, parts...)
		if g == m.Root {
			break
		}
	}
	return strings.Join(parts, " > ")
}

func (m *Manipulator) updateBreadcrumb() {
	if m.breadcrumb != nil {
		m.breadcrumb.Text = m.Breadcrumb()
	}
}

func displayName(g *engine.GameObject) string {
	if g.Name == "" {
		return "[object]"
	}
	return g.Name
}

func (m *Manipulator) setVisible(v bool) {
	if body := m.Body(); body != nil {
		body.Visible = v
	}
}

// showReadouts fills the X/Y/Z labels from the selection's transform.
func (m *Manipulator) showReadouts(mode readout) {
	if m.Target == nil {
		return
	}
	v := m.Target.Transform.Position
	switch mode {
	case readRotation:
		v = m.Target.Transform.Rotation
	case readScale:
		v = m.Target.Transform.Scale
	}
	for i, l := range m.readouts {
		if l != nil {
			l.Text = fmt.Sprintf("%s %.2f", axisNames[i], *component(&v, i))
		}
	}
}

// Readout returns the text of the X, Y or Z label.
func (m *Manipulator) Readout(axis int) string {
	if axis < 0 || axis > 2 || m.readouts[axis] == nil {
		return ""
	}
	return m.readouts[axis].Text
}

// Move nudges the target along the selected axis. With Snap on the result
// lands on the snap grid.
func (m *Manipulator) Move(dir float32) {
	pos := &m.Target.Transform.Position
	v := component(pos, m.axis)
	if m.Snap {
		*v = float32(math.Round(float64(*v/snapStep)))*snapStep + dir*snapStep
	} else {
		*v += dir * moveStep
	}
	m.showReadouts(readPosition)
	log.Printf("Manipulate: %s moved to (%.2f, %.2f, %.2f)", m.Target.Name, pos.X, pos.Y, pos.Z)
}

func (m *Manipulator) Rotate(degrees float32) {
	v := component(&m.Target.Transform.Rotation, m.axis)
	*v = float32(math.Mod(float64(*v+degrees), 360))
	m.showReadouts(readRotation)
}

func (m *Manipulator) ResetRotation() {
	m.Target.Transform.Rotation = rl.Vector3{}
	m.showReadouts(readRotation)
}

// Scale multiplies the selected axis, or all axes when Uniform is on.
func (m *Manipulator) Scale(factor float32) {
	s := &m.Target.Transform.Scale
	apply := func(v *float32) {
		*v *= factor
		if *v < minScale {
			*v = minScale
		}
	}
	if m.Uniform {
		apply(&s.X)
		apply(&s.Y)
		apply(&s.Z)
	} else {
		apply(component(s, m.axis))
	}
	m.showReadouts(readScale)
}

func component(v *rl.Vector3, axis int) *float32 {
	switch axis {
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	}
	return &v.X
}
