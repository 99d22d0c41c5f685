package app

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"vrcollab/internal/config"
	"vrcollab/internal/engine"
	"vrcollab/internal/layout"
	"vrcollab/internal/physics"
	"vrcollab/internal/widget"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var panelWidgets = [][2]string{
	{"toggle", "Axis X"}, {"toggle", "Axis Y"}, {"toggle", "Axis Z"},
	{"toggle", "Cube"}, {"toggle", "Sphere"}, {"toggle", "Cylinder"},
	{"checkbox", "Snap"}, {"checkbox", "Uniform"}, {"checkbox", "Visible"},
	{"button", "Move Plus"}, {"button", "Rotate Right"}, {"button", "Rotate Reset"}, {"button", "Grow"},
	{"textfield", "Name"}, {"textfield", "Comment"},
	{"button", "Level Up"}, {"label", "Hierarchy"},
	{"button", "Previous Page"}, {"button", "Next Page"}, {"label", "Page"},
	{"label", "Readout X"}, {"label", "Readout Y"}, {"label", "Readout Z"},
}

// panelLayout puts every widget on one screen.
func panelLayout() string {
	kinds := append([][2]string(nil), panelWidgets...)
	for i := 1; i <= PageSize; i++ {
		kinds = append(kinds, [2]string{"button", fmt.Sprintf("Child %d", i)})
	}
	var defs, names []string
	for _, w := range kinds {
		defs = append(defs, fmt.Sprintf(`{"kind": %q, "name": %q}`, w[0], w[1]))
		names = append(names, fmt.Sprintf("%q", w[1]))
	}
	return fmt.Sprintf(`{
  "initial": "edit",
  "widgets": [%s],
  "groups": [
    {"name": "axis", "members": ["Axis X", "Axis Y", "Axis Z"], "default": "Axis Y"},
    {"name": "geometry", "members": ["Cube", "Sphere", "Cylinder"], "default": "Sphere"}
  ],
  "screens": [{"name": "edit", "widgets": [%s]}]
}`, strings.Join(defs, ",\n"), strings.Join(names, ", "))
}

func newPanel(t *testing.T) (*Manipulator, *layout.Layout, *widget.FocusController) {
	t.Helper()
	f, err := layout.Parse([]byte(panelLayout()))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	focus := widget.NewFocusController(nil, config.Default().Text)
	l, err := layout.Build(f, &layout.Env{
		Hits:  physics.NewHitTester(physics.DefaultNear, physics.DefaultFar),
		Focus: focus,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	m := NewManipulator(NewWorld())
	m.Bind(l)
	m.Select(m.Root.FindChild("Box"))
	return m, l, focus
}

func press(l *layout.Layout, name string) {
	obj := l.Widget(name)
	obj.SendEvent(engine.Event{Type: engine.EventButtonDown})
	obj.SendEvent(engine.Event{Type: engine.EventButtonUp})
}

func caption(l *layout.Layout, name string) string {
	return widget.Caption(l.Widget(name))
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestManipulatorInitialState(t *testing.T) {
	m, l, _ := newPanel(t)
	if m.Axis() != 1 {
		t.Errorf("Expected axis Y from the group default, got %d", m.Axis())
	}
	if m.Target.Name != "Box" {
		t.Fatalf("Expected Box selected, got %s", m.Target.Name)
	}
	if !engine.GetComponent[*widget.Button](l.Widget("Cube")).Pressed() {
		t.Error("Cube toggle should follow the selected object's shape")
	}
	if engine.GetComponent[*widget.Button](l.Widget("Sphere")).Pressed() {
		t.Error("Sphere toggle should be released by the selection")
	}
	if !engine.GetComponent[*widget.Button](l.Widget("Visible")).Pressed() {
		t.Error("Visible checkbox should reflect the target state")
	}
}

func TestManipulatorListsChildren(t *testing.T) {
	m, l, _ := newPanel(t)
	m.Select(m.Root)

	if got := caption(l, "Hierarchy"); got != "World" {
		t.Errorf("Expected breadcrumb 'World', got '%s'", got)
	}
	want := []string{"Box", "Ball", "Shelf", ""}
	for i, name := range want {
		if got := caption(l, fmt.Sprintf("Child %d", i+1)); got != name {
			t.Errorf("Expected child %d to be '%s', got '%s'", i+1, name, got)
		}
	}
	if got := caption(l, "Page"); got != "Page 1 / 1" {
		t.Errorf("Expected 'Page 1 / 1', got '%s'", got)
	}
}

func TestManipulatorPaging(t *testing.T) {
	m, l, _ := newPanel(t)
	m.Select(m.Root.FindChild("Shelf"))

	if len(m.Children()) != 12 {
		t.Fatalf("Expected 12 books, got %d", len(m.Children()))
	}
	if caption(l, "Child 10") != "Book 10" || caption(l, "Page") != "Page 1 / 2" {
		t.Errorf("Expected first page, got '%s' and '%s'", caption(l, "Child 10"), caption(l, "Page"))
	}

	press(l, "Next Page")
	if m.Offset() != 10 {
		t.Errorf("Expected offset 10, got %d", m.Offset())
	}
	if caption(l, "Child 1") != "Book 11" || caption(l, "Child 2") != "Book 12" || caption(l, "Child 3") != "" {
		t.Errorf("Expected the last two books, got '%s', '%s', '%s'", caption(l, "Child 1"), caption(l, "Child 2"), caption(l, "Child 3"))
	}
	if caption(l, "Page") != "Page 2 / 2" {
		t.Errorf("Expected 'Page 2 / 2', got '%s'", caption(l, "Page"))
	}

	press(l, "Next Page")
	if m.Offset() != 10 {
		t.Errorf("Next on the last page should stay, got offset %d", m.Offset())
	}
	press(l, "Child 3")
	if m.Target.Name != "Shelf" {
		t.Errorf("An empty slot should select nothing, got %s", m.Target.Name)
	}

	press(l, "Previous Page")
	press(l, "Previous Page")
	if m.Offset() != 0 || caption(l, "Child 1") != "Book 1" {
		t.Errorf("Expected back on the first page, got offset %d", m.Offset())
	}
}

func TestManipulatorSelectChildAndLevelUp(t *testing.T) {
	m, l, _ := newPanel(t)
	m.Select(m.Root)

	press(l, "Child 3")
	if m.Target.Name != "Shelf" {
		t.Fatalf("Expected Shelf selected, got %s", m.Target.Name)
	}
	press(l, "Child 2")
	if m.Target.Name != "Book 2" {
		t.Fatalf("Expected Book 2 selected, got %s", m.Target.Name)
	}
	if got := caption(l, "Hierarchy"); got != "World > Shelf > Book 2" {
		t.Errorf("Expected breadcrumb 'World > Shelf > Book 2', got '%s'", got)
	}
	if tf := engine.GetComponent[*widget.TextField](l.Widget("Name")); tf.Text != "Book 2" {
		t.Errorf("Expected name field 'Book 2', got '%s'", tf.Text)
	}
	if !engine.GetComponent[*widget.Button](l.Widget("Cylinder")).Pressed() {
		t.Error("Cylinder toggle should follow the book's shape")
	}

	press(l, "Level Up")
	press(l, "Level Up")
	if m.Target != m.Root {
		t.Fatalf("Expected World selected, got %s", m.Target.Name)
	}
	press(l, "Level Up")
	if m.Target != m.Root {
		t.Error("Level up should stop at the root")
	}
}

func TestManipulatorMove(t *testing.T) {
	m, l, _ := newPanel(t)
	m.Target.Transform.Position = rl.Vector3{}
	press(l, "Axis X")
	press(l, "Move Plus")
	press(l, "Move Plus")
	if !near(m.Target.Transform.Position.X, 0.2) {
		t.Errorf("Expected X 0.2, got %f", m.Target.Transform.Position.X)
	}
	if got := caption(l, "Readout X"); got != "X 0.20" {
		t.Errorf("Expected readout 'X 0.20', got '%s'", got)
	}

	press(l, "Snap")
	if !m.Snap {
		t.Fatal("Snap should be on")
	}
	press(l, "Move Plus")
	if !near(m.Target.Transform.Position.X, 0.5) {
		t.Errorf("Expected snapped X 0.5, got %f", m.Target.Transform.Position.X)
	}
	if got := caption(l, "Readout X"); got != "X 0.50" {
		t.Errorf("Expected readout 'X 0.50', got '%s'", got)
	}
}

func TestManipulatorRotate(t *testing.T) {
	m, l, _ := newPanel(t)
	for i := 0; i < 25; i++ {
		press(l, "Rotate Right")
	}
	if !near(m.Target.Transform.Rotation.Y, 15) {
		t.Errorf("Expected Y rotation to wrap to 15, got %f", m.Target.Transform.Rotation.Y)
	}
	if got := caption(l, "Readout Y"); got != "Y 15.00" {
		t.Errorf("Expected readout 'Y 15.00', got '%s'", got)
	}
	press(l, "Rotate Reset")
	if m.Target.Transform.Rotation != (rl.Vector3{}) {
		t.Errorf("Expected zero rotation, got %v", m.Target.Transform.Rotation)
	}
	if got := caption(l, "Readout Y"); got != "Y 0.00" {
		t.Errorf("Expected readout 'Y 0.00', got '%s'", got)
	}
}

func TestManipulatorScale(t *testing.T) {
	m, l, _ := newPanel(t)
	m.Target.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	press(l, "Grow")
	s := m.Target.Transform.Scale
	if !near(s.Y, 1.1) || s.X != 1 {
		t.Errorf("Expected only Y scaled, got %v", s)
	}
	if got := caption(l, "Readout Y"); got != "Y 1.10" {
		t.Errorf("Expected readout 'Y 1.10', got '%s'", got)
	}
	press(l, "Uniform")
	press(l, "Grow")
	s = m.Target.Transform.Scale
	if !near(s.X, 1.1) || !near(s.Y, 1.21) {
		t.Errorf("Expected uniform scale, got %v", s)
	}
}

func TestManipulatorSelectShowsPosition(t *testing.T) {
	m, l, _ := newPanel(t)
	ball := m.Root.FindChild("Ball")
	m.Select(ball)
	if got := caption(l, "Readout X"); got != "X -1.50" {
		t.Errorf("Expected readout 'X -1.50', got '%s'", got)
	}
}

func TestManipulatorRename(t *testing.T) {
	m, l, focus := newPanel(t)
	tf := engine.GetComponent[*widget.TextField](l.Widget("Name"))
	if tf.Text != "Box" {
		t.Errorf("Expected name field to show 'Box', got '%s'", tf.Text)
	}

	l.Widget("Name").SendEvent(engine.Event{Type: engine.EventButtonDown})
	focus.HandleKey(engine.Key{Name: engine.KeyBackspace})
	focus.HandleKey(engine.Key{Name: engine.KeyBackspace})
	focus.HandleKey(engine.Key{Name: engine.KeyBackspace})
	for _, r := range "Cone" {
		focus.HandleKey(engine.CharKey(r))
	}
	focus.HandleKey(engine.Key{Name: engine.KeyEnter})

	if m.Target.Name != "Cone" {
		t.Errorf("Expected target renamed to 'Cone', got '%s'", m.Target.Name)
	}
	if got := caption(l, "Hierarchy"); got != "World > Cone" {
		t.Errorf("Expected breadcrumb 'World > Cone', got '%s'", got)
	}
}

func TestManipulatorVisibilityPerObject(t *testing.T) {
	m, l, _ := newPanel(t)
	press(l, "Visible")
	if m.Body().Visible {
		t.Error("Visible checkbox release should hide the target")
	}

	m.Select(m.Root.FindChild("Ball"))
	if !engine.GetComponent[*widget.Button](l.Widget("Visible")).Pressed() {
		t.Error("Visible checkbox should show the Ball as visible")
	}
	m.Select(m.Root.FindChild("Box"))
	if engine.GetComponent[*widget.Button](l.Widget("Visible")).Pressed() {
		t.Error("Visible checkbox should show the Box as hidden")
	}
}

func TestManipulatorShapePerObject(t *testing.T) {
	m, l, _ := newPanel(t)
	press(l, "Sphere")
	if m.Body().Shape != "Sphere" {
		t.Errorf("Expected Box to become a Sphere, got %s", m.Body().Shape)
	}
	m.Select(m.Root.FindChild("Shelf"))
	if m.Body().Shape != "Cube" {
		t.Errorf("Selecting another object should not change its shape, got %s", m.Body().Shape)
	}
}
