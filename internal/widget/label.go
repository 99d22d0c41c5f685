package widget

import (
	"vrcollab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label is static text placed in the scene. It is not interactive.
type Label struct {
	engine.BaseComponent
	Text string
}

func NewLabel(text string) *Label {
	return &Label{Text: text}
}

// Style carries the base color a widget is drawn with.
type Style struct {
	engine.BaseComponent
	Color rl.Color
}

func NewStyle(c rl.Color) *Style {
	return &Style{Color: c}
}

// Caption returns the text to draw for obj, or "" when it has none.
func Caption(obj *engine.GameObject) string {
	for _, c := range obj.Components() {
		switch w := c.(type) {
		case *Button:
			return w.Text()
		case *TextField:
			return w.Display()
		case *Label:
			return w.Text
		}
	}
	return ""
}
