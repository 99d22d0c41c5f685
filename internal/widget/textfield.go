package widget

import "vrcollab/internal/engine"

// TextField is an editable text widget. A Down on it acquires focus; edits go
// to a draft until Enter or Escape commits it.
type TextField struct {
	engine.BaseComponent

	Text        string // last committed value
	Placeholder string

	focus        *FocusController
	draft        []rune
	caretVisible bool
}

func NewTextField(focus *FocusController, text string) *TextField {
	return &TextField{Text: text, focus: focus}
}

func (t *TextField) SetGameObject(g *engine.GameObject) {
	t.BaseComponent.SetGameObject(g)
	g.AddListener(engine.EventButtonDown, func(engine.Event) {
		if t.focus != nil {
			t.focus.Acquire(t)
		}
	})
}

func (t *TextField) Focused() bool {
	return t.focus != nil && t.focus.Current() == t
}

func (t *TextField) Draft() string { return string(t.draft) }
func (t *TextField) CaretVisible() bool { return t.caretVisible }

// Display is the text to render, with a caret while focused.
func (t *TextField) Display() string {
	if !t.Focused() {
		if t.Text == "" {
			return t.Placeholder
		}
		return t.Text
	}
	if t.caretVisible {
		return string(t.draft) + "|"
	}
	return string(t.draft)
}

// SetText replaces the committed value without emitting Changed.
func (t *TextField) SetText(s string) {
	t.Text = s
	if t.Focused() {
		t.draft = []rune(s)
	}
}

func (t *TextField) beginEdit() {
	t.draft = []rune(t.Text)
	t.caretVisible = true
}

// endEdit reverts the draft and stops the caret.
func (t *TextField) endEdit() {
	t.draft = []rune(t.Text)
	t.caretVisible = false
}
