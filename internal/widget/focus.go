package widget

import (
	"log"
	"strings"
	"unicode"

	"vrcollab/internal/config"
	"vrcollab/internal/engine"
	"vrcollab/internal/input"
)

// FocusController owns keyboard focus. At most one TextField holds it; while
// one does, movement keys are suppressed through the navigation lock.
type FocusController struct {
	CaretInterval float32 // seconds
	TabWidth      int

	nav     *input.NavigationLock
	current *TextField
	elapsed float32
}

func NewFocusController(nav *input.NavigationLock, conf config.Text) *FocusController {
	interval := float32(conf.CaretIntervalMs) / 1000
	if interval <= 0 {
		interval = 0.5
	}
	return &FocusController{
		CaretInterval: interval,
		TabWidth:      conf.TabWidth,
		nav:           nav,
	}
}

func (f *FocusController) Current() *TextField { return f.current }
func (f *FocusController) Focused() bool { return f.current != nil }

// Acquire gives focus to tf. A previous holder is reverted to its committed
// text first. Acquiring for the current holder is a no-op.
func (f *FocusController) Acquire(tf *TextField) {
	if tf == nil || tf == f.current {
		return
	}
	if f.current != nil {
		f.current.endEdit()
	}
	f.current = tf
	f.elapsed = 0
	tf.beginEdit()
	if f.nav != nil {
		f.nav.Suppress()
	}
}

// Blur drops focus without committing.
func (f *FocusController) Blur() {
	if f.current == nil {
		return
	}
	f.current.endEdit()
	f.release()
}

// BlurWithin drops focus when the holder is obj or one of its descendants.
func (f *FocusController) BlurWithin(obj *engine.GameObject) {
	if f.current == nil || obj == nil {
		return
	}
	for g := f.current.GetGameObject(); g != nil; g = g.Parent {
		if g == obj {
			f.Blur()
			return
		}
	}
}

func (f *FocusController) release() {
	f.current = nil
	f.elapsed = 0
	if f.nav != nil {
		f.nav.Restore()
	}
}

// HandleKey edits the focused field's draft. It reports whether the key was
// consumed.
func (f *FocusController) HandleKey(k engine.Key) bool {
	tf := f.current
	if tf == nil {
		return false
	}
	switch k.Name {
	case engine.KeyChar:
		if !unicode.IsPrint(k.Char) {
			return false
		}
		tf.draft = append(tf.draft, k.Char)
	case engine.KeyBackspace:
		if n := len(tf.draft); n > 0 {
			tf.draft = tf.draft[:n-1]
		}
	case engine.KeyTab:
		tf.draft = append(tf.draft, []rune(strings.Repeat(" ", f.TabWidth))...)
	case engine.KeyEnter, engine.KeyEscape:
		f.commit()
	default:
		return false
	}
	return true
}

func (f *FocusController) commit() {
	tf := f.current
	tf.Text = string(tf.draft)
	tf.endEdit()
	f.release()
	log.Printf("Focus: committed %q", tf.Text)
	if g := tf.GetGameObject(); g != nil {
		g.SendEvent(engine.Event{Type: engine.EventChanged, Text: tf.Text})
	}
}

// Update blinks the caret of the focused field.
func (f *FocusController) Update(deltaTime float32) {
	if f.current == nil {
		return
	}
	f.elapsed += deltaTime
	for f.elapsed >= f.CaretInterval {
		f.elapsed -= f.CaretInterval
		f.current.caretVisible = !f.current.caretVisible
	}
}
