package widget

import (
	"vrcollab/internal/engine"
	"vrcollab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type keyDef struct {
	Label string // shown instead of Value when set
	Value string
	Shift string // value while Shift or CapsLock is active
	Width float32
}

const (
	keyShift     = "SHIFT"
	keyCapsLock  = "CAPSLOCK"
	keyBackspace = "BACKSPACE"
	keyEnter     = "ENTER"
	keyTab       = "TAB"
	keyBacktab   = "BACKTAB"
)

func letters(s string) []keyDef {
	defs := make([]keyDef, 0, len(s))
	for _, r := range s {
		defs = append(defs, keyDef{Value: string(r), Shift: upper(r)})
	}
	return defs
}

func upper(r rune) string {
	switch r {
	case 'ü':
		return "Ü"
	case 'ö':
		return "Ö"
	case 'ä':
		return "Ä"
	}
	if r >= 'a' && r <= 'z' {
		return string(r - 'a' + 'A')
	}
	return string(r)
}

func plain(s string) []keyDef {
	defs := make([]keyDef, 0, len(s))
	for _, r := range s {
		defs = append(defs, keyDef{Value: string(r)})
	}
	return defs
}

func row(parts ...[]keyDef) []keyDef {
	var out []keyDef
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func special(label, value string, width float32) []keyDef {
	return []keyDef{{Label: label, Value: value, Width: width}}
}

var keyRows = [][]keyDef{
	plain(`'!"§$%&?\=+-*/#|`),
	row(special("<<", keyBacktab, 1), plain("1234567890ß[]^°")),
	row(special(">>", keyTab, 1), letters("qwertzuiopü"), plain("{}~@")),
	row(special("Caps", keyCapsLock, 1), letters("asdfghjklöä"), plain("()`€")),
	row(special("Shift", keyShift, 1), letters("yxcvbnm"), plain(",.:;<>´_")),
	row(special("Copy", "COPY", 1), special("Paste", "PASTE", 1), special("Space", " ", 9), special("<-", keyBackspace, 2), special("Enter", keyEnter, 3)),
}

// KeyReceiver consumes keys typed on the virtual keyboard.
type KeyReceiver interface {
	HandleKey(k engine.Key) bool
}

// Keyboard is an on-screen keyboard built from key buttons. Each key press
// emits EventKeyPressed on the keyboard's GameObject with the key value.
type Keyboard struct {
	engine.BaseComponent

	KeySize float32
	Gap     float32
	Target  KeyReceiver

	shift *Button
	caps  *Button
	keys  map[*Button]keyDef
}

func NewKeyboard(keySize float32) *Keyboard {
	if keySize <= 0 {
		keySize = 0.1
	}
	return &Keyboard{
		KeySize: keySize,
		Gap:     keySize * 0.1,
		keys:    make(map[*Button]keyDef),
	}
}

func (k *Keyboard) SetGameObject(g *engine.GameObject) {
	k.BaseComponent.SetGameObject(g)
	k.build(g)
}

func (k *Keyboard) build(g *engine.GameObject) {
	for i, keys := range keyRows {
		x := float32(0)
		for _, def := range keys {
			width := def.Width
			if width == 0 {
				width = 1
			}
			behavior := Momentary
			if def.Value == keyShift || def.Value == keyCapsLock {
				behavior = Toggle
			}
			label := def.Label
			if label == "" {
				label = def.Value
			}

			obj := engine.NewGameObject("Key " + label)
			obj.Transform.Position = rl.Vector3{
				X: (x + width/2) * k.KeySize,
				Y: -float32(i) * k.KeySize,
			}
			obj.AddComponent(physics.NewBoxCollider(rl.Vector3{
				X: width*k.KeySize - k.Gap,
				Y: k.KeySize - k.Gap,
				Z: k.KeySize * 0.2,
			}))
			button := NewButton(behavior, label)
			button.Inset, button.InsetPressed = -0.05, -0.15
			button.Depth = button.Inset
			obj.AddComponent(button)
			g.AddChild(obj)

			k.keys[button] = def
			switch def.Value {
			case keyShift:
				k.shift = button
				obj.AddListener(engine.EventPressed, func(engine.Event) { k.refreshLabels() })
				obj.AddListener(engine.EventReleased, func(engine.Event) { k.refreshLabels() })
			case keyCapsLock:
				k.caps = button
				obj.AddListener(engine.EventPressed, func(engine.Event) { k.refreshLabels() })
				obj.AddListener(engine.EventReleased, func(engine.Event) { k.refreshLabels() })
			default:
				d := def
				obj.AddListener(engine.EventPressed, func(engine.Event) { k.typeKey(d) })
			}
			x += width
		}
	}
}

// ShiftActive is true while Shift or CapsLock is engaged.
func (k *Keyboard) ShiftActive() bool {
	return (k.shift != nil && k.shift.Pressed()) || (k.caps != nil && k.caps.Pressed())
}

func (k *Keyboard) Shift() *Button { return k.shift }
func (k *Keyboard) CapsLock() *Button { return k.caps }

// KeyButton returns the button whose value is v.
func (k *Keyboard) KeyButton(v string) *Button {
	for b, def := range k.keys {
		if def.Value == v {
			return b
		}
	}
	return nil
}

func (k *Keyboard) typeKey(def keyDef) {
	value := def.Value
	if k.ShiftActive() && def.Shift != "" {
		value = def.Shift
	}
	// Shift applies to a single key; CapsLock stays.
	if k.shift != nil && k.shift.Pressed() {
		k.shift.SetPressed(false)
	}
	if g := k.GetGameObject(); g != nil {
		g.SendEvent(engine.Event{Type: engine.EventKeyPressed, Text: value})
	}
	if k.Target != nil {
		if key := KeyFor(value); key.Name != engine.KeyUnknown {
			k.Target.HandleKey(key)
		}
	}
}

func (k *Keyboard) refreshLabels() {
	active := k.ShiftActive()
	for b, def := range k.keys {
		if def.Shift == "" {
			continue
		}
		if active {
			b.Label = def.Shift
		} else {
			b.Label = def.Value
		}
	}
}

// KeyFor maps a virtual keyboard value to a logical key.
func KeyFor(value string) engine.Key {
	switch value {
	case keyBackspace:
		return engine.Key{Name: engine.KeyBackspace}
	case keyEnter:
		return engine.Key{Name: engine.KeyEnter}
	case keyTab:
		return engine.Key{Name: engine.KeyTab}
	case keyBacktab:
		return engine.Key{Name: engine.KeyBacktab}
	}
	runes := []rune(value)
	if len(runes) == 1 {
		return engine.CharKey(runes[0])
	}
	return engine.Key{}
}
