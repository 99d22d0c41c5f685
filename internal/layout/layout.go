package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"vrcollab/internal/engine"
	"vrcollab/internal/physics"
	"vrcollab/internal/screen"
	"vrcollab/internal/widget"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrUnknownKind     = errors.New("unknown widget kind")
	ErrUnknownWidget   = errors.New("unknown widget")
	ErrDuplicateWidget = errors.New("duplicate widget name")
	ErrNotToggleable   = errors.New("widget is not a toggle")
)

// --- JSON types ---

type File struct {
	Initial string      `json:"initial"`
	Widgets []WidgetDef `json:"widgets"`
	Groups  []GroupDef  `json:"groups,omitempty"`
	Screens []ScreenDef `json:"screens"`
}

type WidgetDef struct {
	Kind        string     `json:"kind"`
	Name        string     `json:"name"`
	Label       string     `json:"label,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Position    [3]float32 `json:"position"`
	Rotation    [3]float32 `json:"rotation,omitempty"`
	Size        [3]float32 `json:"size,omitempty"`
	Color       string     `json:"color,omitempty"`
	Text        string     `json:"text,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
	// Show names the screen to switch to when the widget is pressed.
	Show string `json:"show,omitempty"`
}

type GroupDef struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Default string   `json:"default,omitempty"`
}

type ScreenDef struct {
	Name    string   `json:"name"`
	Widgets []string `json:"widgets"`
}

// Env is what widget factories need from the running application.
type Env struct {
	Root          *engine.GameObject
	Hits          *physics.HitTester
	Focus         *widget.FocusController
	Teleporter    widget.Teleporter
	PressDuration float32
}

// Layout is a built layout file.
type Layout struct {
	Composer *screen.Composer
	Widgets  map[string]*engine.GameObject
	Groups   map[string]*widget.ToggleGroup
}

// Widget returns the object built for name, or nil.
func (l *Layout) Widget(name string) *engine.GameObject {
	return l.Widgets[name]
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Beige":     rl.Beige,
	"Gold":      rl.Gold,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.LightGray
}

// --- Loading ---

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return &f, nil
}

// Build creates every widget of f, wires toggle groups and screen actions,
// and shows the initial screen under env.Root.
func Build(f *File, env *Env) (*Layout, error) {
	if env.Root == nil {
		env.Root = engine.NewGameObject("UI")
	}
	l := &Layout{
		Composer: screen.NewComposer(env.Root, env.Hits),
		Widgets:  make(map[string]*engine.GameObject, len(f.Widgets)),
		Groups:   make(map[string]*widget.ToggleGroup, len(f.Groups)),
	}
	if env.Focus != nil {
		l.Composer.SetFocus(env.Focus)
	}

	for _, def := range f.Widgets {
		if _, exists := l.Widgets[def.Name]; exists {
			return nil, fmt.Errorf("widget %q: %w", def.Name, ErrDuplicateWidget)
		}
		obj, err := create(def, env)
		if err != nil {
			return nil, err
		}
		l.Widgets[def.Name] = obj
	}

	// Defaults are selected before screen actions are wired so that building
	// does not switch screens.
	for _, gdef := range f.Groups {
		group, err := l.buildGroup(gdef)
		if err != nil {
			return nil, err
		}
		l.Groups[gdef.Name] = group
	}

	for _, sdef := range f.Screens {
		objs := make([]*engine.GameObject, 0, len(sdef.Widgets))
		for _, name := range sdef.Widgets {
			obj, ok := l.Widgets[name]
			if !ok {
				return nil, fmt.Errorf("screen %q: %w %q", sdef.Name, ErrUnknownWidget, name)
			}
			objs = append(objs, obj)
		}
		l.Composer.Define(sdef.Name, objs...)
	}

	for _, def := range f.Widgets {
		if def.Show == "" {
			continue
		}
		target := def.Show
		l.Widgets[def.Name].AddListener(engine.EventPressed, func(engine.Event) {
			if err := l.Composer.Show(target); err != nil {
				log.Printf("Layout: %v", err)
			}
		})
	}

	if f.Initial != "" {
		if err := l.Composer.Show(f.Initial); err != nil {
			return nil, fmt.Errorf("initial screen: %w", err)
		}
	}
	log.Printf("Layout: built %d widgets, %d groups, %d screens", len(l.Widgets), len(l.Groups), len(f.Screens))
	return l, nil
}

func (l *Layout) buildGroup(gdef GroupDef) (*widget.ToggleGroup, error) {
	group := widget.NewToggleGroup(gdef.Name)
	for _, name := range gdef.Members {
		b, err := l.toggle(name)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", gdef.Name, err)
		}
		group.Add(b)
	}
	if gdef.Default != "" {
		b, err := l.toggle(gdef.Default)
		if err != nil {
			return nil, fmt.Errorf("group %q default: %w", gdef.Name, err)
		}
		if !group.Select(b) {
			return nil, fmt.Errorf("group %q default %q: %w", gdef.Name, gdef.Default, ErrUnknownWidget)
		}
	}
	return group, nil
}

func (l *Layout) toggle(name string) (*widget.Button, error) {
	obj, ok := l.Widgets[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownWidget, name)
	}
	b := engine.GetComponent[*widget.Button](obj)
	if b == nil || b.Behavior == widget.Momentary {
		return nil, fmt.Errorf("%q: %w", name, ErrNotToggleable)
	}
	return b, nil
}
