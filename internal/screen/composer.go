package screen

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"vrcollab/internal/engine"
	"vrcollab/internal/physics"
)

var ErrUnknownScreen = errors.New("unknown screen")

// Blurrer releases keyboard focus held by anything inside a subtree.
type Blurrer interface {
	BlurWithin(obj *engine.GameObject)
}

// Composer groups widgets into named screens and swaps which of them are
// attached under root and registered for hit testing. A widget may belong to
// several screens.
type Composer struct {
	root    *engine.GameObject
	hits    *physics.HitTester
	focus   Blurrer
	screens map[string][]*engine.GameObject

	current  string
	attached []*engine.GameObject
}

func NewComposer(root *engine.GameObject, hits *physics.HitTester) *Composer {
	return &Composer{
		root:    root,
		hits:    hits,
		screens: make(map[string][]*engine.GameObject),
	}
}

func (c *Composer) Root() *engine.GameObject { return c.root }

// SetFocus makes Show drop focus held by widgets it hides.
func (c *Composer) SetFocus(b Blurrer) { c.focus = b }

// Define sets the widgets of screen name, replacing a previous definition.
// Redefining the visible screen takes effect on the next Show.
func (c *Composer) Define(name string, objs ...*engine.GameObject) {
	list := make([]*engine.GameObject, 0, len(objs))
	for _, o := range objs {
		if o != nil {
			list = append(list, o)
		}
	}
	c.screens[name] = list
}

// Show detaches the visible widgets and attaches the widgets of name. Focus
// held inside a widget that is hidden is dropped. An unknown name leaves
// everything as it was.
func (c *Composer) Show(name string) error {
	objs, ok := c.screens[name]
	if !ok {
		return fmt.Errorf("show %q: %w", name, ErrUnknownScreen)
	}

	staying := make(map[*engine.GameObject]bool, len(objs))
	for _, obj := range objs {
		staying[obj] = true
	}
	for _, obj := range c.attached {
		if c.focus != nil && !staying[obj] {
			c.focus.BlurWithin(obj)
		}
		if c.hits != nil {
			c.hits.Disable(obj)
		}
		c.root.RemoveChild(obj)
	}
	c.attached = c.attached[:0]

	for _, obj := range objs {
		c.root.AddChild(obj)
		if c.root.Scene != nil {
			c.root.Scene.Index(obj)
		}
		if c.hits != nil {
			c.hits.Enable(obj)
		}
		c.attached = append(c.attached, obj)
	}
	c.current = name
	log.Printf("Screen: showing %s (%d widgets)", name, len(objs))
	return nil
}

// Current returns the visible screen, or "" before the first Show.
func (c *Composer) Current() string { return c.current }

// Screens lists the defined screen names in order.
func (c *Composer) Screens() []string {
	names := make([]string, 0, len(c.screens))
	for name := range c.screens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Widgets returns the widgets defined for name.
func (c *Composer) Widgets(name string) []*engine.GameObject {
	return c.screens[name]
}

// Attached reports whether obj is currently shown by the composer.
func (c *Composer) Attached(obj *engine.GameObject) bool {
	for _, o := range c.attached {
		if o == obj {
			return true
		}
	}
	return false
}
