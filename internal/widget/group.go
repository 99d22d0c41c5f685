package widget

// ToggleGroup keeps at most one member pressed. Pressing a member releases
// every other member first, in the same call.
type ToggleGroup struct {
	Name    string
	members []*Button
}

func NewToggleGroup(name string, members ...*Button) *ToggleGroup {
	g := &ToggleGroup{Name: name}
	g.Add(members...)
	return g
}

// Add appends members. A button leaves any previous group, and a pressed
// newcomer is released if the group already has a selection.
func (g *ToggleGroup) Add(buttons ...*Button) {
	for _, b := range buttons {
		if b == nil || b.group == g {
			continue
		}
		if b.group != nil {
			b.group.remove(b)
		}
		if b.pressed && g.Selected() != nil {
			b.SetPressed(false)
		}
		b.group = g
		g.members = append(g.members, b)
	}
}

func (g *ToggleGroup) remove(b *Button) {
	for i, m := range g.members {
		if m == b {
			g.members = append(g.members[:i], g.members[i+1:]...)
			b.group = nil
			return
		}
	}
}

// Select presses b as the group's selection. It reports false when b is not
// a member.
func (g *ToggleGroup) Select(b *Button) bool {
	if b == nil || b.group != g {
		return false
	}
	b.SetPressed(true)
	return true
}

// Selected returns the pressed member, or nil.
func (g *ToggleGroup) Selected() *Button {
	for _, m := range g.members {
		if m.pressed {
			return m
		}
	}
	return nil
}

func (g *ToggleGroup) Members() []*Button {
	return g.members
}

func (g *ToggleGroup) releaseOthers(except *Button) {
	for _, m := range g.members {
		if m != except {
			m.SetPressed(false)
		}
	}
}
