package engine

// Scene holds the root objects that are started and updated every tick.
// Descendants are reached through their roots.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	if _, exists := s.uidMap[g.UID]; exists && g.Scene == s {
		return
	}
	s.GameObjects = append(s.GameObjects, g)
	g.Walk(func(o *GameObject) bool {
		o.Scene = s
		s.uidMap[o.UID] = o
		return true
	})
}

// RemoveGameObject removes a root and forgets its whole subtree.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	g.Walk(func(o *GameObject) bool {
		delete(s.uidMap, o.UID)
		if o.Scene == s {
			o.Scene = nil
		}
		return true
	})
}

// Index records objects attached below a root after it was added.
func (s *Scene) Index(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Walk(func(o *GameObject) bool {
		o.Scene = s
		s.uidMap[o.UID] = o
		return true
	})
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
		if found := g.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, root := range s.GameObjects {
		root.Walk(func(g *GameObject) bool {
			if g.HasTag(tag) {
				result = append(result, g)
			}
			return true
		})
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
