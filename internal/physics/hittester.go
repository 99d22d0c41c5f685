package physics

import (
	"vrcollab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultNear = 0.1
	DefaultFar  = 20
)

// HitTester holds the set of objects that can intercept the pointer ray.
// Membership is a set; enabling and disabling cascade over descendants and
// are idempotent.
type HitTester struct {
	Near float32
	Far  float32

	members map[*engine.GameObject]struct{}
}

func NewHitTester(near, far float32) *HitTester {
	if near < 0 {
		near = 0
	}
	if far <= near {
		far = DefaultFar
	}
	return &HitTester{
		Near:    near,
		Far:     far,
		members: make(map[*engine.GameObject]struct{}),
	}
}

// Enable registers obj and all of its descendants.
func (h *HitTester) Enable(obj *engine.GameObject) {
	if obj == nil {
		return
	}
	obj.Walk(func(o *engine.GameObject) bool {
		h.members[o] = struct{}{}
		return true
	})
}

// Disable unregisters obj and all of its descendants.
func (h *HitTester) Disable(obj *engine.GameObject) {
	if obj == nil {
		return
	}
	obj.Walk(func(o *engine.GameObject) bool {
		delete(h.members, o)
		return true
	})
}

func (h *HitTester) Enabled(obj *engine.GameObject) bool {
	_, ok := h.members[obj]
	return ok
}

func (h *HitTester) Count() int {
	return len(h.members)
}

// Raycast returns the nearest enabled object hit within [Near, Far].
// Equidistant hits resolve in map iteration order, which is unspecified.
func (h *HitTester) Raycast(ray rl.Ray) (Intersection, bool) {
	var closest Intersection
	hit := false

	for obj := range h.members {
		if !obj.Active {
			continue
		}
		candidate, ok := RaycastObject(obj, ray)
		if !ok || candidate.Distance < h.Near || candidate.Distance > h.Far {
			continue
		}
		if !hit || candidate.Distance < closest.Distance {
			closest = candidate
			hit = true
		}
	}

	return closest, hit
}
