package physics

import (
	"vrcollab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is the bounding geometry used to hit-test a GameObject.
type Collider interface {
	engine.Component
	Raycast(origin, direction rl.Vector3) (float32, rl.Vector3, bool)
}

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	offset := rl.Vector3Transform(b.Offset, engine.RotationMatrix(g.WorldRotation()))
	return rl.Vector3Add(g.WorldPosition(), offset)
}

// GetWorldSize returns the collider size scaled by the object's world scale
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

func (b *BoxCollider) GetOBB() OBB {
	return NewOBB(b.GetCenter(), b.GetWorldSize(), b.GetGameObject().WorldRotation())
}

func (b *BoxCollider) Raycast(origin, direction rl.Vector3) (float32, rl.Vector3, bool) {
	return b.GetOBB().RayIntersect(origin, direction)
}

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

func (s *SphereCollider) Raycast(origin, direction rl.Vector3) (float32, rl.Vector3, bool) {
	return raySphere(origin, direction, s.GetCenter(), s.Radius)
}
