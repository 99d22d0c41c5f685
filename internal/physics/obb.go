package physics

import (
	"vrcollab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rotMatrix := engine.RotationMatrix(rotation)

	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2},
		Axes:     axes,
	}
}

func (o OBB) toLocal(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: rl.Vector3DotProduct(v, o.Axes[0]),
		Y: rl.Vector3DotProduct(v, o.Axes[1]),
		Z: rl.Vector3DotProduct(v, o.Axes[2]),
	}
}

func (o OBB) toWorld(v rl.Vector3) rl.Vector3 {
	w := rl.Vector3Scale(o.Axes[0], v.X)
	w = rl.Vector3Add(w, rl.Vector3Scale(o.Axes[1], v.Y))
	return rl.Vector3Add(w, rl.Vector3Scale(o.Axes[2], v.Z))
}

// RayIntersect moves the ray into the box's local frame and runs the slab
// test there. Distances are preserved because the axes are orthonormal.
func (o OBB) RayIntersect(origin, direction rl.Vector3) (float32, rl.Vector3, bool) {
	localOrigin := o.toLocal(rl.Vector3Subtract(origin, o.Center))
	localDir := o.toLocal(direction)
	box := AABB{Min: rl.Vector3Scale(o.HalfSize, -1), Max: o.HalfSize}

	t, normal, ok := box.RayIntersect(localOrigin, localDir)
	if !ok {
		return 0, rl.Vector3{}, false
	}
	return t, o.toWorld(normal), true
}

func (o OBB) Contains(p rl.Vector3) bool {
	local := o.toLocal(rl.Vector3Subtract(p, o.Center))
	return absf(local.X) <= o.HalfSize.X && absf(local.Y) <= o.HalfSize.Y && absf(local.Z) <= o.HalfSize.Z
}
