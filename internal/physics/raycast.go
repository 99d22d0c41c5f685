package physics

import (
	"math"

	"vrcollab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Intersection is the nearest hit of a pointer ray.
type Intersection struct {
	Object   *engine.GameObject
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RaycastObject tests a single object's collider. Objects without a collider
// are never hit.
func RaycastObject(obj *engine.GameObject, ray rl.Ray) (Intersection, bool) {
	collider := engine.GetComponent[Collider](obj)
	if collider == nil {
		return Intersection{}, false
	}
	direction := rl.Vector3Normalize(ray.Direction)
	t, normal, ok := collider.Raycast(ray.Position, direction)
	if !ok {
		return Intersection{}, false
	}
	return Intersection{
		Object:   obj,
		Point:    rl.Vector3Add(ray.Position, rl.Vector3Scale(direction, t)),
		Normal:   normal,
		Distance: t,
	}, true
}

func raySphere(origin, direction, center rl.Vector3, radius float32) (float32, rl.Vector3, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, rl.Vector3{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 {
		return 0, rl.Vector3{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))
	return t, normal, true
}
