package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// slab intersects one axis slab and narrows [tmin, tmax]. ok is false when
// the ray is parallel to the slab and outside it.
func slab(origin, dir, min, max, tmin, tmax float32) (float32, float32, bool) {
	if dir == 0 {
		if origin < min || origin > max {
			return tmin, tmax, false
		}
		return tmin, tmax, true
	}
	t1 := (min - origin) / dir
	t2 := (max - origin) / dir
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > tmin {
		tmin = t1
	}
	if t2 < tmax {
		tmax = t2
	}
	return tmin, tmax, tmin <= tmax
}

// RayIntersect returns the entry distance of the ray into the box and the face
// normal there. A ray starting inside reports the exit distance.
func (a AABB) RayIntersect(origin, direction rl.Vector3) (float32, rl.Vector3, bool) {
	tmin, tmax := float32(-1e30), float32(1e30)
	var ok bool

	if tmin, tmax, ok = slab(origin.X, direction.X, a.Min.X, a.Max.X, tmin, tmax); !ok {
		return 0, rl.Vector3{}, false
	}
	if tmin, tmax, ok = slab(origin.Y, direction.Y, a.Min.Y, a.Max.Y, tmin, tmax); !ok {
		return 0, rl.Vector3{}, false
	}
	if tmin, tmax, ok = slab(origin.Z, direction.Z, a.Min.Z, a.Max.Z, tmin, tmax); !ok {
		return 0, rl.Vector3{}, false
	}
	if tmax < 0 {
		return 0, rl.Vector3{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return t, a.faceNormal(point), true
}

func (a AABB) faceNormal(point rl.Vector3) rl.Vector3 {
	epsilon := float32(0.001)
	switch {
	case absf(point.X-a.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case absf(point.X-a.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case absf(point.Y-a.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case absf(point.Y-a.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case absf(point.Z-a.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	}
	return rl.Vector3{Z: 1}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
