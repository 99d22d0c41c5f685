package camera

import (
	"math"

	"vrcollab/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rig is the viewer's head: position plus yaw/pitch, driven by look deltas,
// locomotion intent and teleports.
type Rig struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	Fovy      float32
	Aspect    float32
	EyeHeight float32 // Height of camera above the floor point it stands on
}

func New(pos rl.Vector3) *Rig {
	return &Rig{
		Position:  pos,
		Yaw:       -90.0, // looking down -Z
		Pitch:     0,
		MoveSpeed: 3.0, // Units per second
		Fovy:      60,
		Aspect:    16.0 / 9.0,
		EyeHeight: 1.6,
	}
}

// Look applies a yaw/pitch delta in degrees.
func (c *Rig) Look(delta rl.Vector2) {
	c.Yaw += delta.X
	c.Pitch += delta.Y

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Move walks on the horizontal plane.
func (c *Rig) Move(m input.Movement, deltaTime float32) {
	if m.IsZero() {
		return
	}
	forward, right := c.getDirections()

	var moveDir rl.Vector3
	moveDir.X = forward.X*m.Forward + right.X*m.Side
	moveDir.Z = forward.Z*m.Forward + right.Z*m.Side

	// Normalize diagonal movement so you don't go faster diagonally
	moveLen := float32(math.Sqrt(float64(moveDir.X*moveDir.X + moveDir.Z*moveDir.Z)))
	if moveLen > 1 {
		moveDir.X /= moveLen
		moveDir.Z /= moveLen
	}

	c.Position.X += moveDir.X * c.MoveSpeed * deltaTime
	c.Position.Z += moveDir.Z * c.MoveSpeed * deltaTime
}

// Teleport stands the rig on a floor point.
func (c *Rig) Teleport(point rl.Vector3) {
	c.Position = rl.Vector3{X: point.X, Y: point.Y + c.EyeHeight, Z: point.Z}
}

func (c *Rig) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
	return
}

// Forward returns the unit view direction.
func (c *Rig) Forward() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// basis returns the camera's right, up and forward unit vectors.
func (c *Rig) basis() (right, up, forward rl.Vector3) {
	forward = c.Forward()
	right = rl.Vector3Normalize(rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1}))
	up = rl.Vector3CrossProduct(right, forward)
	return
}

func (c *Rig) Camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.Forward()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// RayFromNDC casts a ray through normalized device coordinates (x right,
// y up, both in [-1, 1]) with the rig's perspective.
func (c *Rig) RayFromNDC(x, y float32) rl.Ray {
	right, up, forward := c.basis()
	tanHalf := float32(math.Tan(float64(c.Fovy) * math.Pi / 360))
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	dir := forward
	dir = rl.Vector3Add(dir, rl.Vector3Scale(right, x*tanHalf*aspect))
	dir = rl.Vector3Add(dir, rl.Vector3Scale(up, y*tanHalf))
	return rl.Ray{Position: c.Position, Direction: rl.Vector3Normalize(dir)}
}

// HeadPose is the rig's world transform with the view along local -Z.
// Head-locked controllers use it as their pose.
func (c *Rig) HeadPose() rl.Matrix {
	right, up, forward := c.basis()
	return rl.Matrix{
		M0: right.X, M4: up.X, M8: -forward.X, M12: c.Position.X,
		M1: right.Y, M5: up.Y, M9: -forward.Y, M13: c.Position.Y,
		M2: right.Z, M6: up.Z, M10: -forward.Z, M14: c.Position.Z,
		M15: 1,
	}
}
