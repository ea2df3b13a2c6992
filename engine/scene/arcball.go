package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
)

// ArcBall orbits a fixed target: the eye lives on a sphere around the target
// described by yaw, pitch and distance. This is the default navigation
// strategy for inspecting a scene.
type ArcBall struct {
	target   mgl32.Vec3
	yaw      float32
	pitch    float32
	distance float32

	isDirty    bool
	viewMatrix mgl32.Mat4
}

func NewArcBall(eye, at mgl32.Vec3) *ArcBall {
	c := &ArcBall{}
	c.LookAt(eye, at)
	return c
}

func (c *ArcBall) Eye() mgl32.Vec3 {
	// The stored angles describe the target as seen from the eye, so walk
	// backwards from the target.
	return c.target.Sub(directionFromSpherical(c.yaw, c.pitch).Mul(c.distance))
}

func (c *ArcBall) At() mgl32.Vec3 {
	return c.target
}

func (c *ArcBall) LookAt(eye, at mgl32.Vec3) {
	c.target = at
	c.yaw, c.pitch, c.distance = sphericalFromDirection(eye, at)
	if c.distance == 0 {
		c.distance = 1
	}
	c.isDirty = true
}

func (c *ArcBall) View() mgl32.Mat4 {
	if c.isDirty {
		c.viewMatrix = mgl32.LookAtV(c.Eye(), c.target, mgl32.Vec3{0, 1, 0})
		c.isDirty = false
	}
	return c.viewMatrix
}

// Rotate orbits the eye around the target by the given yaw/pitch deltas.
func (c *ArcBall) Rotate(deltaYaw, deltaPitch float32) {
	c.yaw += deltaYaw
	c.pitch = math.Clamp(c.pitch+deltaPitch, -pitchLimit, pitchLimit)
	c.isDirty = true
}

// Zoom moves the eye towards (positive) or away from (negative) the target.
func (c *ArcBall) Zoom(amount float32) {
	c.distance = math.Clamp(c.distance-amount, 0.1, 1000.0)
	c.isDirty = true
}

// Pan translates the target (and therefore the eye) in the view plane.
func (c *ArcBall) Pan(deltaRight, deltaUp float32) {
	forward := directionFromSpherical(c.yaw, c.pitch)
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward)
	c.target = c.target.Add(right.Mul(deltaRight)).Add(up.Mul(deltaUp))
	c.isDirty = true
}
