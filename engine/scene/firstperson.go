package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
)

// FirstPerson walks the eye freely through the scene; the target follows the
// view direction at the last look-at distance so a camera switch restores the
// exact same eye/target pair.
type FirstPerson struct {
	position mgl32.Vec3
	yaw      float32
	pitch    float32
	distance float32

	isDirty    bool
	viewMatrix mgl32.Mat4
}

func NewFirstPerson(eye, at mgl32.Vec3) *FirstPerson {
	c := &FirstPerson{}
	c.LookAt(eye, at)
	return c
}

func (c *FirstPerson) Eye() mgl32.Vec3 {
	return c.position
}

func (c *FirstPerson) At() mgl32.Vec3 {
	return c.position.Add(directionFromSpherical(c.yaw, c.pitch).Mul(c.distance))
}

func (c *FirstPerson) LookAt(eye, at mgl32.Vec3) {
	c.position = eye
	c.yaw, c.pitch, c.distance = sphericalFromDirection(eye, at)
	if c.distance == 0 {
		c.distance = 1
	}
	c.isDirty = true
}

func (c *FirstPerson) View() mgl32.Mat4 {
	if c.isDirty {
		c.viewMatrix = mgl32.LookAtV(c.position, c.At(), mgl32.Vec3{0, 1, 0})
		c.isDirty = false
	}
	return c.viewMatrix
}

func (c *FirstPerson) Forward() mgl32.Vec3 {
	return directionFromSpherical(c.yaw, c.pitch)
}

func (c *FirstPerson) Right() mgl32.Vec3 {
	return c.Forward().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

func (c *FirstPerson) MoveForward(amount float32) {
	c.position = c.position.Add(c.Forward().Mul(amount))
	c.isDirty = true
}

func (c *FirstPerson) MoveRight(amount float32) {
	c.position = c.position.Add(c.Right().Mul(amount))
	c.isDirty = true
}

func (c *FirstPerson) MoveUp(amount float32) {
	c.position = c.position.Add(mgl32.Vec3{0, amount, 0})
	c.isDirty = true
}

func (c *FirstPerson) Yaw(amount float32) {
	c.yaw += amount
	c.isDirty = true
}

func (c *FirstPerson) Pitch(amount float32) {
	c.pitch = math.Clamp(c.pitch+amount, -pitchLimit, pitchLimit)
	c.isDirty = true
}
