package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/core"
	"github.com/spaghettifunk/kinetic/engine/math"
)

// RigidBody is a simulated rigid object: a pose, a collision shape and the
// physical properties the visualization layer cares about. Bodies are created
// free-standing and receive their identity token when added to a World.
type RigidBody struct {
	id           uint32
	position     math.Isometry
	centerOfMass mgl32.Vec3
	margin       float32
	canMove      bool
	shape        Shape
}

const defaultMargin float32 = 0.04

// NewRigidBody creates a movable body with the given shape at the origin.
func NewRigidBody(shape Shape) *RigidBody {
	return &RigidBody{
		id:       core.InvalidID,
		position: math.IsometryIdentity(),
		margin:   defaultMargin,
		canMove:  true,
		shape:    shape,
	}
}

// NewStaticRigidBody creates an immovable body, typically ground planes and
// walls.
func NewStaticRigidBody(shape Shape) *RigidBody {
	rb := NewRigidBody(shape)
	rb.canMove = false
	return rb
}

// ID returns the body's identity token. It is stable for the body's whole
// registered lifetime, independent of any pose or shape mutation, and unique
// among live bodies. Bodies not yet added to a World report core.InvalidID.
func (rb *RigidBody) ID() uint32 {
	return rb.id
}

// Position returns the body's current world pose.
func (rb *RigidBody) Position() math.Isometry {
	return rb.position
}

// SetPosition replaces the body's world pose. Called by the simulation (or a
// kinematic scenario); the visualization layer only reads it.
func (rb *RigidBody) SetPosition(position math.Isometry) {
	rb.position = position
}

// AppendTranslation shifts the body by the given world-frame offset.
func (rb *RigidBody) AppendTranslation(translation mgl32.Vec3) {
	rb.position.Translation = rb.position.Translation.Add(translation)
}

// CenterOfMass returns the world-frame center of mass.
func (rb *RigidBody) CenterOfMass() mgl32.Vec3 {
	return rb.position.TransformPoint(rb.centerOfMass)
}

// SetLocalCenterOfMass sets the center of mass in the body's local frame.
func (rb *RigidBody) SetLocalCenterOfMass(com mgl32.Vec3) {
	rb.centerOfMass = com
}

// Margin is the collision inflation distance added around the nominal shape.
// Rendered geometry reflects it so what is drawn matches what collides.
func (rb *RigidBody) Margin() float32 {
	return rb.margin
}

func (rb *RigidBody) SetMargin(margin float32) {
	rb.margin = margin
}

// CanMove reports whether the body is dynamic. Static bodies never change
// pose and get the neutral default color.
func (rb *RigidBody) CanMove() bool {
	return rb.canMove
}

// Shape returns the body's collision shape.
func (rb *RigidBody) Shape() Shape {
	return rb.shape
}
