package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/core"
)

// World owns the rigid bodies of a simulation and hands out their identity
// tokens. It deliberately performs no integration or collision detection;
// scenario code (or an external engine) drives body poses, the world is the
// arena they live in.
type World struct {
	identifiers *core.IdentifierPool
	gravity     mgl32.Vec3
	bodies      []*RigidBody
}

func NewWorld() *World {
	return &World{
		identifiers: core.NewIdentifierPool(),
		gravity:     mgl32.Vec3{0, -9.81, 0},
	}
}

func (w *World) Gravity() mgl32.Vec3 {
	return w.gravity
}

func (w *World) SetGravity(gravity mgl32.Vec3) {
	w.gravity = gravity
}

// AddBody registers the body and issues its identity token. Each body gets a
// fresh slot; the token stays valid until RemoveBody.
func (w *World) AddBody(rb *RigidBody) *RigidBody {
	rb.id = w.identifiers.Acquire(rb)
	w.bodies = append(w.bodies, rb)
	return rb
}

// RemoveBody drops the body from the world and releases its identity token.
// Removing a body that is not registered is a no-op.
func (w *World) RemoveBody(rb *RigidBody) {
	for i, b := range w.bodies {
		if b == rb {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			if err := w.identifiers.Release(rb.id); err != nil {
				core.LogWarn(err.Error())
			}
			rb.id = core.InvalidID
			return
		}
	}
}

// Bodies returns the registered bodies in insertion order.
func (w *World) Bodies() []*RigidBody {
	return w.bodies
}

// Body resolves an identity token back to its body, or nil if released.
func (w *World) Body(id uint32) *RigidBody {
	owner := w.identifiers.Owner(id)
	if owner == nil {
		return nil
	}
	rb, ok := owner.(*RigidBody)
	if !ok {
		return nil
	}
	return rb
}
