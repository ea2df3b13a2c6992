package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
	"github.com/spaghettifunk/kinetic/engine/physics"
	"github.com/spaghettifunk/kinetic/engine/scene"
)

// highlightColor tints selected nodes.
var highlightColor = mgl32.Vec3{1.0, 0.9, 0.1}

// Node is one renderable representation of a single leaf shape of a body.
// Compound shapes never yield a node themselves; only their leaves do. Every
// kind exposes the same capability set; the kind set is closed (ball, box,
// cylinder, cone, convex, mesh, plane, bezier surface).
type Node interface {
	// Select visually emphasizes the node. No simulation effect.
	Select()
	// Unselect removes the emphasis.
	Unselect()
	// Update pulls the owning body's current pose and pushes the resulting
	// transform to the scene object. The only per-frame mutation.
	Update()
	// Object returns the underlying scene-graph handle.
	Object() *scene.Object
	// Body returns the owning rigid body.
	Body() *physics.RigidBody
}

// nodeBase carries the state and behavior shared by every node kind: the
// owning body, the accumulated local-to-body offset baked in at creation, and
// the scene object.
type nodeBase struct {
	body  *physics.RigidBody
	delta math.Isometry
	obj   *scene.Object
}

func (n *nodeBase) Select() {
	n.obj.Highlight(highlightColor)
}

func (n *nodeBase) Unselect() {
	n.obj.Unhighlight()
}

func (n *nodeBase) Update() {
	n.obj.SetTransform(n.body.Position().Mul(n.delta))
}

func (n *nodeBase) Object() *scene.Object {
	return n.obj
}

func (n *nodeBase) Body() *physics.RigidBody {
	return n.body
}
