package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
	"github.com/spaghettifunk/kinetic/engine/physics"
	"github.com/spaghettifunk/kinetic/engine/scene"
)

// Cylinder renders a cylinder leaf shape, axis along local Y.
type Cylinder struct {
	nodeBase
}

func NewCylinder(window *scene.Window, body *physics.RigidBody, delta math.Isometry, radius, height float32, color mgl32.Vec3) *Cylinder {
	obj := window.AddCylinder(radius, height)
	obj.SetColor(color)

	c := &Cylinder{nodeBase{body: body, delta: delta, obj: obj}}
	c.Update()
	return c
}
