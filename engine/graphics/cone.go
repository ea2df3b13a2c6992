package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
	"github.com/spaghettifunk/kinetic/engine/physics"
	"github.com/spaghettifunk/kinetic/engine/scene"
)

// Cone renders a cone leaf shape, axis along local Y, apex up.
type Cone struct {
	nodeBase
}

func NewCone(window *scene.Window, body *physics.RigidBody, delta math.Isometry, radius, height float32, color mgl32.Vec3) *Cone {
	obj := window.AddCone(radius, height)
	obj.SetColor(color)

	c := &Cone{nodeBase{body: body, delta: delta, obj: obj}}
	c.Update()
	return c
}
