package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
	"github.com/spaghettifunk/kinetic/engine/physics"
	"github.com/spaghettifunk/kinetic/engine/scene"
)

// Box renders a cuboid leaf shape. Half-extents arrive already inflated by
// the body's collision margin.
type Box struct {
	nodeBase
}

func NewBox(window *scene.Window, body *physics.RigidBody, delta math.Isometry, halfExtents mgl32.Vec3, color mgl32.Vec3) *Box {
	obj := window.AddCube(halfExtents)
	obj.SetColor(color)

	b := &Box{nodeBase{body: body, delta: delta, obj: obj}}
	b.Update()
	return b
}
