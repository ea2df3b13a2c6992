package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
	"github.com/spaghettifunk/kinetic/engine/physics"
	"github.com/spaghettifunk/kinetic/engine/scene"
)

// Ball renders a sphere leaf shape. The radius passed in is already inflated
// by the body's collision margin.
type Ball struct {
	nodeBase
}

func NewBall(window *scene.Window, body *physics.RigidBody, delta math.Isometry, radius float32, color mgl32.Vec3) *Ball {
	obj := window.AddSphere(radius)
	obj.SetColor(color)

	b := &Ball{nodeBase{body: body, delta: delta, obj: obj}}
	b.Update()
	return b
}
