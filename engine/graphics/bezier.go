package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
	"github.com/spaghettifunk/kinetic/engine/physics"
	"github.com/spaghettifunk/kinetic/engine/scene"
)

// BezierSurface renders a bezier patch leaf shape, evaluated into a
// subdivided mesh at creation time.
type BezierSurface struct {
	nodeBase
}

func NewBezierSurface(window *scene.Window, body *physics.RigidBody, delta math.Isometry, controlPoints []mgl32.Vec3, nu, nv int, color mgl32.Vec3) *BezierSurface {
	obj := window.AddBezierPatch(controlPoints, nu, nv)
	obj.SetColor(color)

	b := &BezierSurface{nodeBase{body: body, delta: delta, obj: obj}}
	b.Update()
	return b
}
