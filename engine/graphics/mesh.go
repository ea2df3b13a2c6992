package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
	"github.com/spaghettifunk/kinetic/engine/physics"
	"github.com/spaghettifunk/kinetic/engine/scene"
)

// Mesh renders a triangle-mesh leaf shape. Triangles come pre-grouped; a
// trailing index remainder was already dropped by the shape.
type Mesh struct {
	nodeBase
}

func NewMesh(window *scene.Window, body *physics.RigidBody, delta math.Isometry, vertices []mgl32.Vec3, triangles [][3]uint32, color mgl32.Vec3) *Mesh {
	obj := window.AddTriMesh(vertices, triangles)
	obj.SetColor(color)

	m := &Mesh{nodeBase{body: body, delta: delta, obj: obj}}
	m.Update()
	return m
}
