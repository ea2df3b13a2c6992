package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/core"
	"github.com/spaghettifunk/kinetic/engine/math"
	"github.com/spaghettifunk/kinetic/engine/physics"
	"github.com/spaghettifunk/kinetic/engine/scene"
)

// Convex renders the convex hull of a point cloud. The hull is computed once
// at creation and never re-hulled afterwards.
type Convex struct {
	nodeBase
}

func NewConvex(window *scene.Window, body *physics.RigidBody, delta math.Isometry, points []mgl32.Vec3, color mgl32.Vec3) *Convex {
	vertices, triangles, err := ConvexHull(points)
	if err != nil {
		// Degenerate cloud (fewer than 4 points or coplanar): draw the raw
		// points as a fan so something is still visible.
		core.LogWarn("convex hull failed (%s), rendering raw point fan", err.Error())
		vertices = points
		triangles = fanTriangles(len(points))
	}

	obj := window.AddTriMesh(vertices, triangles)
	obj.SetColor(color)

	c := &Convex{nodeBase{body: body, delta: delta, obj: obj}}
	c.Update()
	return c
}

func fanTriangles(n int) [][3]uint32 {
	tris := make([][3]uint32, 0, n)
	for i := 2; i < n; i++ {
		tris = append(tris, [3]uint32{0, uint32(i - 1), uint32(i)})
	}
	return tris
}
