package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
)

// Shape is the collision geometry of a rigid body. The set of kinds is
// closed: a shape is exactly one of Plane, Ball, Cuboid, Cylinder, Cone,
// Convex, TriMesh, BezierSurface or Compound, and consumers dispatch with an
// exhaustive type switch. Shapes are immutable once constructed.
type Shape interface {
	isShape()
}

// Plane is an infinite plane through the body origin with the given normal.
type Plane struct {
	Normal mgl32.Vec3
}

// Ball is a sphere of the given radius centered on its local origin.
type Ball struct {
	Radius float32
}

// Cuboid is an axis-aligned box described by its half-extents.
type Cuboid struct {
	HalfExtents mgl32.Vec3
}

// Cylinder has its principal axis along local Y.
type Cylinder struct {
	HalfHeight float32
	Radius     float32
}

// Cone has its principal axis along local Y, apex at +Y.
type Cone struct {
	HalfHeight float32
	Radius     float32
}

// Convex is the convex hull of a point cloud. The stored points are the
// input cloud; the hull itself is computed by whoever needs it.
type Convex struct {
	Points []mgl32.Vec3
}

// TriMesh is an indexed triangle soup. Every three consecutive indices form
// one triangle.
type TriMesh struct {
	Vertices []mgl32.Vec3
	Indices  []uint32
}

// BezierSurface is a bicubic patch grid of NUPoints x NVPoints control points
// stored row-major.
type BezierSurface struct {
	ControlPoints []mgl32.Vec3
	NUPoints      int
	NVPoints      int
}

// CompoundChild pairs a sub-shape with its offset in the compound's frame.
type CompoundChild struct {
	Delta math.Isometry
	Shape Shape
}

// Compound is an ordered aggregate of sub-shapes, each placed by a local
// isometry. Children may themselves be compounds; nesting depth is bounded
// only by the data.
type Compound struct {
	Children []CompoundChild
}

func (Plane) isShape()         {}
func (Ball) isShape()          {}
func (Cuboid) isShape()        {}
func (Cylinder) isShape()      {}
func (Cone) isShape()          {}
func (Convex) isShape()        {}
func (TriMesh) isShape()       {}
func (BezierSurface) isShape() {}
func (Compound) isShape()      {}

// Triangles groups the mesh indices into consecutive triples. A trailing
// remainder that does not fill a triangle is dropped.
func (m TriMesh) Triangles() [][3]uint32 {
	count := len(m.Indices) / 3
	tris := make([][3]uint32, 0, count)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tris = append(tris, [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]})
	}
	return tris
}

// ControlPoint returns the control point at patch coordinates (u, v).
func (b BezierSurface) ControlPoint(u, v int) mgl32.Vec3 {
	return b.ControlPoints[v*b.NUPoints+u]
}
