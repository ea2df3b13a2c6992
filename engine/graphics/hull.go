package graphics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const hullEpsilon float32 = 1e-6

type hullFace struct {
	a, b, c int
	normal  mgl32.Vec3
}

func newHullFace(points []mgl32.Vec3, a, b, c int) hullFace {
	normal := points[b].Sub(points[a]).Cross(points[c].Sub(points[a]))
	return hullFace{a: a, b: b, c: c, normal: normal}
}

func (f hullFace) visibleFrom(points []mgl32.Vec3, p mgl32.Vec3) bool {
	return f.normal.Dot(p.Sub(points[f.a])) > hullEpsilon
}

// ConvexHull computes the convex hull of a 3D point cloud with an
// incremental algorithm: seed a tetrahedron from extreme points, then insert
// the remaining points one by one, replacing the faces each point can see
// with a fan over its horizon edges. Returns hull vertices and outward-facing
// triangles.
func ConvexHull(points []mgl32.Vec3) ([]mgl32.Vec3, [][3]uint32, error) {
	if len(points) < 4 {
		return nil, nil, fmt.Errorf("convex hull needs at least 4 points, got %d", len(points))
	}

	faces, used, err := initialTetrahedron(points)
	if err != nil {
		return nil, nil, err
	}

	for i := range points {
		if used[i] {
			continue
		}
		faces = insertHullPoint(points, faces, i)
	}

	return reindexHull(points, faces)
}

// initialTetrahedron picks four non-coplanar points and returns the four
// outward-oriented seed faces.
func initialTetrahedron(points []mgl32.Vec3) ([]hullFace, map[int]bool, error) {
	// Most distant pair along X as the base edge.
	p0, p1 := 0, 1
	for i := range points {
		if points[i].X() < points[p0].X() {
			p0 = i
		}
		if points[i].X() > points[p1].X() {
			p1 = i
		}
	}
	if p0 == p1 {
		p1 = (p0 + 1) % len(points)
	}

	// Point farthest from the base edge.
	edge := points[p1].Sub(points[p0])
	p2, best := -1, hullEpsilon
	for i := range points {
		d := edge.Cross(points[i].Sub(points[p0])).Len()
		if d > best {
			p2, best = i, d
		}
	}
	if p2 < 0 {
		return nil, nil, fmt.Errorf("convex hull: all points are collinear")
	}

	// Point farthest from the base plane.
	normal := edge.Cross(points[p2].Sub(points[p0]))
	p3, bestDist := -1, hullEpsilon
	for i := range points {
		d := normal.Dot(points[i].Sub(points[p0]))
		if d > bestDist || -d > bestDist {
			p3 = i
			if d > 0 {
				bestDist = d
			} else {
				bestDist = -d
			}
		}
	}
	if p3 < 0 {
		return nil, nil, fmt.Errorf("convex hull: all points are coplanar")
	}

	centroid := points[p0].Add(points[p1]).Add(points[p2]).Add(points[p3]).Mul(0.25)
	quads := [][3]int{{p0, p1, p2}, {p0, p1, p3}, {p0, p2, p3}, {p1, p2, p3}}
	faces := make([]hullFace, 0, 4)
	for _, q := range quads {
		f := newHullFace(points, q[0], q[1], q[2])
		// Flip so every face points away from the tetrahedron centroid.
		if f.visibleFrom(points, centroid) {
			f = newHullFace(points, q[0], q[2], q[1])
		}
		faces = append(faces, f)
	}

	return faces, map[int]bool{p0: true, p1: true, p2: true, p3: true}, nil
}

// insertHullPoint grows the hull with point p: faces visible from p are
// removed and their horizon (the directed boundary edges appearing exactly
// once among the removed faces) is fanned to p.
func insertHullPoint(points []mgl32.Vec3, faces []hullFace, p int) []hullFace {
	kept := faces[:0:0]
	var visible []hullFace
	edgeCount := make(map[[2]int]int)

	for _, f := range faces {
		if !f.visibleFrom(points, points[p]) {
			kept = append(kept, f)
			continue
		}
		visible = append(visible, f)
		for _, e := range [][2]int{{f.a, f.b}, {f.b, f.c}, {f.c, f.a}} {
			edgeCount[e]++
		}
	}
	if len(visible) == 0 {
		// Inside the current hull.
		return faces
	}

	// Walk the visible faces in face order so the output face order is the
	// same on every run. An edge interior to the visible region appears
	// twice, once per direction; a horizon edge only once.
	for _, f := range visible {
		for _, e := range [][2]int{{f.a, f.b}, {f.b, f.c}, {f.c, f.a}} {
			if edgeCount[[2]int{e[1], e[0]}] == 0 {
				kept = append(kept, newHullFace(points, e[0], e[1], p))
			}
		}
	}
	return kept
}

// reindexHull compacts the face set to the vertices it actually references.
func reindexHull(points []mgl32.Vec3, faces []hullFace) ([]mgl32.Vec3, [][3]uint32, error) {
	remap := make(map[int]uint32)
	var vertices []mgl32.Vec3
	index := func(i int) uint32 {
		if v, ok := remap[i]; ok {
			return v
		}
		remap[i] = uint32(len(vertices))
		vertices = append(vertices, points[i])
		return remap[i]
	}

	triangles := make([][3]uint32, 0, len(faces))
	for _, f := range faces {
		triangles = append(triangles, [3]uint32{index(f.a), index(f.b), index(f.c)})
	}
	return vertices, triangles, nil
}
