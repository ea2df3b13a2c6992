package scene

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
)

// Vertex3D is a single mesh vertex.
type Vertex3D struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// GeometryConfig describes a triangle mesh to be turned into a scene object.
// Every three consecutive indices form one triangle.
type GeometryConfig struct {
	Name     string
	Vertices []Vertex3D
	Indices  []uint32
}

// TriangleCount returns the number of whole triangles in the index buffer.
func (g *GeometryConfig) TriangleCount() int {
	return len(g.Indices) / 3
}

// NewSphereConfig generates a lat/long sphere of the given radius.
func NewSphereConfig(radius float32, rings, sectors int, name string) *GeometryConfig {
	if rings < 2 {
		rings = 2
	}
	if sectors < 3 {
		sectors = 3
	}

	config := &GeometryConfig{Name: name}
	for r := 0; r <= rings; r++ {
		phi := stdmath.Pi * float64(r) / float64(rings)
		y := float32(stdmath.Cos(phi))
		ringRadius := float32(stdmath.Sin(phi))
		for s := 0; s <= sectors; s++ {
			theta := 2.0 * stdmath.Pi * float64(s) / float64(sectors)
			normal := mgl32.Vec3{
				ringRadius * float32(stdmath.Cos(theta)),
				y,
				ringRadius * float32(stdmath.Sin(theta)),
			}
			config.Vertices = append(config.Vertices, Vertex3D{
				Position: normal.Mul(radius),
				Normal:   normal,
			})
		}
	}

	stride := uint32(sectors + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < sectors; s++ {
			i0 := uint32(r)*stride + uint32(s)
			i1 := i0 + 1
			i2 := i0 + stride
			i3 := i2 + 1
			config.Indices = append(config.Indices, i0, i2, i1, i1, i2, i3)
		}
	}
	return config
}

// NewCubeConfig generates a box from its half-extents, 4 verts and 2
// triangles per face so normals stay flat.
func NewCubeConfig(halfExtents mgl32.Vec3, name string) *GeometryConfig {
	hx, hy, hz := halfExtents.X(), halfExtents.Y(), halfExtents.Z()

	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}},
	}

	config := &GeometryConfig{Name: name}
	for f, face := range faces {
		base := uint32(f * 4)
		for _, corner := range face.corners {
			config.Vertices = append(config.Vertices, Vertex3D{Position: corner, Normal: face.normal})
		}
		config.Indices = append(config.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return config
}

// NewCylinderConfig generates a cylinder along local Y with the given radius
// and full height, including both caps.
func NewCylinderConfig(radius, height float32, sectors int, name string) *GeometryConfig {
	if sectors < 3 {
		sectors = 3
	}
	halfHeight := height * 0.5

	config := &GeometryConfig{Name: name}

	// Side wall, normals radial.
	for s := 0; s <= sectors; s++ {
		theta := 2.0 * stdmath.Pi * float64(s) / float64(sectors)
		nx := float32(stdmath.Cos(theta))
		nz := float32(stdmath.Sin(theta))
		normal := mgl32.Vec3{nx, 0, nz}
		config.Vertices = append(config.Vertices,
			Vertex3D{Position: mgl32.Vec3{nx * radius, -halfHeight, nz * radius}, Normal: normal},
			Vertex3D{Position: mgl32.Vec3{nx * radius, halfHeight, nz * radius}, Normal: normal},
		)
	}
	for s := 0; s < sectors; s++ {
		b := uint32(s * 2)
		config.Indices = append(config.Indices, b, b+1, b+2, b+2, b+1, b+3)
	}

	// Caps, fan around a center vertex.
	for _, endcap := range []struct {
		y      float32
		normal mgl32.Vec3
	}{
		{-halfHeight, mgl32.Vec3{0, -1, 0}},
		{halfHeight, mgl32.Vec3{0, 1, 0}},
	} {
		center := uint32(len(config.Vertices))
		config.Vertices = append(config.Vertices, Vertex3D{Position: mgl32.Vec3{0, endcap.y, 0}, Normal: endcap.normal})
		for s := 0; s <= sectors; s++ {
			theta := 2.0 * stdmath.Pi * float64(s) / float64(sectors)
			config.Vertices = append(config.Vertices, Vertex3D{
				Position: mgl32.Vec3{float32(stdmath.Cos(theta)) * radius, endcap.y, float32(stdmath.Sin(theta)) * radius},
				Normal:   endcap.normal,
			})
		}
		for s := 0; s < sectors; s++ {
			i0 := center + 1 + uint32(s)
			if endcap.normal.Y() > 0 {
				config.Indices = append(config.Indices, center, i0, i0+1)
			} else {
				config.Indices = append(config.Indices, center, i0+1, i0)
			}
		}
	}
	return config
}

// NewConeConfig generates a cone along local Y, apex up, base at -height/2.
func NewConeConfig(radius, height float32, sectors int, name string) *GeometryConfig {
	if sectors < 3 {
		sectors = 3
	}
	halfHeight := height * 0.5

	config := &GeometryConfig{Name: name}

	// Slope normal: radial component height, vertical component radius.
	slope := math.Sqrt(radius*radius + height*height)
	for s := 0; s <= sectors; s++ {
		theta := 2.0 * stdmath.Pi * float64(s) / float64(sectors)
		nx := float32(stdmath.Cos(theta))
		nz := float32(stdmath.Sin(theta))
		normal := mgl32.Vec3{nx * height / slope, radius / slope, nz * height / slope}
		config.Vertices = append(config.Vertices,
			Vertex3D{Position: mgl32.Vec3{nx * radius, -halfHeight, nz * radius}, Normal: normal},
			Vertex3D{Position: mgl32.Vec3{0, halfHeight, 0}, Normal: normal},
		)
	}
	for s := 0; s < sectors; s++ {
		b := uint32(s * 2)
		config.Indices = append(config.Indices, b, b+1, b+2)
	}

	// Base cap.
	center := uint32(len(config.Vertices))
	down := mgl32.Vec3{0, -1, 0}
	config.Vertices = append(config.Vertices, Vertex3D{Position: mgl32.Vec3{0, -halfHeight, 0}, Normal: down})
	for s := 0; s <= sectors; s++ {
		theta := 2.0 * stdmath.Pi * float64(s) / float64(sectors)
		config.Vertices = append(config.Vertices, Vertex3D{
			Position: mgl32.Vec3{float32(stdmath.Cos(theta)) * radius, -halfHeight, float32(stdmath.Sin(theta)) * radius},
			Normal:   down,
		})
	}
	for s := 0; s < sectors; s++ {
		i0 := center + 1 + uint32(s)
		config.Indices = append(config.Indices, center, i0+1, i0)
	}
	return config
}

// NewQuadConfig generates a flat square in the XZ plane, normal +Y, used to
// visualize infinite planes.
func NewQuadConfig(halfSize float32, name string) *GeometryConfig {
	up := mgl32.Vec3{0, 1, 0}
	return &GeometryConfig{
		Name: name,
		Vertices: []Vertex3D{
			{Position: mgl32.Vec3{-halfSize, 0, -halfSize}, Normal: up},
			{Position: mgl32.Vec3{-halfSize, 0, halfSize}, Normal: up},
			{Position: mgl32.Vec3{halfSize, 0, halfSize}, Normal: up},
			{Position: mgl32.Vec3{halfSize, 0, -halfSize}, Normal: up},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// NewTriMeshConfig wraps raw triangles into a config, generating smooth
// normals by accumulating face normals per vertex.
func NewTriMeshConfig(vertices []mgl32.Vec3, triangles [][3]uint32, name string) *GeometryConfig {
	config := &GeometryConfig{Name: name}
	config.Vertices = make([]Vertex3D, len(vertices))
	for i, v := range vertices {
		config.Vertices[i].Position = v
	}
	for _, tri := range triangles {
		config.Indices = append(config.Indices, tri[0], tri[1], tri[2])
	}
	generateNormals(config.Vertices, config.Indices)
	return config
}

// NewBezierPatchConfig evaluates a Bezier control grid into a subdivided
// triangle mesh. Control points are row-major, nu per row.
func NewBezierPatchConfig(controlPoints []mgl32.Vec3, nu, nv, subdivisions int, name string) *GeometryConfig {
	if subdivisions < 1 {
		subdivisions = 1
	}

	config := &GeometryConfig{Name: name}
	for j := 0; j <= subdivisions; j++ {
		v := float32(j) / float32(subdivisions)
		for i := 0; i <= subdivisions; i++ {
			u := float32(i) / float32(subdivisions)
			config.Vertices = append(config.Vertices, Vertex3D{
				Position: evalBezierPatch(controlPoints, nu, nv, u, v),
			})
		}
	}

	stride := uint32(subdivisions + 1)
	for j := 0; j < subdivisions; j++ {
		for i := 0; i < subdivisions; i++ {
			i0 := uint32(j)*stride + uint32(i)
			i1 := i0 + 1
			i2 := i0 + stride
			i3 := i2 + 1
			config.Indices = append(config.Indices, i0, i2, i1, i1, i2, i3)
		}
	}
	generateNormals(config.Vertices, config.Indices)
	return config
}

// evalBezierPatch runs de Casteljau along each row for u, then once along the
// resulting column for v.
func evalBezierPatch(controlPoints []mgl32.Vec3, nu, nv int, u, v float32) mgl32.Vec3 {
	column := make([]mgl32.Vec3, nv)
	row := make([]mgl32.Vec3, nu)
	for j := 0; j < nv; j++ {
		copy(row, controlPoints[j*nu:(j+1)*nu])
		column[j] = deCasteljau(row, u)
	}
	return deCasteljau(column, v)
}

func deCasteljau(points []mgl32.Vec3, t float32) mgl32.Vec3 {
	work := make([]mgl32.Vec3, len(points))
	copy(work, points)
	for n := len(work); n > 1; n-- {
		for i := 0; i < n-1; i++ {
			work[i] = work[i].Mul(1 - t).Add(work[i+1].Mul(t))
		}
	}
	return work[0]
}

func generateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)
		normal := edge1.Cross(edge2)
		vertices[i0].Normal = vertices[i0].Normal.Add(normal)
		vertices[i1].Normal = vertices[i1].Normal.Add(normal)
		vertices[i2].Normal = vertices[i2].Normal.Add(normal)
	}
	for i := range vertices {
		if vertices[i].Normal.Len() > 0 {
			vertices[i].Normal = vertices[i].Normal.Normalize()
		}
	}
}
