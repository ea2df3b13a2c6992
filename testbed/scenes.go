package testbed

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
	"github.com/spaghettifunk/kinetic/engine/physics"
)

// Scene populates a world and reports where the camera should start.
type Scene struct {
	Name  string
	Eye   mgl32.Vec3
	At    mgl32.Vec3
	Build func(world *physics.World)
}

// Scenes indexes the built-in demo scenes by name.
var Scenes = map[string]Scene{
	"balls-vee":  {Name: "balls-vee", Eye: mgl32.Vec3{-10.0, 50.0, -10.0}, Build: buildBallsVee},
	"boxes-vee":  {Name: "boxes-vee", Eye: mgl32.Vec3{-10.0, 50.0, -10.0}, Build: buildBoxesVee},
	"compound":   {Name: "compound", Eye: mgl32.Vec3{-30.0, 30.0, -30.0}, Build: buildCompoundCrosses},
	"primitives": {Name: "primitives", Eye: mgl32.Vec3{-8.0, 8.0, -8.0}, Build: buildPrimitives},
}

// buildBallsVee drops a grid of balls into a vee of four tilted planes.
func buildBallsVee(world *physics.World) {
	normals := []mgl32.Vec3{
		{-1.0, 1.0, -1.0},
		{1.0, 1.0, -1.0},
		{-1.0, 1.0, 1.0},
		{1.0, 1.0, 1.0},
	}
	for _, n := range normals {
		world.AddBody(physics.NewStaticRigidBody(physics.Plane{Normal: n.Normalize()}))
	}

	num := int(stdmath.Cbrt(1500.0))
	rad := float32(0.5)
	shift := 2.5 * rad
	centerx := shift * float32(num) / 2.0
	centery := shift * float32(num) / 2.0

	for i := 0; i < num; i++ {
		for j := 0; j < num; j++ {
			for k := 0; k < num; k++ {
				x := float32(i)*shift - centerx
				y := 10.0 + float32(j)*shift + centery*2.0
				z := float32(k)*shift - centerx

				rb := physics.NewRigidBody(physics.Ball{Radius: rad})
				rb.AppendTranslation(mgl32.Vec3{x, y, z})
				world.AddBody(rb)
			}
		}
	}
}

// buildBoxesVee is the cuboid variant of the vee scene.
func buildBoxesVee(world *physics.World) {
	normals := []mgl32.Vec3{
		{-1.0, 1.0, -1.0},
		{1.0, 1.0, -1.0},
		{-1.0, 1.0, 1.0},
		{1.0, 1.0, 1.0},
	}
	for _, n := range normals {
		world.AddBody(physics.NewStaticRigidBody(physics.Plane{Normal: n.Normalize()}))
	}

	num := 8
	rad := float32(0.5)
	shift := 2.5 * rad
	centerx := shift * float32(num) / 2.0

	for i := 0; i < num; i++ {
		for j := 0; j < num; j++ {
			for k := 0; k < num; k++ {
				x := float32(i)*shift - centerx
				y := 10.0 + float32(j)*shift
				z := float32(k)*shift - centerx

				rb := physics.NewRigidBody(physics.Cuboid{HalfExtents: mgl32.Vec3{rad, rad, rad}})
				rb.AppendTranslation(mgl32.Vec3{x, y, z})
				world.AddBody(rb)
			}
		}
	}
}

// buildCompoundCrosses fills the scene with cross-shaped compounds, each
// made of three cuboids offset inside the compound frame.
func buildCompoundCrosses(world *physics.World) {
	world.AddBody(physics.NewStaticRigidBody(physics.Plane{Normal: mgl32.Vec3{0.0, 1.0, 0.0}}))

	cross := physics.Compound{Children: []physics.CompoundChild{
		{
			Delta: math.IsometryFromTranslation(mgl32.Vec3{0.0, -5.0, 0.0}),
			Shape: physics.Cuboid{HalfExtents: mgl32.Vec3{4.96, 0.21, 0.21}},
		},
		{
			Delta: math.IsometryFromTranslation(mgl32.Vec3{-5.0, 0.0, 0.0}),
			Shape: physics.Cuboid{HalfExtents: mgl32.Vec3{0.21, 4.96, 0.21}},
		},
		{
			Delta: math.IsometryFromTranslation(mgl32.Vec3{5.0, 0.0, 0.0}),
			Shape: physics.Cuboid{HalfExtents: mgl32.Vec3{0.21, 4.96, 0.21}},
		},
	}}

	num := 6
	rad := float32(5.0)
	shift := rad * 2.0
	centerx := shift * float32(num) / 2.0
	centery := 30.0 + shift/2.0
	centerz := shift * float32(num) / 2.0

	for i := 0; i < num; i++ {
		for j := 0; j < num; j++ {
			for k := 0; k < num; k++ {
				x := float32(i)*shift - centerx
				y := float32(j)*shift + centery
				z := float32(k)*shift - centerz

				rb := physics.NewRigidBody(cross)
				rb.AppendTranslation(mgl32.Vec3{x, y, z})
				world.AddBody(rb)
			}
		}
	}
}

// buildPrimitives lays out one body of every renderable kind side by side,
// handy for eyeballing the full classifier.
func buildPrimitives(world *physics.World) {
	world.AddBody(physics.NewStaticRigidBody(physics.Plane{Normal: mgl32.Vec3{0.0, 1.0, 0.0}}))

	place := func(shape physics.Shape, x float32) {
		rb := physics.NewRigidBody(shape)
		rb.AppendTranslation(mgl32.Vec3{x, 2.0, 0.0})
		world.AddBody(rb)
	}

	place(physics.Ball{Radius: 0.8}, -9.0)
	place(physics.Cuboid{HalfExtents: mgl32.Vec3{0.7, 0.7, 0.7}}, -6.0)
	place(physics.Cylinder{HalfHeight: 0.8, Radius: 0.5}, -3.0)
	place(physics.Cone{HalfHeight: 0.8, Radius: 0.6}, 0.0)

	place(physics.Convex{Points: []mgl32.Vec3{
		{0.0, 1.0, 0.0}, {1.0, -0.6, 0.8}, {-1.0, -0.6, 0.8},
		{0.8, -0.6, -1.0}, {-0.8, -0.6, -1.0}, {0.0, -1.0, 0.0},
	}}, 3.0)

	place(physics.TriMesh{
		Vertices: []mgl32.Vec3{
			{-1.0, 0.0, -1.0}, {1.0, 0.0, -1.0}, {1.0, 0.0, 1.0},
			{-1.0, 0.0, 1.0}, {0.0, 1.2, 0.0},
		},
		Indices: []uint32{0, 1, 4, 1, 2, 4, 2, 3, 4, 3, 0, 4},
	}, 6.0)

	controlPoints := make([]mgl32.Vec3, 0, 16)
	for v := 0; v < 4; v++ {
		for u := 0; u < 4; u++ {
			height := float32(stdmath.Sin(float64(u)+float64(v))) * 0.4
			controlPoints = append(controlPoints, mgl32.Vec3{float32(u) - 1.5, height, float32(v) - 1.5})
		}
	}
	place(physics.BezierSurface{ControlPoints: controlPoints, NUPoints: 4, NVPoints: 4}, 9.0)

	// A nested compound: a small cross carrying a ball on one arm.
	place(physics.Compound{Children: []physics.CompoundChild{
		{
			Delta: math.IsometryFromTranslation(mgl32.Vec3{0.0, 1.2, 0.0}),
			Shape: physics.Compound{Children: []physics.CompoundChild{
				{
					Delta: math.IsometryFromTranslation(mgl32.Vec3{0.0, 0.8, 0.0}),
					Shape: physics.Ball{Radius: 0.3},
				},
			}},
		},
		{
			Delta: math.IsometryIdentity(),
			Shape: physics.Cuboid{HalfExtents: mgl32.Vec3{0.2, 1.2, 0.2}},
		},
	}}, 12.0)
}
