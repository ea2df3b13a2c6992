package testbed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/kinetic/engine/physics"
)

func buildScene(t *testing.T, name string) *physics.World {
	t.Helper()
	scene, ok := Scenes[name]
	require.True(t, ok, "scene %q not registered", name)

	world := physics.NewWorld()
	scene.Build(world)
	return world
}

func countBodies(world *physics.World) (static, movable int) {
	for _, rb := range world.Bodies() {
		if rb.CanMove() {
			movable++
		} else {
			static++
		}
	}
	return static, movable
}

func TestBallsVeeScene(t *testing.T) {
	world := buildScene(t, "balls-vee")
	static, movable := countBodies(world)
	assert.Equal(t, 4, static)
	assert.Equal(t, 11*11*11, movable)

	for _, rb := range world.Bodies() {
		if !rb.CanMove() {
			_, ok := rb.Shape().(physics.Plane)
			assert.True(t, ok)
		} else {
			ball, ok := rb.Shape().(physics.Ball)
			require.True(t, ok)
			assert.Equal(t, float32(0.5), ball.Radius)
		}
	}
}

func TestBoxesVeeScene(t *testing.T) {
	world := buildScene(t, "boxes-vee")
	static, movable := countBodies(world)
	assert.Equal(t, 4, static)
	assert.Equal(t, 8*8*8, movable)
}

func TestCompoundScene(t *testing.T) {
	world := buildScene(t, "compound")
	static, movable := countBodies(world)
	assert.Equal(t, 1, static)
	assert.Equal(t, 6*6*6, movable)

	for _, rb := range world.Bodies() {
		if !rb.CanMove() {
			continue
		}
		compound, ok := rb.Shape().(physics.Compound)
		require.True(t, ok)
		assert.Len(t, compound.Children, 3)
	}
}

func TestPrimitivesSceneCoversEveryKind(t *testing.T) {
	world := buildScene(t, "primitives")

	kinds := make(map[string]bool)
	for _, rb := range world.Bodies() {
		switch rb.Shape().(type) {
		case physics.Plane:
			kinds["plane"] = true
		case physics.Ball:
			kinds["ball"] = true
		case physics.Cuboid:
			kinds["cuboid"] = true
		case physics.Cylinder:
			kinds["cylinder"] = true
		case physics.Cone:
			kinds["cone"] = true
		case physics.Convex:
			kinds["convex"] = true
		case physics.TriMesh:
			kinds["trimesh"] = true
		case physics.BezierSurface:
			kinds["bezier"] = true
		case physics.Compound:
			kinds["compound"] = true
		}
	}

	for _, kind := range []string{
		"plane", "ball", "cuboid", "cylinder", "cone",
		"convex", "trimesh", "bezier", "compound",
	} {
		assert.True(t, kinds[kind], "missing %s body", kind)
	}
}

func TestEverySceneHasACameraPose(t *testing.T) {
	for name, scene := range Scenes {
		assert.Equal(t, name, scene.Name)
		assert.NotNil(t, scene.Build)
		assert.NotEqual(t, scene.Eye, scene.At, "degenerate camera for %s", name)
	}
}
