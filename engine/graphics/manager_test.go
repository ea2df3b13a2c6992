package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/kinetic/engine/math"
	"github.com/spaghettifunk/kinetic/engine/physics"
	"github.com/spaghettifunk/kinetic/engine/scene"
)

type nullRenderer struct{}

func (nullRenderer) BeginFrame(scene.Camera) error  { return nil }
func (nullRenderer) DrawObject(*scene.Object) error { return nil }
func (nullRenderer) DrawLine(scene.Line) error      { return nil }
func (nullRenderer) EndFrame() error                { return nil }

func newTestWindow() *scene.Window {
	return scene.NewWindow(nullRenderer{})
}

func TestAddBuildsOneNodePerLeafShape(t *testing.T) {
	world := physics.NewWorld()
	window := newTestWindow()
	manager := NewGraphicsManager()

	inner := physics.Compound{Children: []physics.CompoundChild{
		{Delta: math.IsometryIdentity(), Shape: physics.Ball{Radius: 0.5}},
		{Delta: math.IsometryFromTranslation(mgl32.Vec3{0, 2, 0}), Shape: physics.Cuboid{HalfExtents: mgl32.Vec3{1, 1, 1}}},
	}}
	outer := physics.Compound{Children: []physics.CompoundChild{
		{Delta: math.IsometryIdentity(), Shape: inner},
		{Delta: math.IsometryFromTranslation(mgl32.Vec3{3, 0, 0}), Shape: physics.Cylinder{HalfHeight: 1, Radius: 0.5}},
	}}

	body := world.AddBody(physics.NewRigidBody(outer))
	manager.Add(window, body)

	nodes := manager.BodyToSceneNodes(body)
	require.Len(t, nodes, 3)
	assert.Equal(t, 3, window.ObjectCount())

	// Depth-first traversal: the inner compound's leaves come before the
	// outer cylinder.
	assert.IsType(t, &Ball{}, nodes[0])
	assert.IsType(t, &Box{}, nodes[1])
	assert.IsType(t, &Cylinder{}, nodes[2])
	assert.Equal(t, window.Objects()[0], nodes[0].Object())
	assert.Equal(t, window.Objects()[1], nodes[1].Object())
	assert.Equal(t, window.Objects()[2], nodes[2].Object())
}

func TestStaticBodiesAreGray(t *testing.T) {
	world := physics.NewWorld()
	window := newTestWindow()
	manager := NewGraphicsManager()

	body := world.AddBody(physics.NewStaticRigidBody(physics.Ball{Radius: 1}))
	manager.Add(window, body)

	nodes := manager.BodyToSceneNodes(body)
	require.Len(t, nodes, 1)
	assert.Equal(t, staticBodyColor, nodes[0].Object().Color())
}

func TestColorCacheSurvivesRemoval(t *testing.T) {
	world := physics.NewWorld()
	window := newTestWindow()
	manager := NewGraphicsManager()

	body := world.AddBody(physics.NewRigidBody(physics.Ball{Radius: 1}))
	chosen := mgl32.Vec3{0.1, 0.2, 0.3}
	manager.SetColor(body, chosen)

	manager.Add(window, body)
	nodes := manager.BodyToSceneNodes(body)
	require.Len(t, nodes, 1)
	assert.Equal(t, chosen, nodes[0].Object().Color())

	manager.Remove(window, body)
	require.Nil(t, manager.BodyToSceneNodes(body))

	// Re-adding picks the cached color back up instead of a fresh draw.
	manager.Add(window, body)
	nodes = manager.BodyToSceneNodes(body)
	require.Len(t, nodes, 1)
	assert.Equal(t, chosen, nodes[0].Object().Color())
}

func TestColorStreamIsDeterministic(t *testing.T) {
	colorsFrom := func() []mgl32.Vec3 {
		world := physics.NewWorld()
		window := newTestWindow()
		manager := NewGraphicsManager()
		var out []mgl32.Vec3
		for i := 0; i < 5; i++ {
			body := world.AddBody(physics.NewRigidBody(physics.Ball{Radius: 1}))
			manager.Add(window, body)
			out = append(out, manager.BodyToSceneNodes(body)[0].Object().Color())
		}
		return out
	}

	first := colorsFrom()
	second := colorsFrom()
	assert.Equal(t, first, second)

	// Consecutive draws differ from each other.
	assert.NotEqual(t, first[0], first[1])
}

func TestRenderedGeometryIncludesMargin(t *testing.T) {
	world := physics.NewWorld()
	window := newTestWindow()
	manager := NewGraphicsManager()

	ballBody := world.AddBody(physics.NewRigidBody(physics.Ball{Radius: 0.5}))
	ballBody.SetMargin(0.1)
	manager.Add(window, ballBody)

	ballGeom := manager.BodyToSceneNodes(ballBody)[0].Object().Geometry()
	for _, v := range ballGeom.Vertices {
		assert.InDelta(t, 0.6, v.Position.Len(), 1e-4)
	}

	boxBody := world.AddBody(physics.NewRigidBody(physics.Cuboid{HalfExtents: mgl32.Vec3{1, 2, 3}}))
	boxBody.SetMargin(0.1)
	manager.Add(window, boxBody)

	var maxX, maxY, maxZ float32
	boxGeom := manager.BodyToSceneNodes(boxBody)[0].Object().Geometry()
	for _, v := range boxGeom.Vertices {
		if v.Position.X() > maxX {
			maxX = v.Position.X()
		}
		if v.Position.Y() > maxY {
			maxY = v.Position.Y()
		}
		if v.Position.Z() > maxZ {
			maxZ = v.Position.Z()
		}
	}
	assert.InDelta(t, 1.1, maxX, 1e-5)
	assert.InDelta(t, 2.1, maxY, 1e-5)
	assert.InDelta(t, 3.1, maxZ, 1e-5)
}

func TestCompoundNodesComposeDeltaWithBodyPose(t *testing.T) {
	world := physics.NewWorld()
	window := newTestWindow()
	manager := NewGraphicsManager()

	delta := math.NewIsometry(mgl32.Vec3{0, 5, 0}, mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1}))
	compound := physics.Compound{Children: []physics.CompoundChild{
		{Delta: delta, Shape: physics.Ball{Radius: 1}},
	}}

	body := world.AddBody(physics.NewRigidBody(compound))
	pose := math.NewIsometry(mgl32.Vec3{10, 0, 0}, mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}))
	body.SetPosition(pose)
	manager.Add(window, body)
	manager.Draw()

	nodes := manager.BodyToSceneNodes(body)
	require.Len(t, nodes, 1)
	assert.True(t, pose.Mul(delta).Compare(nodes[0].Object().Transform(), 1e-5))
}

func TestRemoveIsIdempotent(t *testing.T) {
	world := physics.NewWorld()
	window := newTestWindow()
	manager := NewGraphicsManager()

	body := world.AddBody(physics.NewRigidBody(physics.Ball{Radius: 1}))
	manager.Add(window, body)
	require.Equal(t, 1, window.ObjectCount())

	manager.Remove(window, body)
	manager.Remove(window, body)
	assert.Equal(t, 0, window.ObjectCount())
	assert.Nil(t, manager.BodyToSceneNodes(body))

	// Removing a body that was never registered is fine too.
	other := world.AddBody(physics.NewRigidBody(physics.Ball{Radius: 1}))
	manager.Remove(window, other)
}

func TestClearRemovesEveryNode(t *testing.T) {
	world := physics.NewWorld()
	window := newTestWindow()
	manager := NewGraphicsManager()

	var bodies []*physics.RigidBody
	for i := 0; i < 3; i++ {
		body := world.AddBody(physics.NewRigidBody(physics.Ball{Radius: 1}))
		manager.Add(window, body)
		bodies = append(bodies, body)
	}
	chosen := mgl32.Vec3{0.9, 0.1, 0.1}
	manager.SetColor(bodies[0], chosen)

	manager.Clear(window)
	assert.Equal(t, 0, window.ObjectCount())
	for _, body := range bodies {
		assert.Nil(t, manager.BodyToSceneNodes(body))
	}

	// The color cache outlives Clear.
	manager.Add(window, bodies[0])
	assert.Equal(t, chosen, manager.BodyToSceneNodes(bodies[0])[0].Object().Color())
}

func TestDrawPositionsIssuesAxesPerNode(t *testing.T) {
	world := physics.NewWorld()
	window := newTestWindow()
	manager := NewGraphicsManager()

	body := world.AddBody(physics.NewRigidBody(physics.Ball{Radius: 1}))
	body.SetPosition(math.IsometryFromTranslation(mgl32.Vec3{2, 3, 4}))
	manager.Add(window, body)

	manager.DrawPositions(window)
	lines := window.PendingLines()
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, mgl32.Vec3{2, 3, 4}, line.From)
		assert.InDelta(t, axisLength, line.To.Sub(line.From).Len(), 1e-5)
	}
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, lines[0].Color)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, lines[1].Color)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, lines[2].Color)
}

func TestSwitchCamerasPreservesView(t *testing.T) {
	manager := NewGraphicsManager()
	eye := mgl32.Vec3{-10, 50, -10}
	at := mgl32.Vec3{0, 1, 0}
	manager.LookAt(eye, at)

	manager.SwitchCameras()
	assert.IsType(t, &scene.FirstPerson{}, manager.Camera())
	assertVec3Close(t, eye, manager.Camera().Eye())
	assertVec3Close(t, at, manager.Camera().At())

	manager.SwitchCameras()
	assert.IsType(t, &scene.ArcBall{}, manager.Camera())
	assertVec3Close(t, eye, manager.Camera().Eye())
	assertVec3Close(t, at, manager.Camera().At())
}

func TestPlanePositionedFromBodyPose(t *testing.T) {
	world := physics.NewWorld()
	window := newTestWindow()
	manager := NewGraphicsManager()

	body := world.AddBody(physics.NewStaticRigidBody(physics.Plane{Normal: mgl32.Vec3{0, 1, 0}}))
	rot := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1})
	body.SetPosition(math.NewIsometry(mgl32.Vec3{0, -5, 0}, rot))
	manager.Add(window, body)

	nodes := manager.BodyToSceneNodes(body)
	require.Len(t, nodes, 1)

	// The plane faces the rotated normal from its creation on; Update is a
	// no-op for planes.
	transform := nodes[0].Object().Transform()
	worldNormal := transform.TransformVector(mgl32.Vec3{0, 1, 0})
	assertVec3Close(t, mgl32.Vec3{-1, 0, 0}, worldNormal)
	assertVec3Close(t, mgl32.Vec3{0, -5, 0}, transform.Translation)

	before := nodes[0].Object().Transform()
	body.AppendTranslation(mgl32.Vec3{100, 0, 0})
	nodes[0].Update()
	assert.True(t, before.Compare(nodes[0].Object().Transform(), 1e-6))
}

func assertVec3Close(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), 1e-4)
	assert.InDelta(t, expected.Y(), actual.Y(), 1e-4)
	assert.InDelta(t, expected.Z(), actual.Z(), 1e-4)
}

func TestSelectHighlightsAndRestores(t *testing.T) {
	world := physics.NewWorld()
	window := newTestWindow()
	manager := NewGraphicsManager()

	body := world.AddBody(physics.NewRigidBody(physics.Ball{Radius: 1}))
	chosen := mgl32.Vec3{0.2, 0.4, 0.6}
	manager.SetColor(body, chosen)
	manager.Add(window, body)

	node := manager.BodyToSceneNodes(body)[0]
	node.Select()
	assert.Equal(t, highlightColor, node.Object().Color())

	node.Unselect()
	assert.Equal(t, chosen, node.Object().Color())
}

func TestNestedCompoundAccumulatesDeltas(t *testing.T) {
	world := physics.NewWorld()
	window := newTestWindow()
	manager := NewGraphicsManager()

	innerDelta := math.NewIsometry(mgl32.Vec3{0, 0, 3}, mgl32.QuatRotate(mgl32.DegToRad(45), mgl32.Vec3{1, 0, 0}))
	outerDelta := math.NewIsometry(mgl32.Vec3{0, 5, 0}, mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1}))
	shape := physics.Compound{Children: []physics.CompoundChild{
		{
			Delta: outerDelta,
			Shape: physics.Compound{Children: []physics.CompoundChild{
				{Delta: innerDelta, Shape: physics.Ball{Radius: 1}},
			}},
		},
	}}

	body := world.AddBody(physics.NewRigidBody(shape))
	pose := math.NewIsometry(mgl32.Vec3{10, 0, 0}, mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}))
	body.SetPosition(pose)
	manager.Add(window, body)
	manager.Draw()

	nodes := manager.BodyToSceneNodes(body)
	require.Len(t, nodes, 1)

	// Deltas compose outer-to-inner under the body pose.
	want := pose.Mul(outerDelta).Mul(innerDelta)
	assert.True(t, want.Compare(nodes[0].Object().Transform(), 1e-5))
}

func TestRecycledWorldSlotKeepsColorsSeparate(t *testing.T) {
	world := physics.NewWorld()
	window := newTestWindow()
	manager := NewGraphicsManager()

	a := world.AddBody(physics.NewRigidBody(physics.Ball{Radius: 1}))
	chosen := mgl32.Vec3{0.9, 0.1, 0.3}
	manager.SetColor(a, chosen)
	manager.Add(window, a)

	// The simulation drops a while the manager still holds its registration
	// and cached color. The next body must not alias a's key.
	world.RemoveBody(a)
	b := world.AddBody(physics.NewRigidBody(physics.Ball{Radius: 1}))
	manager.Add(window, b)

	nodes := manager.BodyToSceneNodes(b)
	require.Len(t, nodes, 1)
	assert.NotEqual(t, chosen, nodes[0].Object().Color())
}
