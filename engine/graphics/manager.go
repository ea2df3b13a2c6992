package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/kinetic/engine/core"
	"github.com/spaghettifunk/kinetic/engine/math"
	"github.com/spaghettifunk/kinetic/engine/physics"
	"github.com/spaghettifunk/kinetic/engine/scene"
)

const (
	// colorStreamSeed fixes the movable-body color sequence across runs so
	// visual regressions are comparable.
	colorStreamSeed uint64 = 0x02040800
	// colorStreamWarmUp draws discarded at construction; the first region of
	// the generator's output is visually uninteresting.
	colorStreamWarmUp = 100

	axisLength float32 = 0.25
)

var staticBodyColor = mgl32.Vec3{0.5, 0.5, 0.5}

// GraphicsManager keeps every registered rigid body mapped to the scene
// nodes visualizing it, resolves body colors, refreshes node transforms each
// frame and owns the two interchangeable cameras. Lookup is keyed by the
// body's identity token, never by its mutable state.
type GraphicsManager struct {
	rand *rand.Rand

	nodes  map[uint32][]Node
	order  []uint32
	colors map[uint32]mgl32.Vec3

	arcBall       *scene.ArcBall
	firstPerson   *scene.FirstPerson
	currIsArcBall bool
}

func NewGraphicsManager() *GraphicsManager {
	eye := mgl32.Vec3{10.0, 10.0, 10.0}
	at := mgl32.Vec3{0.0, 0.0, 0.0}

	rng := rand.New(rand.NewSource(colorStreamSeed))
	// The first colors are boring.
	for i := 0; i < colorStreamWarmUp; i++ {
		randomColor(rng)
	}

	return &GraphicsManager{
		rand:          rng,
		nodes:         make(map[uint32][]Node),
		colors:        make(map[uint32]mgl32.Vec3),
		arcBall:       scene.NewArcBall(eye, at),
		firstPerson:   scene.NewFirstPerson(eye, at),
		currIsArcBall: true,
	}
}

func randomColor(rng *rand.Rand) mgl32.Vec3 {
	return mgl32.Vec3{rng.Float32(), rng.Float32(), rng.Float32()}
}

// Add registers the body and builds one scene node per leaf shape. The color
// is the cached one if SetColor was called for this body before (surviving
// any removal), gray for static bodies, otherwise the next draw from the
// deterministic color stream. Adding an already-registered body rebuilds its
// nodes as if it were new; callers wanting a clean rebuild must Remove first.
func (m *GraphicsManager) Add(window *scene.Window, body *physics.RigidBody) {
	color, ok := m.colors[body.ID()]
	if !ok {
		if body.CanMove() {
			color = randomColor(m.rand)
		} else {
			color = staticBodyColor
		}
	}

	m.AddWithColor(window, body, color)
}

// AddWithColor registers the body using exactly the given color, bypassing
// the color cache.
func (m *GraphicsManager) AddWithColor(window *scene.Window, body *physics.RigidBody, color mgl32.Vec3) {
	var nodes []Node
	m.addShape(window, body, math.IsometryIdentity(), body.Shape(), color, &nodes)

	key := body.ID()
	if _, registered := m.nodes[key]; !registered {
		m.order = append(m.order, key)
	}
	m.nodes[key] = nodes
}

// SetColor caches the color for the body's identity key. Already-built nodes
// keep their current color until the body is removed and re-added.
func (m *GraphicsManager) SetColor(body *physics.RigidBody, color mgl32.Vec3) {
	m.colors[body.ID()] = color
}

// Remove deletes every scene node of the body and forgets the registry
// entry. The cached color survives so a later re-add reuses it. Removing an
// unregistered body is a no-op.
func (m *GraphicsManager) Remove(window *scene.Window, body *physics.RigidBody) {
	key := body.ID()
	nodes, ok := m.nodes[key]
	if !ok {
		return
	}

	for _, n := range nodes {
		window.Remove(n.Object())
	}
	delete(m.nodes, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Clear removes every registered body's nodes. Color cache untouched.
func (m *GraphicsManager) Clear(window *scene.Window) {
	for _, nodes := range m.nodes {
		for _, n := range nodes {
			window.Remove(n.Object())
		}
	}
	m.nodes = make(map[uint32][]Node)
	m.order = m.order[:0]
}

// Draw refreshes every node from its body's current pose, in registration
// order then node order.
func (m *GraphicsManager) Draw() {
	for _, key := range m.order {
		for _, n := range m.nodes[key] {
			n.Update()
		}
	}
}

// DrawPositions issues the debug axes overlay: three short RGB segments from
// each body's center of mass along its pose's local basis. The segments are
// transient and re-issued every frame.
func (m *GraphicsManager) DrawPositions(window *scene.Window) {
	for _, key := range m.order {
		for _, n := range m.nodes[key] {
			rb := n.Body()
			t := rb.Position()
			center := rb.CenterOfMass()

			x := t.BasisX().Mul(axisLength)
			y := t.BasisY().Mul(axisLength)
			z := t.BasisZ().Mul(axisLength)

			window.DrawLine(center, center.Add(x), mgl32.Vec3{1.0, 0.0, 0.0})
			window.DrawLine(center, center.Add(y), mgl32.Vec3{0.0, 1.0, 0.0})
			window.DrawLine(center, center.Add(z), mgl32.Vec3{0.0, 0.0, 1.0})
		}
	}
}

// BodyToSceneNodes returns the node set registered for the body, or nil if
// the body is not registered.
func (m *GraphicsManager) BodyToSceneNodes(body *physics.RigidBody) []Node {
	return m.nodes[body.ID()]
}

// SwitchCameras toggles the active navigation strategy, seeding the newly
// active camera with the current one's eye/target so the view does not jump.
func (m *GraphicsManager) SwitchCameras() {
	if m.currIsArcBall {
		m.firstPerson.LookAt(m.arcBall.Eye(), m.arcBall.At())
	} else {
		m.arcBall.LookAt(m.firstPerson.Eye(), m.firstPerson.At())
	}

	m.currIsArcBall = !m.currIsArcBall
}

// Camera returns the currently active camera.
func (m *GraphicsManager) Camera() scene.Camera {
	if m.currIsArcBall {
		return m.arcBall
	}
	return m.firstPerson
}

// ArcBall returns the orbit camera regardless of which one is active.
func (m *GraphicsManager) ArcBall() *scene.ArcBall {
	return m.arcBall
}

// FirstPerson returns the walk camera regardless of which one is active.
func (m *GraphicsManager) FirstPerson() *scene.FirstPerson {
	return m.firstPerson
}

// LookAt points both cameras at the same eye/target.
func (m *GraphicsManager) LookAt(eye, at mgl32.Vec3) {
	m.arcBall.LookAt(eye, at)
	m.firstPerson.LookAt(eye, at)
}

// addShape descends the shape tree, accumulating compound offsets into
// delta. Leaf kinds append exactly one node; compounds recurse per child and
// produce none themselves. The kind set is closed: anything else means the
// adapter has no rendering strategy and cannot continue.
func (m *GraphicsManager) addShape(window *scene.Window, body *physics.RigidBody, delta math.Isometry, shape physics.Shape, color mgl32.Vec3, out *[]Node) {
	switch s := shape.(type) {
	case physics.Plane:
		m.addPlane(window, body, s, color, out)
	case physics.Ball:
		*out = append(*out, NewBall(window, body, delta, s.Radius+body.Margin(), color))
	case physics.Cuboid:
		margin := body.Margin()
		halfExtents := mgl32.Vec3{
			s.HalfExtents.X() + margin,
			s.HalfExtents.Y() + margin,
			s.HalfExtents.Z() + margin,
		}
		*out = append(*out, NewBox(window, body, delta, halfExtents, color))
	case physics.Cylinder:
		*out = append(*out, NewCylinder(window, body, delta, s.Radius, s.HalfHeight*2.0, color))
	case physics.Cone:
		*out = append(*out, NewCone(window, body, delta, s.Radius, s.HalfHeight*2.0, color))
	case physics.Convex:
		*out = append(*out, NewConvex(window, body, delta, s.Points, color))
	case physics.TriMesh:
		*out = append(*out, NewMesh(window, body, delta, s.Vertices, s.Triangles(), color))
	case physics.BezierSurface:
		*out = append(*out, NewBezierSurface(window, body, delta, s.ControlPoints, s.NUPoints, s.NVPoints, color))
	case physics.Compound:
		for _, child := range s.Children {
			m.addShape(window, body, delta.Mul(child.Delta), child.Shape, color, out)
		}
	default:
		core.LogFatal("graphics: no renderable representation for shape %T", shape)
	}
}

// addPlane ignores accumulated offsets: an infinite plane is positioned by
// the body's world pose composed with its own normal.
func (m *GraphicsManager) addPlane(window *scene.Window, body *physics.RigidBody, shape physics.Plane, color mgl32.Vec3, out *[]Node) {
	position := body.Position().Translation
	normal := body.Position().TransformVector(shape.Normal)

	*out = append(*out, NewPlane(window, body, position, normal, color))
}
