package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/core"
)

// Window owns the retained scene graph: every live object, plus the transient
// line segments issued since the last frame. It is the factory visualization
// code goes through to materialize geometry.
type Window struct {
	renderer Renderer
	objects  []*Object
	lookup   map[string]int
	lines    []Line
}

func NewWindow(renderer Renderer) *Window {
	return &Window{
		renderer: renderer,
		lookup:   make(map[string]int),
	}
}

// AddGeometry registers a new object for the given geometry and returns its
// handle.
func (w *Window) AddGeometry(config *GeometryConfig) *Object {
	obj := newObject(config)
	w.lookup[obj.id] = len(w.objects)
	w.objects = append(w.objects, obj)
	return obj
}

func (w *Window) AddSphere(radius float32) *Object {
	return w.AddGeometry(NewSphereConfig(radius, 16, 32, "sphere"))
}

func (w *Window) AddCube(halfExtents mgl32.Vec3) *Object {
	return w.AddGeometry(NewCubeConfig(halfExtents, "cube"))
}

func (w *Window) AddCylinder(radius, height float32) *Object {
	return w.AddGeometry(NewCylinderConfig(radius, height, 32, "cylinder"))
}

func (w *Window) AddCone(radius, height float32) *Object {
	return w.AddGeometry(NewConeConfig(radius, height, 32, "cone"))
}

func (w *Window) AddQuad(halfSize float32) *Object {
	return w.AddGeometry(NewQuadConfig(halfSize, "quad"))
}

func (w *Window) AddTriMesh(vertices []mgl32.Vec3, triangles [][3]uint32) *Object {
	return w.AddGeometry(NewTriMeshConfig(vertices, triangles, "trimesh"))
}

func (w *Window) AddBezierPatch(controlPoints []mgl32.Vec3, nu, nv int) *Object {
	return w.AddGeometry(NewBezierPatchConfig(controlPoints, nu, nv, 16, "bezier"))
}

// Remove drops the object from the scene graph. Removing an object that is
// absent (or already removed) is a no-op.
func (w *Window) Remove(obj *Object) {
	if obj == nil {
		return
	}
	idx, ok := w.lookup[obj.id]
	if !ok {
		return
	}
	delete(w.lookup, obj.id)
	w.objects = append(w.objects[:idx], w.objects[idx+1:]...)
	for i := idx; i < len(w.objects); i++ {
		w.lookup[w.objects[i].id] = i
	}
}

// ObjectCount reports the number of live objects.
func (w *Window) ObjectCount() int {
	return len(w.objects)
}

// Objects returns the live objects in creation order.
func (w *Window) Objects() []*Object {
	return w.objects
}

// DrawLine queues a transient line segment for the next rendered frame. Lines
// are not retained; callers re-issue them every frame.
func (w *Window) DrawLine(from, to, color mgl32.Vec3) {
	w.lines = append(w.lines, Line{From: from, To: to, Color: color})
}

// PendingLines returns the line segments queued since the last Render.
func (w *Window) PendingLines() []Line {
	return w.lines
}

// Render pushes the retained objects and queued lines through the backend,
// then drops the lines.
func (w *Window) Render(camera Camera) error {
	if err := w.renderer.BeginFrame(camera); err != nil {
		core.LogError(err.Error())
		return err
	}
	for _, obj := range w.objects {
		if !obj.visible {
			continue
		}
		if err := w.renderer.DrawObject(obj); err != nil {
			core.LogError(err.Error())
			return err
		}
	}
	for _, line := range w.lines {
		if err := w.renderer.DrawLine(line); err != nil {
			core.LogError(err.Error())
			return err
		}
	}
	w.lines = w.lines[:0]
	return w.renderer.EndFrame()
}
