package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Line is a transient debug segment, alive for a single frame.
type Line struct {
	From  mgl32.Vec3
	To    mgl32.Vec3
	Color mgl32.Vec3
}

// Renderer is the backend boundary: it receives the retained objects and the
// frame's transient lines and puts pixels on screen. The scene package keeps
// no backend state of its own, so backends can be swapped (or faked in tests)
// without touching callers.
type Renderer interface {
	BeginFrame(camera Camera) error
	DrawObject(obj *Object) error
	DrawLine(line Line) error
	EndFrame() error
}
