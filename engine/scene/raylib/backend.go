package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/scene"
)

// Backend renders the retained scene through raylib in immediate mode:
// every frame each object's triangles are transformed on the CPU and handed
// to DrawTriangle3D, with a fixed-direction lambert term so depth reads well
// without a shader pipeline.
type Backend struct {
	title  string
	width  int32
	height int32
	fovy   float32

	lightDir mgl32.Vec3
}

func NewBackend(title string, width, height int32, fovy float32) *Backend {
	return &Backend{
		title:    title,
		width:    width,
		height:   height,
		fovy:     fovy,
		lightDir: mgl32.Vec3{-0.4, -1.0, -0.6}.Normalize(),
	}
}

// Open creates the OS window. Must be called before the first frame.
func (b *Backend) Open(targetFPS int32) {
	rl.InitWindow(b.width, b.height, b.title)
	rl.SetTargetFPS(targetFPS)
}

func (b *Backend) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (b *Backend) Close() {
	rl.CloseWindow()
}

func (b *Backend) BeginFrame(camera scene.Camera) error {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 26, 32, 255))
	rl.BeginMode3D(rl.Camera3D{
		Position:   toVector3(camera.Eye()),
		Target:     toVector3(camera.At()),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       b.fovy,
		Projection: rl.CameraPerspective,
	})
	return nil
}

func (b *Backend) DrawObject(obj *scene.Object) error {
	geometry := obj.Geometry()
	transform := obj.Transform()
	scale := obj.Scale()
	color := obj.Color()

	indices := geometry.Indices
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := geometry.Vertices[indices[i]]
		v1 := geometry.Vertices[indices[i+1]]
		v2 := geometry.Vertices[indices[i+2]]

		p0 := transform.TransformPoint(scaled(v0.Position, scale))
		p1 := transform.TransformPoint(scaled(v1.Position, scale))
		p2 := transform.TransformPoint(scaled(v2.Position, scale))

		shadedColor := b.shade(transform.TransformVector(v0.Normal), color)
		rl.DrawTriangle3D(toVector3(p0), toVector3(p1), toVector3(p2), shadedColor)
	}
	return nil
}

func (b *Backend) DrawLine(line scene.Line) error {
	rl.DrawLine3D(toVector3(line.From), toVector3(line.To), toColor(line.Color, 1.0))
	return nil
}

func (b *Backend) EndFrame() error {
	rl.EndMode3D()
	rl.DrawFPS(10, 10)
	rl.EndDrawing()
	return nil
}

// shade modulates the base color with a clamped lambert term plus a floor of
// ambient so back faces stay visible.
func (b *Backend) shade(normal, color mgl32.Vec3) rl.Color {
	lambert := -normal.Dot(b.lightDir)
	if lambert < 0 {
		lambert = 0
	}
	intensity := 0.35 + 0.65*lambert
	return toColor(color.Mul(intensity), 1.0)
}

func scaled(v, scale mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X() * scale.X(), v.Y() * scale.Y(), v.Z() * scale.Z()}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

func toColor(c mgl32.Vec3, alpha float32) rl.Color {
	clamp := func(f float32) uint8 {
		if f < 0 {
			return 0
		}
		if f > 1 {
			return 255
		}
		return uint8(f * 255)
	}
	return rl.NewColor(clamp(c.X()), clamp(c.Y()), clamp(c.Z()), clamp(alpha))
}
