package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/spaghettifunk/kinetic/engine/math"
)

// Object is a retained scene-graph entry: one geometry placed in the world
// with a color and a rigid transform. Objects are created and removed through
// a Window and exclusively owned by whoever created them until removal.
type Object struct {
	id        string
	geometry  *GeometryConfig
	transform math.Isometry
	scale     mgl32.Vec3
	baseColor mgl32.Vec3
	color     mgl32.Vec3
	visible   bool
}

func newObject(geometry *GeometryConfig) *Object {
	return &Object{
		id:        uuid.New().String(),
		geometry:  geometry,
		transform: math.IsometryIdentity(),
		scale:     mgl32.Vec3{1, 1, 1},
		baseColor: mgl32.Vec3{1, 1, 1},
		color:     mgl32.Vec3{1, 1, 1},
		visible:   true,
	}
}

// ID is the object's unique handle within its window.
func (o *Object) ID() string {
	return o.id
}

func (o *Object) Geometry() *GeometryConfig {
	return o.geometry
}

// Transform returns the object's current world placement.
func (o *Object) Transform() math.Isometry {
	return o.transform
}

// SetTransform places the object in the world. Called every frame for
// objects tracking a simulated body.
func (o *Object) SetTransform(transform math.Isometry) {
	o.transform = transform
}

func (o *Object) Scale() mgl32.Vec3 {
	return o.scale
}

func (o *Object) SetScale(scale mgl32.Vec3) {
	o.scale = scale
}

// Color returns the current display color.
func (o *Object) Color() mgl32.Vec3 {
	return o.color
}

// SetColor sets both the display color and the base color restored after a
// highlight ends.
func (o *Object) SetColor(color mgl32.Vec3) {
	o.baseColor = color
	o.color = color
}

// Highlight tints the object for visual emphasis without touching the base
// color.
func (o *Object) Highlight(color mgl32.Vec3) {
	o.color = color
}

// Unhighlight restores the base color.
func (o *Object) Unhighlight() {
	o.color = o.baseColor
}

func (o *Object) Visible() bool {
	return o.visible
}

func (o *Object) SetVisible(visible bool) {
	o.visible = visible
}
