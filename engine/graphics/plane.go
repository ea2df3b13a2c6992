package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/math"
	"github.com/spaghettifunk/kinetic/engine/physics"
	"github.com/spaghettifunk/kinetic/engine/scene"
)

const planeHalfSize float32 = 100.0

// Plane renders an infinite plane as a large quad. Unlike every other kind
// it ignores accumulated compound offsets: position and normal come from the
// body's world pose at creation, and planes never move afterwards, so Update
// is a no-op.
type Plane struct {
	nodeBase
}

func NewPlane(window *scene.Window, body *physics.RigidBody, position, normal mgl32.Vec3, color mgl32.Vec3) *Plane {
	obj := window.AddQuad(planeHalfSize)
	obj.SetColor(color)

	// The quad is generated with a +Y normal; rotate it onto the plane's.
	rotation := mgl32.QuatBetweenVectors(mgl32.Vec3{0, 1, 0}, normal)
	obj.SetTransform(math.NewIsometry(position, rotation))

	return &Plane{nodeBase{body: body, delta: math.IsometryIdentity(), obj: obj}}
}

// Update does nothing: planes are positioned once, from the body pose at
// creation.
func (p *Plane) Update() {}
