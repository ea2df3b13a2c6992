package math

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Isometry is a rigid transformation (rotation followed by translation),
// the coordinate-frame offset used throughout the shape tree and for body
// poses. Unlike a full affine matrix it cannot shear or scale, so composing
// any number of them stays rigid.
type Isometry struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

func NewIsometry(translation mgl32.Vec3, rotation mgl32.Quat) Isometry {
	return Isometry{
		Translation: translation,
		Rotation:    rotation.Normalize(),
	}
}

func IsometryIdentity() Isometry {
	return Isometry{
		Translation: mgl32.Vec3{},
		Rotation:    mgl32.QuatIdent(),
	}
}

func IsometryFromTranslation(translation mgl32.Vec3) Isometry {
	return Isometry{
		Translation: translation,
		Rotation:    mgl32.QuatIdent(),
	}
}

// Mul composes two isometries: (i.Mul(other)) maps a point first through
// other, then through i.
func (i Isometry) Mul(other Isometry) Isometry {
	return Isometry{
		Translation: i.Translation.Add(i.Rotation.Rotate(other.Translation)),
		Rotation:    i.Rotation.Mul(other.Rotation).Normalize(),
	}
}

// TransformPoint maps a point from the local frame to the parent frame.
func (i Isometry) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return i.Rotation.Rotate(p).Add(i.Translation)
}

// TransformVector rotates a direction without translating it.
func (i Isometry) TransformVector(v mgl32.Vec3) mgl32.Vec3 {
	return i.Rotation.Rotate(v)
}

// Inverse returns the isometry mapping the parent frame back to the local one.
func (i Isometry) Inverse() Isometry {
	inv := i.Rotation.Inverse()
	return Isometry{
		Translation: inv.Rotate(i.Translation.Mul(-1)),
		Rotation:    inv,
	}
}

// BasisX/Y/Z return the rotated unit axes, i.e. the columns of the rotation
// matrix. Used for the debug axes overlay.
func (i Isometry) BasisX() mgl32.Vec3 { return i.Rotation.Rotate(mgl32.Vec3{1, 0, 0}) }
func (i Isometry) BasisY() mgl32.Vec3 { return i.Rotation.Rotate(mgl32.Vec3{0, 1, 0}) }
func (i Isometry) BasisZ() mgl32.Vec3 { return i.Rotation.Rotate(mgl32.Vec3{0, 0, 1}) }

// Mat4 expands the isometry to a homogeneous matrix for the renderer.
func (i Isometry) Mat4() mgl32.Mat4 {
	return mgl32.Translate3D(i.Translation.X(), i.Translation.Y(), i.Translation.Z()).
		Mul4(i.Rotation.Mat4())
}

// Compare reports whether two isometries are equal within the tolerance,
// component-wise on translation and rotation.
func (i Isometry) Compare(other Isometry, tolerance float32) bool {
	if !i.Translation.ApproxEqualThreshold(other.Translation, tolerance) {
		return false
	}
	a := i.Rotation.Normalize()
	b := other.Rotation.Normalize()
	// q and -q encode the same rotation.
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return a.V.ApproxEqualThreshold(b.V, tolerance) && Abs(a.W-b.W) <= tolerance
}
