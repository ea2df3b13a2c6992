package scene

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the shared look-at contract both navigation strategies satisfy.
// Eye and At fully describe the view; how input mutates them is up to each
// implementation.
type Camera interface {
	// Eye returns the camera position.
	Eye() mgl32.Vec3
	// At returns the look-at target.
	At() mgl32.Vec3
	// LookAt sets position and target immediately.
	LookAt(eye, at mgl32.Vec3)
	// View returns the view matrix for the current eye/at state.
	View() mgl32.Mat4
}

// 89 degrees. Pitch is clamped here to avoid gimbal lock.
const pitchLimit float32 = 1.55334306

// sphericalFromDirection decomposes at-eye into yaw, pitch and distance.
func sphericalFromDirection(eye, at mgl32.Vec3) (yaw, pitch, distance float32) {
	dir := at.Sub(eye)
	distance = dir.Len()
	if distance == 0 {
		return 0, 0, 0
	}
	yaw = float32(stdmath.Atan2(float64(dir.Z()), float64(dir.X())))
	pitch = float32(stdmath.Asin(float64(dir.Y() / distance)))
	return yaw, pitch, distance
}

// directionFromSpherical is the inverse of sphericalFromDirection, returning
// a unit direction.
func directionFromSpherical(yaw, pitch float32) mgl32.Vec3 {
	cp := float32(stdmath.Cos(float64(pitch)))
	return mgl32.Vec3{
		cp * float32(stdmath.Cos(float64(yaw))),
		float32(stdmath.Sin(float64(pitch))),
		cp * float32(stdmath.Sin(float64(yaw))),
	}
}
