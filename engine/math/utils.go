package math

import (
	stdmath "math"

	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

func Abs(f float32) float32 {
	return float32(stdmath.Abs(float64(f)))
}

func Sqrt(f float32) float32 {
	return float32(stdmath.Sqrt(float64(f)))
}

func Sin(f float32) float32 {
	return float32(stdmath.Sin(float64(f)))
}

func Cos(f float32) float32 {
	return float32(stdmath.Cos(float64(f)))
}

func DegToRad(degrees float32) float32 {
	return degrees * stdmath.Pi / 180.0
}

func RadToDeg(radians float32) float32 {
	return radians * 180.0 / stdmath.Pi
}
