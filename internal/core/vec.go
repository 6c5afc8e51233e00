package core

import "math"

// Vec is a 2D vector in world units (meters, y up).
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Len returns the Euclidean length.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// WithLen returns a vector along v with the given length.
// A zero vector stays zero.
func (v Vec) WithLen(l float64) Vec {
	n := v.Len()
	if n == 0 {
		return Vec{}
	}
	return v.Scale(l / n)
}

// ClampLen shortens v to at most max, keeping its direction.
func (v Vec) ClampLen(max float64) Vec {
	if v.Len() > max {
		return v.WithLen(max)
	}
	return v
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Lerp returns a + (b - a) * t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
