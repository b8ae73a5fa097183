package vmath

import "math"

// Vec2 is a float64 2D vector
// Methods taking an out parameter write the result there and never allocate, out may alias an input
type Vec2 struct {
	X, Y float64
}

// V2 builds a vector from components
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Set overwrites both components
func (v *Vec2) Set(x, y float64) {
	v.X, v.Y = x, y
}

// Zero resets the vector to (0,0)
func (v *Vec2) Zero() {
	v.X, v.Y = 0, 0
}

// IsZero reports exact (0,0)
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Len returns the Euclidean length
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared length without sqrt
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dot returns a·b
func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// DistSq returns |a-b|²
func DistSq(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Dist returns |a-b|
func Dist(a, b Vec2) float64 {
	return math.Sqrt(DistSq(a, b))
}

// Add writes a+b into out
func Add(out *Vec2, a, b Vec2) {
	out.X = a.X + b.X
	out.Y = a.Y + b.Y
}

// Sub writes a-b into out
func Sub(out *Vec2, a, b Vec2) {
	out.X = a.X - b.X
	out.Y = a.Y - b.Y
}

// Scale writes v*s into out
func Scale(out *Vec2, v Vec2, s float64) {
	out.X = v.X * s
	out.Y = v.Y * s
}

// AddScaled accumulates v*s into out
func AddScaled(out *Vec2, v Vec2, s float64) {
	out.X += v.X * s
	out.Y += v.Y * s
}

// Normalize writes the unit vector of v into out and returns the original length
// Zero-safe: a vector shorter than eps yields (0,0) and length 0
func Normalize(out *Vec2, v Vec2, eps float64) float64 {
	l := v.Len()
	if l < eps || l == 0 {
		out.Zero()
		return 0
	}
	inv := 1 / l
	out.X = v.X * inv
	out.Y = v.Y * inv
	return l
}

// Perpendiculars writes both 90° rotations of v: ccw = (-y, x), cw = (y, -x)
func Perpendiculars(ccw, cw *Vec2, v Vec2) {
	x, y := v.X, v.Y
	ccw.X, ccw.Y = -y, x
	cw.X, cw.Y = y, -x
}

// ClampMagnitude rescales out to exactly maxMag when its length exceeds maxMag
// Returns true if clamped
func ClampMagnitude(out *Vec2, maxMag float64) bool {
	magSq := out.LenSq()
	if magSq <= maxMag*maxMag {
		return false
	}
	s := maxMag / math.Sqrt(magSq)
	out.X *= s
	out.Y *= s
	return true
}

// Reflect writes v mirrored around the unit normal n: v - 2(v·n)n
func Reflect(out *Vec2, v, n Vec2) {
	d2 := 2 * Dot(v, n)
	out.X = v.X - d2*n.X
	out.Y = v.Y - d2*n.Y
}
