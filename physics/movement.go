package physics

import "github.com/lixenwraith/horde/vmath"

// Rotate turns v by the angle given as its cosine and sine, writing into out
func Rotate(out *vmath.Vec2, v vmath.Vec2, cos, sin float64) {
	x, y := v.X, v.Y
	out.X = x*cos - y*sin
	out.Y = x*sin + y*cos
}
