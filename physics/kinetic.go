package physics

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/vmath"
)

// Integrate performs one explicit Euler step with unit dt: p = p + v
func Integrate(k *core.Kinetic) {
	vmath.Add(&k.Pos, k.Pos, k.Vel)
}

// ReflectBounds keeps the position inside [min, max] on both axes, mirroring velocity on contact
// Returns true if any reflection occurred
func ReflectBounds(k *core.Kinetic, min, max vmath.Vec2) bool {
	reflected := false
	if k.Pos.X < min.X {
		k.Pos.X = min.X
		k.Vel.X = -k.Vel.X
		reflected = true
	} else if k.Pos.X > max.X {
		k.Pos.X = max.X
		k.Vel.X = -k.Vel.X
		reflected = true
	}
	if k.Pos.Y < min.Y {
		k.Pos.Y = min.Y
		k.Vel.Y = -k.Vel.Y
		reflected = true
	} else if k.Pos.Y > max.Y {
		k.Pos.Y = max.Y
		k.Vel.Y = -k.Vel.Y
		reflected = true
	}
	return reflected
}
