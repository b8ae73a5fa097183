package core

import "github.com/lixenwraith/horde/vmath"

// Kinetic is the per-agent motion state, units are world units per tick
type Kinetic struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Accel vmath.Vec2
}
