package core

import "github.com/lixenwraith/horde/vmath"

// EntityID identifies agents, projectiles and structures, 0 is never assigned
type EntityID uint64

// Projectile is a read-only snapshot of a moving threat
type Projectile struct {
	ID  EntityID
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// Neighbor is a read-only snapshot of another agent taken before the tick
type Neighbor struct {
	ID   EntityID
	Kind string
	Pos  vmath.Vec2
	Vel  vmath.Vec2
}

// Structure is a read-only snapshot of a targetable building
// Damage or Cooldown <= 0 means the value is unknown and defaults apply
type Structure struct {
	ID       EntityID
	Pos      vmath.Vec2
	Health   float64
	Damage   float64
	Cooldown float64
}

// RangeQuery is the spatial collaborator consumed by steering
// Each method appends entities whose bounds intersect the query circle's bounding box to dst
// Results may be a superset of the exact radius, callers re-check distance
type RangeQuery interface {
	Projectiles(center vmath.Vec2, radius float64, dst []Projectile) []Projectile
	Agents(center vmath.Vec2, radius float64, dst []Neighbor) []Neighbor
	Structures(center vmath.Vec2, radius float64, dst []Structure) []Structure
}
