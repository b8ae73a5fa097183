package core

import "github.com/lixenwraith/horde/vmath"

// SteeringCache persists the last computed steering outputs across ticks
// A behavior that is not due keeps contributing its previous value
type SteeringCache struct {
	Dodge vmath.Vec2
	Flock vmath.Vec2
	Total vmath.Vec2
}

// Agent is a simulated monster
// Only the integrator writes kinematics, only the world changes membership
type Agent struct {
	ID   EntityID
	Kind string

	Kinetic

	// LiveTime counts simulation ticks lived, never wall time
	LiveTime uint64

	Destination        vmath.Vec2
	DefaultDestination vmath.Vec2
	TargetID           EntityID

	BaseSpeed float64
	AccelRate float64

	// Health is owned by whoever deals damage, the integrator never reads it
	Health float64

	// Freeze scales speed: <1 frozen, >1 burning, 0 reads as neutral, clamped by the integrator
	Freeze float64

	Suspended bool

	Behaviors Behaviors
	Steering  SteeringCache

	// Motion perturbs the integrated velocity, nil moves straight
	Motion Motion
	// Collision decides what happens on arrival, nil halts
	Collision Collision
	// ArrivalRadius is the distance at which Collision fires
	ArrivalRadius float64
}
