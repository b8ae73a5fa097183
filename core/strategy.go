package core

// Motion is an injected movement strategy replacing per-kind move overrides
// Apply runs after the base velocity and steering are combined and before the position update
type Motion interface {
	Apply(a *Agent)
}

// Outcome is a collision response result applied by the world after the tick
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeHalt
	OutcomeRemove
)

// Impact describes an arrival at a destination
type Impact struct {
	TargetID EntityID
	Damage   float64
	Outcome  Outcome
}

// Collision is an injected collision-response strategy replacing per-kind clash overrides
type Collision interface {
	Respond(a *Agent) Impact
}
