package physics

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// Collision strategies run when an agent arrives at its destination
// They may change the agent's own kinematics, the world applies the returned outcome after the tick

// Explode removes the agent and damages whatever it was heading for
type Explode struct {
	Damage float64
}

func (e Explode) Respond(a *core.Agent) core.Impact {
	dmg := e.Damage
	if dmg <= 0 {
		dmg = parameter.ExplodeDamage
	}
	return core.Impact{TargetID: a.TargetID, Damage: dmg, Outcome: core.OutcomeRemove}
}

// Bounce strikes the target and recoils, the agent keeps fighting
type Bounce struct {
	Damage   float64
	PushBack float64
}

func (b Bounce) Respond(a *core.Agent) core.Impact {
	push := b.PushBack
	if push <= 0 {
		push = parameter.BouncePushBack
	}

	var n vmath.Vec2
	vmath.Sub(&n, a.Pos, a.Destination)
	if vmath.Normalize(&n, n, vmath.Epsilon) == 0 {
		// Dead center, recoil against the incoming velocity
		if vmath.Normalize(&n, a.Vel, vmath.Epsilon) == 0 {
			n.Set(1, 0)
		} else {
			vmath.Scale(&n, n, -1)
		}
	}

	if vmath.Dot(a.Vel, n) < 0 {
		Reflect(&a.Kinetic, n)
	}
	vmath.AddScaled(&a.Pos, n, push)
	return core.Impact{TargetID: a.TargetID, Damage: b.Damage, Outcome: core.OutcomeContinue}
}

// Halt parks the agent at its destination
type Halt struct{}

func (Halt) Respond(a *core.Agent) core.Impact {
	a.Vel.Zero()
	a.Accel.Zero()
	return core.Impact{TargetID: a.TargetID, Outcome: core.OutcomeHalt}
}

// Reflect mirrors velocity around the unit normal n
func Reflect(k *core.Kinetic, n vmath.Vec2) {
	vmath.Reflect(&k.Vel, k.Vel, n)
}
