package parameter

// Freeze / Burn multiplier bounds
const (
	// MinFreezeMultiplier is the slowest a frozen agent may move relative to base speed
	MinFreezeMultiplier = 0.05

	// MaxBurnMultiplier is the fastest a burning agent may move relative to base speed
	MaxBurnMultiplier = 1.5
)

// Distance speed curve, radii as fractions of world extent
const (
	SpeedCurveInnerFraction = 0.15
	SpeedCurveOuterFraction = 0.6
	SpeedCurveMaxMultiplier = 2.0
)

// Arrival
const (
	// ArrivalEpsilon is the distance under which an agent is considered at its destination
	ArrivalEpsilon = 1e-6

	// DefaultArrivalRadius triggers collision response at the destination
	DefaultArrivalRadius = 4.0
)

// Motion strategies
const (
	OscillateAmplitude = 0.6
	OscillatePeriod    = 90.0 // ticks

	WanderStrength  = 0.35
	WanderFrequency = 0.02 // noise units per tick

	ChargeMaxBoost = 1.5
	ChargeDecay    = 0.9
)

// Collision responses
const (
	ExplodeDamage  = 25.0
	BouncePushBack = 6.0
)
