package parameter

// Bullet Dodge
const (
	// DodgeFalloffDistance is the distance at which a threat stops scaling up the dodge
	DodgeFalloffDistance = 150.0

	// DodgeMinDistanceFactor keeps far threats nudging the agent
	DodgeMinDistanceFactor = 0.2

	// DodgeMinProjectileSpeed below which a projectile has no usable heading
	DodgeMinProjectileSpeed = 0.001
)

// Target Selection
const (
	// DefaultStructureDamage substitutes a missing structure damage value
	DefaultStructureDamage = 10.0

	// DefaultStructureCooldown substitutes a missing structure cooldown value (ticks)
	DefaultStructureCooldown = 30.0

	// BalancedDistanceScale and BalancedHealthScale normalize the balanced score terms
	BalancedDistanceScale = 100.0
	BalancedHealthScale   = 1000.0
)

// Flocking defaults applied by the config layer when weights are omitted
const (
	DefaultSeparationWeight = 1.5
	DefaultAlignmentWeight  = 1.0
	DefaultCohesionWeight   = 1.0
)
