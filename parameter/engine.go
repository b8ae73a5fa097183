package parameter

import "time"

// Game Loop & Governor Timing
const (
	// FrameUpdateInterval is the host frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// BaseStepMs is the simulation step at speed 1 and degradation level 0
	BaseStepMs = 1000.0 / 60.0

	// BaseMaxSteps is the catch-up ceiling per frame before speed and degradation scaling
	BaseMaxSteps = 5

	// MinMaxSteps is the floor of the per-frame step ceiling
	MinMaxSteps = 2

	// MaxFrameDelta clamps a single frame's elapsed time (e.g. after the process was suspended)
	MaxFrameDelta = 200 * time.Millisecond

	// MinSpeedMultiplier bounds the step divisor
	MinSpeedMultiplier = 0.1

	// MaxSpeedMultiplier and SpeedStep bound interactive speed changes
	MaxSpeedMultiplier = 8.0
	SpeedStep          = 2.0
)

// Overload / Recovery Hysteresis
const (
	// OverloadThreshold is the consecutive ceiling-hit frames before degrading one level
	OverloadThreshold = 3

	// RecoveryThreshold is the consecutive normal frames before recovering one level
	RecoveryThreshold = 5

	// MaxDegradation is the highest degradation level
	MaxDegradation = 2

	// WarningCooldown gates repeated overload warnings
	WarningCooldown = 5 * time.Second
)

// DegradationProfile scales step count and step size at one degradation level
type DegradationProfile struct {
	MaxStepsMultiplier float64
	StepMultiplier     float64
}

// DegradationTable is indexed by degradation level, higher levels run fewer, larger steps
var DegradationTable = [MaxDegradation + 1]DegradationProfile{
	{MaxStepsMultiplier: 1, StepMultiplier: 1},
	{MaxStepsMultiplier: 0.75, StepMultiplier: 1.2},
	{MaxStepsMultiplier: 0.5, StepMultiplier: 1.5},
}

// Spatial Index
const (
	// RTreeMinChildren and RTreeMaxChildren are the R-tree node fan-out bounds
	RTreeMinChildren = 25
	RTreeMaxChildren = 50
)
