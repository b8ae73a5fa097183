package parameter

// Arena towers and waves
const (
	// GateSpawnSpread is the jitter radius around the gate for spawned monsters
	GateSpawnSpread = 4.0

	// TowerMinCooldown is the shortest interval between two shots, in ticks
	TowerMinCooldown = 1
)
