package core

// Due reports whether a behavior with the given interval runs on this tick
// Keyed on the agent's own LiveTime so cadence is independent of frame rate and step size
func Due(liveTime, interval uint64) bool {
	return interval <= 1 || liveTime%interval == 0
}
