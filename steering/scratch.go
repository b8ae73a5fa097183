package steering

import "github.com/lixenwraith/horde/core"

// Scratch holds reusable query buffers for one simulation worker
// Contents are overwritten by each query, never read across calls
type Scratch struct {
	Projectiles []core.Projectile
	Neighbors   []core.Neighbor
	Structures  []core.Structure
}

// NewScratch preallocates buffers sized for typical neighborhoods
func NewScratch(capacity int) *Scratch {
	return &Scratch{
		Projectiles: make([]core.Projectile, 0, capacity),
		Neighbors:   make([]core.Neighbor, 0, capacity),
		Structures:  make([]core.Structure, 0, capacity),
	}
}

// Reset truncates all buffers, keeping capacity
func (s *Scratch) Reset() {
	s.Projectiles = s.Projectiles[:0]
	s.Neighbors = s.Neighbors[:0]
	s.Structures = s.Structures[:0]
}
