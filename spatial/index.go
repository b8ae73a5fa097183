// Package spatial answers "entities of kind K within radius r of p" over a per-tick snapshot
package spatial

import (
	"github.com/dhconnelly/rtreego"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// pointTolerance is the edge length of the box standing in for a point entity
const pointTolerance = 0.01

// entry is an R-tree leaf pointing back into a snapshot slice
type entry struct {
	rect rtreego.Rect
	idx  int
}

func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// layer is one entity kind: its snapshot, leaves and tree
type layer struct {
	entries  []entry
	spatials []rtreego.Spatial
	tree     *rtreego.Rtree
}

func (l *layer) rebuild(n int, pos func(i int) vmath.Vec2) {
	if cap(l.entries) < n {
		l.entries = make([]entry, n)
		l.spatials = make([]rtreego.Spatial, n)
	}
	l.entries = l.entries[:n]
	l.spatials = l.spatials[:n]

	for i := 0; i < n; i++ {
		l.entries[i] = entry{rect: pointRect(pos(i)), idx: i}
		l.spatials[i] = &l.entries[i]
	}
	// Bulk load, cheaper than n inserts for a full rebuild
	l.tree = rtreego.NewTree(2, parameter.RTreeMinChildren, parameter.RTreeMaxChildren, l.spatials...)
}

// search visits every leaf whose box intersects the query square
func (l *layer) search(center vmath.Vec2, radius float64, visit func(idx int)) {
	if l.tree == nil || l.tree.Size() == 0 || radius <= 0 {
		return
	}
	bb, err := rtreego.NewRect(rtreego.Point{center.X - radius, center.Y - radius}, []float64{2 * radius, 2 * radius})
	if err != nil {
		return
	}
	l.tree.SearchIntersect(bb, func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
		visit(obj.(*entry).idx)
		return true, false
	})
}

func pointRect(p vmath.Vec2) rtreego.Rect {
	half := pointTolerance / 2
	r, _ := rtreego.NewRect(rtreego.Point{p.X - half, p.Y - half}, []float64{pointTolerance, pointTolerance})
	return r
}

// Index holds copies of the entity state taken before a tick
// Queries return bounding-box candidates, a superset of the exact radius
// Not safe for concurrent Rebuild, concurrent queries between rebuilds are fine
type Index struct {
	projectiles []core.Projectile
	agents      []core.Neighbor
	structures  []core.Structure

	projectileLayer layer
	agentLayer      layer
	structureLayer  layer
}

func NewIndex() *Index {
	return &Index{}
}

// Rebuild snapshots the given entities and reindexes them, input slices are not retained
func (x *Index) Rebuild(projectiles []core.Projectile, agents []core.Neighbor, structures []core.Structure) {
	x.projectiles = append(x.projectiles[:0], projectiles...)
	x.agents = append(x.agents[:0], agents...)
	x.structures = append(x.structures[:0], structures...)

	x.projectileLayer.rebuild(len(x.projectiles), func(i int) vmath.Vec2 { return x.projectiles[i].Pos })
	x.agentLayer.rebuild(len(x.agents), func(i int) vmath.Vec2 { return x.agents[i].Pos })
	x.structureLayer.rebuild(len(x.structures), func(i int) vmath.Vec2 { return x.structures[i].Pos })
}

func (x *Index) Projectiles(center vmath.Vec2, radius float64, dst []core.Projectile) []core.Projectile {
	x.projectileLayer.search(center, radius, func(i int) { dst = append(dst, x.projectiles[i]) })
	return dst
}

func (x *Index) Agents(center vmath.Vec2, radius float64, dst []core.Neighbor) []core.Neighbor {
	x.agentLayer.search(center, radius, func(i int) { dst = append(dst, x.agents[i]) })
	return dst
}

func (x *Index) Structures(center vmath.Vec2, radius float64, dst []core.Structure) []core.Structure {
	x.structureLayer.search(center, radius, func(i int) { dst = append(dst, x.structures[i]) })
	return dst
}

// NearestAgent returns the snapshot of the agent closest to p within maxDist
func (x *Index) NearestAgent(p vmath.Vec2, maxDist float64) (core.Neighbor, bool) {
	t := x.agentLayer.tree
	if t == nil || t.Size() == 0 {
		return core.Neighbor{}, false
	}
	obj := t.NearestNeighbor(rtreego.Point{p.X, p.Y})
	if obj == nil {
		return core.Neighbor{}, false
	}
	n := x.agents[obj.(*entry).idx]
	if vmath.DistSq(n.Pos, p) >= maxDist*maxDist {
		return core.Neighbor{}, false
	}
	return n, true
}
