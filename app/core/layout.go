package core

import (
	"math"
	"sort"
)

// Layout places every node on a concentric ring around the anchor. It is a
// pure function of the node set: better-connected people sort toward the
// inner rings, ties keep their snapshot order, and each ring spreads its
// members evenly over the full circle starting at the top.
//
// Running it twice on the same graph yields identical positions; only the
// ambient motion (motion.go) varies over time.
func Layout(g *Graph, cfg LayoutConfig) {
	if len(g.Nodes) == 0 {
		return
	}

	ordered := make([]*Node, len(g.Nodes))
	copy(ordered, g.Nodes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Degree > ordered[j].Degree
	})

	rings := partitionRings(len(ordered), cfg.RingCapacities)

	idx := 0
	for ring, count := range rings {
		if count == 0 {
			continue
		}
		radius := float64(cfg.RingRadii[ring])
		startAngle := -math.Pi/2 + float64(cfg.RingAngleOffset)*float64(ring)
		step := 2 * math.Pi / float64(count)

		for i := 0; i < count; i++ {
			angle := startAngle + step*float64(i)
			n := ordered[idx]
			n.Index = idx
			n.Pos = V2{
				X: g.Anchor.X + float32(math.Cos(angle)*radius),
				Y: g.Anchor.Y + float32(math.Sin(angle)*radius),
			}
			idx++
		}
	}
}

// partitionRings splits n nodes over the rings: each capped ring takes up to
// its capacity in order, and the final ring absorbs whatever remains.
func partitionRings(n int, capacities []int) []int {
	counts := make([]int, len(capacities)+1)
	remaining := n
	for i, capacity := range capacities {
		take := remaining
		if take > capacity {
			take = capacity
		}
		counts[i] = take
		remaining -= take
	}
	counts[len(capacities)] = remaining
	return counts
}
