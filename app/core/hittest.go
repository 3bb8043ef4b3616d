package core

import "math"

// NodeAt returns the topmost peer node whose hit circle contains the given
// canvas-space point, or nil. Hit circles are centered on the composed
// position (base + oscillation + drag), not the base layout position. The
// anchor is not tappable and is never returned.
func (s *Scene) NodeAt(canvasPt V2) *Node {
	r := s.Cfg.Gestures.HitRadius
	// Later nodes draw on top, so scan back to front.
	for i := len(s.Graph.Nodes) - 1; i >= 0; i-- {
		n := s.Graph.Nodes[i]
		pos := s.ComposedPos(n)
		if !validPos(pos) {
			continue
		}
		dx := canvasPt.X - pos.X
		dy := canvasPt.Y - pos.Y
		if dx*dx+dy*dy <= r*r {
			return n
		}
	}
	return nil
}

// validPos guards against positions that never got a layout pass. Such a
// node is neither rendered nor hit-testable.
func validPos(p V2) bool {
	return !math.IsNaN(float64(p.X)) && !math.IsNaN(float64(p.Y)) &&
		!math.IsInf(float64(p.X), 0) && !math.IsInf(float64(p.Y), 0)
}
