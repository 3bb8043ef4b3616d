package core

// Scene ties the graph, layout, per-node motion, and viewport together. The
// surrounding app feeds it a people snapshot and a selection callback; the
// scene owns everything else.
type Scene struct {
	Cfg     Config
	Graph   *Graph
	Motions *MotionSet
	View    *Viewport

	// OnPersonSelected fires at most once per completed tap on a peer node.
	// The anchor never fires it.
	OnPersonSelected func(personID string)

	// Highlight filter state (nil means no filter active).
	highlighted map[string]bool

	// Press pulse: the node visually dips while pressed and pops on tap.
	pressedID string
	pulseID   string
	pulseLeft float32
}

const pulseDuration = 0.25

func NewScene(cfg Config, screenW, screenH float32) *Scene {
	return &Scene{
		Cfg:     cfg,
		Graph:   BuildGraph(nil, V2{}),
		Motions: NewMotionSet(cfg.Motion),
		View:    NewViewport(cfg.Camera, screenW, screenH),
	}
}

// SetPeople replaces the snapshot: full graph rebuild, full relayout, and a
// full motion reset. Layout indices may now mean different people, so no
// motion state survives. The viewport is left alone.
func (s *Scene) SetPeople(people []Person) {
	s.Graph = BuildGraph(people, V2{})
	Layout(s.Graph, s.Cfg.Layout)
	s.Motions.Rebuild(s.Graph.Nodes)
	s.pressedID = ""
	s.pulseID = ""
	s.pulseLeft = 0
	s.ApplyQuery("") // stale highlights would point at the old snapshot
}

// ComposedPos is a node's render position in canvas space: base layout
// position plus oscillation plus drag offset. The viewport transform is
// applied on top of this by the renderer (and inverted by hit-testing).
func (s *Scene) ComposedPos(n *Node) V2 {
	m := s.Motions.Get(n.ID)
	if m == nil {
		return n.Pos
	}
	off := m.Offset()
	return V2{X: n.Pos.X + off.X, Y: n.Pos.Y + off.Y}
}

// Step advances all motion by dt seconds: node oscillation and settles, pan
// momentum, smooth camera approaches, and the press pulse. Everything is
// independent; nothing here blocks or cancels anything else.
func (s *Scene) Step(dt float32) {
	s.Motions.Step(dt)
	s.View.Step(dt)
	if s.pulseLeft > 0 {
		s.pulseLeft -= dt
		if s.pulseLeft <= 0 {
			s.pulseLeft = 0
			s.pulseID = ""
		}
	}
}

func (s *Scene) selectNode(n *Node) {
	s.pulseID = n.ID
	s.pulseLeft = pulseDuration
	if s.OnPersonSelected != nil {
		s.OnPersonSelected(n.ID)
	}
}

func (s *Scene) setPressed(id string) {
	s.pressedID = id
}

// RenderScale returns the visual scale factor for a node: a small dip while
// pressed, a brief pop right after a tap, 1.0 otherwise.
func (s *Scene) RenderScale(n *Node) float32 {
	if n.ID == s.pressedID {
		return 0.92
	}
	if n.ID == s.pulseID && s.pulseLeft > 0 {
		// 1.0 -> 1.12 -> 1.0 over the pulse window.
		p := 1 - s.pulseLeft/pulseDuration
		return 1 + 0.12*4*p*(1-p)
	}
	return 1
}

// Highlighted reports the filter state for a node: ok is false when no
// filter is active at all.
func (s *Scene) Highlighted(n *Node) (hit bool, ok bool) {
	if s.highlighted == nil {
		return false, false
	}
	return s.highlighted[n.ID], true
}
