package core

import (
	"math"
)

// goldenAngle desynchronizes per-node oscillation phases.
const goldenAngle = 2.399963229728653

// Motion is the dynamic state of one node: a perpetual floating oscillation
// plus a drag offset with spring-back physics. The final render position is
// base layout position + Offset(), then the viewport transform.
type Motion struct {
	cfg MotionConfig

	// Oscillation parameters, fixed at creation from the layout index.
	ampX, ampY     float32
	periodX        float32
	periodY        float32
	phaseX, phaseY float64
	delay          float32

	clock float32 // seconds since this motion record was created

	// Drag state. While dragging the offset tracks the finger; after release
	// it springs back toward zero, so a drag never relocates a node.
	Dragging   bool
	DragOffset V2
	dragStart  V2
	settling   bool
	vel        V2
}

// newMotion derives the oscillation parameters for a node at the given
// layout index. Everything is deterministic in the index so a relayout with
// the same ordering reproduces the same ambient motion.
func newMotion(cfg MotionConfig, index int) *Motion {
	m := &Motion{cfg: cfg}

	// Spread amplitudes and periods over a band so neighbors don't pulse in
	// unison. frac(i * φ) is a cheap low-discrepancy sequence.
	fi := float64(index)
	m.ampX = cfg.FloatAmplitude * float32(0.7+0.3*frac(fi*0.6180339887))
	m.ampY = cfg.FloatAmplitude * float32(0.7+0.3*frac(fi*0.3819660113))
	m.periodX = cfg.FloatPeriod * float32(0.85+0.3*frac(fi*0.7548776662))
	m.periodY = cfg.FloatPeriod * float32(0.85+0.3*frac(fi*0.5698402910))
	m.phaseX = fi * goldenAngle
	m.phaseY = fi*goldenAngle + math.Pi/3
	m.delay = cfg.FloatStagger * float32(index)

	return m
}

func frac(f float64) float64 {
	return f - math.Floor(f)
}

// Oscillation returns the ambient floating offset at the current clock. The
// motion starts after the per-node stagger delay and eases in so nodes don't
// pop, then runs forever.
func (m *Motion) Oscillation() V2 {
	t := m.clock - m.delay
	if t <= 0 {
		return V2{}
	}
	ease := float32(1.0)
	if t < 0.6 {
		ease = t / 0.6
	}
	x := float64(m.ampX*ease) * math.Sin(2*math.Pi*float64(t)/float64(m.periodX)+m.phaseX)
	y := float64(m.ampY*ease) * math.Sin(2*math.Pi*float64(t)/float64(m.periodY)+m.phaseY)
	return V2{X: float32(x), Y: float32(y)}
}

// Offset composes the oscillation and drag offsets.
func (m *Motion) Offset() V2 {
	osc := m.Oscillation()
	return V2{X: osc.X + m.DragOffset.X, Y: osc.Y + m.DragOffset.Y}
}

// DragBegin claims the node for a drag gesture, cancelling any in-flight
// settle so the finger takes over from wherever the node currently is.
func (m *Motion) DragBegin() {
	m.Dragging = true
	m.settling = false
	m.vel = V2{}
	m.dragStart = m.DragOffset
}

// DragUpdate tracks the finger. delta is the accumulated screen-space
// movement since the gesture started; dividing by the current scale keeps
// the node under the finger at any zoom level.
func (m *Motion) DragUpdate(delta V2, scale float32) {
	if !m.Dragging {
		return
	}
	m.DragOffset = V2{
		X: m.dragStart.X + delta.X/scale,
		Y: m.dragStart.Y + delta.Y/scale,
	}
}

// DragEnd releases the node with the finger's canvas-space velocity. The
// offset then decays back to zero through a critically damped spring, so the
// momentum carries the node briefly before it returns home.
func (m *Motion) DragEnd(velocity V2) {
	m.Dragging = false
	m.settling = true
	m.vel = velocity
}

// Settling reports whether the node is still springing back after a drag.
func (m *Motion) Settling() bool { return m.settling }

// Step advances the clock and the settle spring by dt seconds.
func (m *Motion) Step(dt float32) {
	m.clock += dt

	if !m.settling {
		return
	}
	omega := m.cfg.SettleOmega
	m.vel.X = springStep(&m.DragOffset.X, 0, m.vel.X, omega, dt)
	m.vel.Y = springStep(&m.DragOffset.Y, 0, m.vel.Y, omega, dt)

	eps := m.cfg.SettleEpsilon
	if abs32(m.DragOffset.X) < eps && abs32(m.DragOffset.Y) < eps &&
		abs32(m.vel.X) < eps && abs32(m.vel.Y) < eps {
		m.DragOffset = V2{}
		m.vel = V2{}
		m.settling = false
	}
}

// MotionSet owns one Motion per node id. The set is rebuilt whenever the
// people snapshot changes: layout indices may then refer to different people,
// so every record is discarded and recreated rather than patched.
type MotionSet struct {
	cfg  MotionConfig
	byID map[string]*Motion
}

func NewMotionSet(cfg MotionConfig) *MotionSet {
	return &MotionSet{cfg: cfg, byID: make(map[string]*Motion)}
}

// Rebuild replaces every motion record. Any in-flight drags or settles die
// with the old records.
func (ms *MotionSet) Rebuild(nodes []*Node) {
	ms.byID = make(map[string]*Motion, len(nodes))
	for _, n := range nodes {
		ms.byID[n.ID] = newMotion(ms.cfg, n.Index)
	}
}

// Get returns the motion record for a node id, or nil for unknown ids (the
// anchor, for one, has no motion state).
func (ms *MotionSet) Get(id string) *Motion {
	return ms.byID[id]
}

// Step advances every record. Records are independent: one node's drag or
// settle never touches another's state.
func (ms *MotionSet) Step(dt float32) {
	for _, m := range ms.byID {
		m.Step(dt)
	}
}
