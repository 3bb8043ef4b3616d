package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = float32(1.0 / 60)

func TestMotion_OscillationBounded(t *testing.T) {
	cfg := DefaultConfig().Motion
	m := newMotion(cfg, 3)

	for i := 0; i < 60*20; i++ {
		m.Step(frame)
		off := m.Oscillation()
		assert.LessOrEqual(t, abs32(off.X), cfg.FloatAmplitude)
		assert.LessOrEqual(t, abs32(off.Y), cfg.FloatAmplitude)
	}
}

func TestMotion_OscillationWaitsForStagger(t *testing.T) {
	cfg := DefaultConfig().Motion
	m := newMotion(cfg, 5)

	// Before the staggered delay the node sits still.
	m.Step(cfg.FloatStagger * 5 * 0.9)
	assert.Equal(t, V2{}, m.Oscillation())

	m.Step(cfg.FloatStagger * 5)
	osc := m.Oscillation()
	assert.True(t, osc.X != 0 || osc.Y != 0, "oscillation should have started")
}

func TestMotion_OscillationNeverStops(t *testing.T) {
	m := newMotion(DefaultConfig().Motion, 0)
	for i := 0; i < 60*60; i++ { // a simulated minute
		m.Step(frame)
	}
	moving := false
	prev := m.Oscillation()
	for i := 0; i < 60; i++ {
		m.Step(frame)
		if m.Oscillation() != prev {
			moving = true
			break
		}
	}
	assert.True(t, moving, "ambient motion must be perpetual")
}

func TestMotion_IndexDesynchronizesNodes(t *testing.T) {
	cfg := DefaultConfig().Motion
	a := newMotion(cfg, 0)
	b := newMotion(cfg, 1)

	// Drive both past their stagger, then compare trajectories.
	for i := 0; i < 60*5; i++ {
		a.Step(frame)
		b.Step(frame)
	}
	assert.NotEqual(t, a.Oscillation(), b.Oscillation())
}

func TestMotion_DragDividesByScale(t *testing.T) {
	m := newMotion(DefaultConfig().Motion, 0)
	m.DragBegin()

	m.DragUpdate(V2{X: 100, Y: 50}, 2.0)
	assert.Equal(t, V2{X: 50, Y: 25}, m.DragOffset)

	m.DragUpdate(V2{X: 100, Y: 50}, 0.5)
	assert.Equal(t, V2{X: 200, Y: 100}, m.DragOffset)
}

func TestMotion_DragAccumulatesFromSnapshot(t *testing.T) {
	m := newMotion(DefaultConfig().Motion, 0)
	m.DragBegin()
	m.DragUpdate(V2{X: 60, Y: 0}, 1.0)
	m.DragEnd(V2{})

	// A new drag picks up from wherever the settle has gotten to.
	m.Step(frame)
	midSettle := m.DragOffset
	m.DragBegin()
	assert.False(t, m.Settling(), "drag start must cancel the settle")
	m.DragUpdate(V2{X: 10, Y: 0}, 1.0)
	assert.InDelta(t, midSettle.X+10, m.DragOffset.X, 0.001)
}

func TestMotion_MomentumSettlesToZero(t *testing.T) {
	cfg := DefaultConfig().Motion
	m := newMotion(cfg, 0)
	m.DragBegin()
	m.DragUpdate(V2{X: 120, Y: -80}, 1.0)
	m.DragEnd(V2{X: 300, Y: 150}) // released with momentum

	require.True(t, m.Settling())
	for i := 0; i < 60*10 && m.Settling(); i++ {
		m.Step(frame)
	}

	assert.False(t, m.Settling(), "settle must finish in bounded time")
	assert.Equal(t, V2{}, m.DragOffset, "nodes spring back, they never relocate")

	// Oscillation ran through the whole settle untouched.
	osc := m.Oscillation()
	assert.True(t, osc.X != 0 || osc.Y != 0)
}

func TestMotionSet_RebuildReplacesAllRecords(t *testing.T) {
	cfg := DefaultConfig()
	ms := NewMotionSet(cfg.Motion)

	g := BuildGraph(SamplePeople(), V2{})
	Layout(g, cfg.Layout)
	ms.Rebuild(g.Nodes)
	require.NotNil(t, ms.Get("1"))

	old := ms.Get("1")
	old.DragBegin()

	ms.Rebuild(g.Nodes)
	fresh := ms.Get("1")
	assert.NotSame(t, old, fresh, "relayout must restart per-node animations")
	assert.False(t, fresh.Dragging)
}

func TestMotionSet_UnknownIDHasNoMotion(t *testing.T) {
	ms := NewMotionSet(DefaultConfig().Motion)
	assert.Nil(t, ms.Get("anchor"))
}
