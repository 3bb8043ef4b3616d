package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScene_ComposedPosTracksMotion(t *testing.T) {
	s := NewScene(DefaultConfig(), 1280, 800)
	s.SetPeople(SamplePeople())
	n := s.Graph.ByID["1"]

	assert.Equal(t, n.Pos, s.ComposedPos(n), "no offset before any time passes")

	m := s.Motions.Get("1")
	m.DragBegin()
	m.DragUpdate(V2{X: 25, Y: -10}, 1.0)

	got := s.ComposedPos(n)
	assert.InDelta(t, n.Pos.X+25, got.X, 0.001)
	assert.InDelta(t, n.Pos.Y-10, got.Y, 0.001)
}

func TestScene_PressDipsAndTapPulses(t *testing.T) {
	s := NewScene(DefaultConfig(), 1280, 800)
	s.SetPeople(SamplePeople())
	n := s.Graph.ByID["2"]

	assert.Equal(t, float32(1.0), s.RenderScale(n))

	s.setPressed("2")
	assert.Less(t, s.RenderScale(n), float32(1.0))
	s.setPressed("")

	s.selectNode(n)
	s.Step(frame * 7) // roughly mid-pulse
	assert.Greater(t, s.RenderScale(n), float32(1.0))

	// The pulse expires on its own.
	for i := 0; i < 60; i++ {
		s.Step(frame)
	}
	assert.Equal(t, float32(1.0), s.RenderScale(n))
}

func TestScene_SelectNodeFiresCallback(t *testing.T) {
	s := NewScene(DefaultConfig(), 1280, 800)
	s.SetPeople(SamplePeople())

	var got string
	s.OnPersonSelected = func(id string) { got = id }
	s.selectNode(s.Graph.ByID["4"])
	assert.Equal(t, "4", got)

	// No callback wired is fine too.
	s.OnPersonSelected = nil
	s.selectNode(s.Graph.ByID["4"])
}

func TestScene_StepAdvancesEverything(t *testing.T) {
	s := NewScene(DefaultConfig(), 1280, 800)
	s.SetPeople(SamplePeople())
	s.View.ZoomIn()

	zoomBefore := s.View.Zoom
	for i := 0; i < 60; i++ {
		s.Step(frame)
	}

	assert.NotEqual(t, zoomBefore, s.View.Zoom, "camera springs advance with scene time")

	n := s.Graph.Nodes[0]
	require.NotNil(t, s.Motions.Get(n.ID))
	assert.NotEqual(t, n.Pos, s.ComposedPos(n), "oscillation advances with scene time")
}
