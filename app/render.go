package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/KennyACSAI/pearlmap/app/core"
)

// renderScene draws the whole canvas in world space under the viewport
// transform: anchor edges first, then peer edges, then nodes on top.
func renderScene(s *core.Scene) {
	rl.BeginMode2D(s.View.Camera2D)

	lcfg := s.Cfg.Layout

	// Composed positions once per frame; rendering and hit-testing must see
	// the same coordinates.
	positions := make(map[string]core.V2, len(s.Graph.Nodes))
	for _, n := range s.Graph.Nodes {
		positions[n.ID] = s.ComposedPos(n)
	}

	// Anchor spokes: one solid line per node, always drawn.
	for _, n := range s.Graph.Nodes {
		rl.DrawLineEx(s.Graph.Anchor, positions[n.ID], 1.5, EdgeSolid)
	}

	// Peer edges: dashed, one per unique pair.
	for _, e := range s.Graph.Edges {
		drawDashedLine(positions[e.A], positions[e.B], 8, 6, 1.5, EdgeDash)
	}

	for _, n := range s.Graph.Nodes {
		drawNode(s, n, positions[n.ID], lcfg.NodeRadius)
	}

	drawAnchor(s.Graph.Anchor, lcfg.AnchorRadius)

	rl.EndMode2D()
}

func drawNode(s *core.Scene, n *core.Node, pos core.V2, radius float32) {
	r := radius * s.RenderScale(n)

	fill := NodeFill
	ring := NodeEdge
	labelColor := White
	if hit, filtering := s.Highlighted(n); filtering {
		if hit {
			ring = Pearl
			rl.DrawCircleV(pos, r+6, PearlDim)
		} else {
			fill = rl.Fade(NodeFill, 0.35)
			ring = rl.Fade(NodeEdge, 0.35)
			labelColor = rl.Fade(White, 0.35)
		}
	}

	rl.DrawCircleV(pos, r, fill)
	rl.DrawCircleLinesV(pos, r, ring)

	font := rl.GetFontDefault()
	drawCenteredText(font, n.Initials, pos, DefaultFontSize, labelColor)
	namePos := core.V2{X: pos.X, Y: pos.Y + r + 6}
	drawCenteredText(font, n.Name, core.V2{X: namePos.X, Y: namePos.Y + SmallFontSize/2}, SmallFontSize, labelColor)
	if n.Role != "" {
		rolePos := core.V2{X: namePos.X, Y: namePos.Y + SmallFontSize + 8}
		drawCenteredText(font, n.Role, rolePos, SmallFontSize, rl.Fade(Fog, 0.9))
	}
}

func drawAnchor(pos core.V2, radius float32) {
	rl.DrawCircleV(pos, radius, Pearl)
	rl.DrawCircleLinesV(pos, radius, White)
	drawCenteredText(rl.GetFontDefault(), "Me", pos, DefaultFontSize, Night)
}

func drawCenteredText(font rl.Font, text string, center core.V2, size float32, color rl.Color) {
	dims := rl.MeasureTextEx(font, text, size, 1)
	rl.DrawTextEx(font, text, core.V2{X: center.X - dims.X/2, Y: center.Y - dims.Y/2}, size, 1, color)
}

// drawDashedLine draws from a to b as dash/gap segments. Raylib has no
// dashed primitive.
func drawDashedLine(a, b core.V2, dash, gap, thick float32, color rl.Color) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length <= 0 {
		return
	}
	ux := dx / length
	uy := dy / length

	for at := float32(0); at < length; at += dash + gap {
		end := at + dash
		if end > length {
			end = length
		}
		rl.DrawLineEx(
			core.V2{X: a.X + ux*at, Y: a.Y + uy*at},
			core.V2{X: a.X + ux*end, Y: a.Y + uy*end},
			thick, color,
		)
	}
}
