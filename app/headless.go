package app

import (
	"encoding/json"

	"github.com/KennyACSAI/pearlmap/app/core"
	"github.com/KennyACSAI/pearlmap/util"
)

type layoutDump struct {
	Anchor      core.V2          `json:"anchor"`
	Nodes       []layoutDumpNode `json:"nodes"`
	PeerEdges   []layoutDumpEdge `json:"peerEdges"`
	AnchorEdges int              `json:"anchorEdges"`
}

type layoutDumpNode struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Degree int     `json:"degree"`
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
}

type layoutDumpEdge struct {
	A string `json:"a"`
	B string `json:"b"`
}

// HeadlessLayout computes the layout without opening a window and returns it
// as JSON, for debugging and scripting.
func HeadlessLayout(cfg core.Config, people []core.Person) ([]byte, error) {
	g := core.BuildGraph(people, core.V2{})
	core.Layout(g, cfg.Layout)

	dump := layoutDump{
		Anchor: g.Anchor,
		Nodes: util.Map(g.Nodes, func(n *core.Node) layoutDumpNode {
			return layoutDumpNode{ID: n.ID, Name: n.Name, Degree: n.Degree, X: n.Pos.X, Y: n.Pos.Y}
		}),
		PeerEdges: util.Map(g.Edges, func(e core.Edge) layoutDumpEdge {
			return layoutDumpEdge{A: e.A, B: e.B}
		}),
		AnchorEdges: len(g.Nodes),
	}
	return json.MarshalIndent(dump, "", "  ")
}
