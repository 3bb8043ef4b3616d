package core

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type V2 = rl.Vector2

// Person is the input snapshot handed to the canvas by the surrounding app.
// Fields beyond these are ignored.
type Person struct {
	ID          string
	Name        string
	Role        string
	Connections []string
}

// Node is one person placed on the canvas. Nodes are rebuilt wholesale on
// every snapshot change; they are never patched incrementally.
type Node struct {
	ID       string
	Name     string
	Role     string
	Initials string

	Pos    V2  // base layout position, canvas space
	Index  int // layout index after degree sort; drives motion phase
	Degree int // count of valid neighbors
}

// Edge is an unordered pair of node ids, stored with A < B so the pair is
// canonical regardless of which endpoint listed it.
type Edge struct {
	A, B string
}

// Graph is the normalized relationship graph: peer nodes plus an implicit
// "Me" anchor that every node connects to.
type Graph struct {
	Nodes  []*Node
	ByID   map[string]*Node
	Edges  []Edge // deduplicated peer-to-peer edges
	Anchor V2     // fixed canvas-space anchor position
}

var roleCaser = cases.Title(language.English)

// BuildGraph normalizes a people snapshot. Connections naming an id that is
// not in the snapshot are skipped: a dangling reference is expected data
// quality, not an error. People without an id are dropped entirely.
func BuildGraph(people []Person, anchor V2) *Graph {
	g := &Graph{
		ByID:   make(map[string]*Node, len(people)),
		Anchor: anchor,
	}

	for _, p := range people {
		if p.ID == "" {
			continue
		}
		if _, dup := g.ByID[p.ID]; dup {
			continue
		}
		n := &Node{
			ID:       p.ID,
			Name:     p.Name,
			Role:     roleCaser.String(p.Role),
			Initials: initials(p.Name),
		}
		g.Nodes = append(g.Nodes, n)
		g.ByID[p.ID] = n
	}

	seen := make(map[Edge]bool)
	for _, p := range people {
		from, ok := g.ByID[p.ID]
		if !ok {
			continue
		}
		for _, nbr := range p.Connections {
			to, ok := g.ByID[nbr]
			if !ok || to == from {
				continue
			}
			e := Edge{A: p.ID, B: nbr}
			if e.B < e.A {
				e.A, e.B = e.B, e.A
			}
			if seen[e] {
				continue
			}
			seen[e] = true
			g.Edges = append(g.Edges, e)
			from.Degree++
			to.Degree++
		}
	}

	return g
}

// initials returns up to two leading letters of the name's words.
func initials(name string) string {
	var b strings.Builder
	count := 0
	for _, word := range strings.Fields(name) {
		b.WriteRune([]rune(word)[0])
		count++
		if count >= 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}
