package app

import rl "github.com/gen2brain/raylib-go/raylib"

// Palette. Dark canvas, light chrome, one accent.
var (
	Night     = rl.Color{R: 16, G: 18, B: 24, A: 255}
	Charcoal  = rl.Color{R: 32, G: 35, B: 44, A: 255}
	Gray      = rl.Color{R: 90, G: 95, B: 108, A: 255}
	Fog       = rl.Color{R: 170, G: 175, B: 188, A: 255}
	White     = rl.Color{R: 236, G: 238, B: 244, A: 255}
	Pearl     = rl.Color{R: 118, G: 160, B: 255, A: 255} // accent
	PearlDim  = rl.Color{R: 118, G: 160, B: 255, A: 90}
	NodeFill  = rl.Color{R: 44, G: 49, B: 62, A: 255}
	NodeEdge  = rl.Color{R: 70, G: 78, B: 98, A: 255}
	EdgeSolid = rl.Color{R: 118, G: 160, B: 255, A: 140}
	EdgeDash  = rl.Color{R: 130, G: 137, B: 155, A: 110}
)

const (
	DefaultFontSize = 16
	SmallFontSize   = 12
)
