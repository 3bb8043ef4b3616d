package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/KennyACSAI/pearlmap/app/core"
	"github.com/KennyACSAI/pearlmap/util"
)

const (
	toolbarPad    = 12
	buttonSize    = 36
	searchWidth   = 240
	searchHeight  = 32
	maxQueryChars = 64
)

// Toolbar is the screen-space chrome: zoom in / zoom out / reset buttons and
// the search box. It consumes pointer input before the canvas gets it.
type Toolbar struct {
	query        string
	searchFocus  bool
	queryPending bool // true once the query needs re-applying
}

type button struct {
	rect  rl.Rectangle
	label string
}

func (t *Toolbar) buttons() []button {
	w := float32(rl.GetScreenWidth())
	x := w - toolbarPad - buttonSize
	mk := func(i int, label string) button {
		return button{
			rect:  rl.Rectangle{X: x, Y: toolbarPad + float32(i)*(buttonSize+8), Width: buttonSize, Height: buttonSize},
			label: label,
		}
	}
	return []button{mk(0, "+"), mk(1, "-"), mk(2, "o")}
}

func (t *Toolbar) searchRect() rl.Rectangle {
	return rl.Rectangle{X: toolbarPad, Y: toolbarPad, Width: searchWidth, Height: searchHeight}
}

// Update handles toolbar input for this frame and sets IsHoveringUI.
func (t *Toolbar) Update(s *core.Scene) {
	mouse := rl.GetMousePosition()
	IsHoveringUI = false

	for i, b := range t.buttons() {
		if !rl.CheckCollisionPointRec(mouse, b.rect) {
			continue
		}
		IsHoveringUI = true
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			switch i {
			case 0:
				s.View.ZoomIn()
			case 1:
				s.View.ZoomOut()
			case 2:
				s.View.Reset()
			}
		}
	}

	overSearch := rl.CheckCollisionPointRec(mouse, t.searchRect())
	if overSearch {
		IsHoveringUI = true
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		t.searchFocus = overSearch
	}

	if t.searchFocus {
		t.readSearchKeys(s)
	}
}

func (t *Toolbar) readSearchKeys(s *core.Scene) {
	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		if len(t.query) < maxQueryChars && ch >= 32 {
			t.query += string(ch)
			t.queryPending = true
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.query) > 0 {
		t.query = t.query[:len(t.query)-1]
		t.queryPending = true
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.query = ""
		t.searchFocus = false
		t.queryPending = true
	}

	if t.queryPending {
		if err := s.ApplyQuery(t.query); err != nil {
			// Half-typed expressions are expected; the filter just clears.
			fmt.Printf("query %q: %v\n", t.query, err)
		}
		t.queryPending = false
	}
}

// Draw renders the toolbar in screen space, after the world pass.
func (t *Toolbar) Draw() {
	mouse := rl.GetMousePosition()
	font := rl.GetFontDefault()

	for _, b := range t.buttons() {
		bg := Charcoal
		if rl.CheckCollisionPointRec(mouse, b.rect) {
			bg = Gray
		}
		rl.DrawRectangleRounded(b.rect, 0.3, 6, bg)
		rl.DrawRectangleRoundedLines(b.rect, 0.3, 6, NodeEdge)
		center := core.V2{X: b.rect.X + b.rect.Width/2, Y: b.rect.Y + b.rect.Height/2}
		drawCenteredText(font, b.label, center, DefaultFontSize, White)
	}

	sr := t.searchRect()
	rl.DrawRectangleRounded(sr, 0.3, 6, Charcoal)
	rl.DrawRectangleRoundedLines(sr, 0.3, 6, util.Tern(t.searchFocus, Pearl, NodeEdge))

	label := t.query
	color := White
	if label == "" && !t.searchFocus {
		label = "Search people..."
		color = Gray
	}
	if t.searchFocus {
		label += "_"
	}
	rl.DrawTextEx(font, label, core.V2{X: sr.X + 10, Y: sr.Y + (sr.Height-DefaultFontSize)/2}, DefaultFontSize, 1, color)
}
