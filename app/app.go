package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/KennyACSAI/pearlmap/app/core"
	"github.com/KennyACSAI/pearlmap/util"
)

const windowWidth = 1280
const windowHeight = 800

var (
	scene      *core.Scene
	router     *core.Router
	toolbar    Toolbar
	selectedID string
	ShouldQuit bool
)

// Main opens the window and runs the canvas until close.
func Main(cfg core.Config, people []core.Person) {
	rl.InitWindow(windowWidth, windowHeight, "Pearl - Relationship Map")
	defer rl.CloseWindow()

	monitor := rl.GetCurrentMonitor()
	rl.SetWindowPosition(
		int(rl.GetMonitorWidth(monitor)/2-windowWidth/2),
		int(rl.GetMonitorHeight(monitor)/2-windowHeight/2),
	)
	rl.SetTargetFPS(int32(rl.GetMonitorRefreshRate(monitor)))
	rl.SetExitKey(0)

	scene = core.NewScene(cfg, windowWidth, windowHeight)
	scene.OnPersonSelected = func(personID string) {
		selectedID = personID
		fmt.Printf("selected person %s\n", personID)
	}
	scene.SetPeople(people)

	router = core.NewRouter(core.RealInputProvider{}, scene)

	for !rl.WindowShouldClose() && !ShouldQuit {
		frame()
	}
}

func frame() {
	dt := rl.GetFrameTime()

	// Chrome first: it claims the pointer before the canvas sees it.
	toolbar.Update(scene)

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 && !IsHoveringUI {
		scene.View.ZoomAt(rl.GetMousePosition(), util.Tern(wheel > 0, float32(1.1), float32(0.9)))
	}

	if !IsHoveringUI {
		router.Update(dt)
	}

	scene.Step(dt)

	rl.BeginDrawing()
	rl.ClearBackground(Night)

	renderScene(scene)

	toolbar.Draw()
	drawSelectionCard()

	rl.EndDrawing()
}

// drawSelectionCard shows the last tapped person at the bottom edge.
func drawSelectionCard() {
	if selectedID == "" {
		return
	}
	n, ok := scene.Graph.ByID[selectedID]
	if !ok {
		selectedID = ""
		return
	}

	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	card := rl.Rectangle{X: w/2 - 160, Y: h - 72, Width: 320, Height: 56}
	rl.DrawRectangleRounded(card, 0.3, 6, Charcoal)
	rl.DrawRectangleRoundedLines(card, 0.3, 6, Pearl)

	font := rl.GetFontDefault()
	rl.DrawTextEx(font, n.Name, core.V2{X: card.X + 14, Y: card.Y + 10}, DefaultFontSize, 1, White)
	rl.DrawTextEx(font, n.Role, core.V2{X: card.X + 14, Y: card.Y + 10 + DefaultFontSize + 2}, SmallFontSize, 1, Fog)
}
