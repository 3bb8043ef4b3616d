package core

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// InputProvider abstracts the pointer so gesture logic is testable without a
// window.
type InputProvider interface {
	IsMouseButtonPressed(button rl.MouseButton) bool
	IsMouseButtonReleased(button rl.MouseButton) bool
	IsMouseButtonDown(button rl.MouseButton) bool
	GetMousePosition() V2
}

type RealInputProvider struct{}

func (p RealInputProvider) IsMouseButtonPressed(button rl.MouseButton) bool {
	return rl.IsMouseButtonPressed(button)
}
func (p RealInputProvider) IsMouseButtonReleased(button rl.MouseButton) bool {
	return rl.IsMouseButtonReleased(button)
}
func (p RealInputProvider) IsMouseButtonDown(button rl.MouseButton) bool {
	return rl.IsMouseButtonDown(button)
}
func (p RealInputProvider) GetMousePosition() V2 {
	return rl.GetMousePosition()
}

// GesturePhase is the router's state. One pointer drives one phase at a time;
// a press that lands on a node claims the whole gesture, so the canvas never
// also pans with that touch.
type GesturePhase int

const (
	GestureIdle GesturePhase = iota
	GesturePressing
	GestureNodeDrag
	GestureCanvasPan
)

// Router turns raw pointer state into node taps, node drags, and canvas pans.
// Call Update once per frame before stepping the scene.
type Router struct {
	Input InputProvider
	Scene *Scene

	Phase GesturePhase

	pressPos  V2 // screen position at press
	pressTime float32
	node      *Node // node claimed by the press, nil for canvas

	lastPos V2
	vel     V2 // smoothed screen-space pointer velocity, px/s
}

func NewRouter(input InputProvider, scene *Scene) *Router {
	return &Router{Input: input, Scene: scene}
}

func (r *Router) Update(dt float32) {
	pos := r.Input.GetMousePosition()
	r.trackVelocity(pos, dt)

	switch r.Phase {
	case GestureIdle:
		if r.Input.IsMouseButtonPressed(rl.MouseLeftButton) {
			r.Phase = GesturePressing
			r.pressPos = pos
			r.pressTime = 0
			r.vel = V2{}
			canvasPt := r.Scene.View.ScreenToWorld(pos)
			r.node = r.Scene.NodeAt(canvasPt)
			if r.node != nil {
				r.Scene.setPressed(r.node.ID)
			}
		}

	case GesturePressing:
		r.pressTime += dt
		moved := dist(pos, r.pressPos)

		if r.Input.IsMouseButtonReleased(rl.MouseLeftButton) {
			// A short, still press is a tap; anything else is nothing.
			cfg := r.Scene.Cfg.Gestures
			if r.node != nil && moved <= cfg.TapSlop && r.pressTime <= cfg.TapMaxDuration {
				r.Scene.selectNode(r.node)
			}
			r.reset()
			return
		}

		if moved > r.Scene.Cfg.Gestures.TapSlop {
			// Promote to a drag. The node, if any, won the touch at press
			// time; the tap callback is now off the table either way.
			if r.node != nil {
				if m := r.Scene.Motions.Get(r.node.ID); m != nil {
					m.DragBegin()
					r.Phase = GestureNodeDrag
					return
				}
			}
			r.Scene.View.PanBegin(r.pressPos)
			r.Scene.View.PanUpdate(pos)
			r.Phase = GestureCanvasPan
		}

	case GestureNodeDrag:
		m := r.Scene.Motions.Get(r.node.ID)
		if m == nil {
			// The snapshot changed under the gesture; drop it.
			r.reset()
			return
		}
		delta := V2{X: pos.X - r.pressPos.X, Y: pos.Y - r.pressPos.Y}
		m.DragUpdate(delta, r.Scene.View.Zoom)
		if r.Input.IsMouseButtonReleased(rl.MouseLeftButton) || !r.Input.IsMouseButtonDown(rl.MouseLeftButton) {
			zoom := r.Scene.View.Zoom
			m.DragEnd(V2{X: r.vel.X / zoom, Y: r.vel.Y / zoom})
			r.reset()
		}

	case GestureCanvasPan:
		r.Scene.View.PanUpdate(pos)
		if r.Input.IsMouseButtonReleased(rl.MouseLeftButton) || !r.Input.IsMouseButtonDown(rl.MouseLeftButton) {
			r.Scene.View.PanEnd(r.vel)
			r.reset()
		}
	}
}

func (r *Router) reset() {
	r.Phase = GestureIdle
	r.node = nil
	r.Scene.setPressed("")
}

// trackVelocity keeps an exponentially smoothed pointer velocity so releases
// hand a stable momentum to the viewport and settle springs.
func (r *Router) trackVelocity(pos V2, dt float32) {
	if dt > 0 {
		inst := V2{X: (pos.X - r.lastPos.X) / dt, Y: (pos.Y - r.lastPos.Y) / dt}
		const alpha = 0.4
		r.vel.X = r.vel.X*(1-alpha) + inst.X*alpha
		r.vel.Y = r.vel.Y*(1-alpha) + inst.Y*alpha
	}
	r.lastPos = pos
}

func dist(a, b V2) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}
