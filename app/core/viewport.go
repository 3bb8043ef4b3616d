package core

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/KennyACSAI/pearlmap/util"
)

// Viewport is the camera state shared by the whole scene: a clamped zoom and
// a free (unclamped) translation. It wraps rl.Camera2D so rendering can use
// rl.BeginMode2D directly, but the screen/world conversions are plain math so
// the package stays testable without a window.
//
// Raylib's camera convention: screen = (world - Target)*Zoom + Offset.
type Viewport struct {
	rl.Camera2D
	cfg CameraConfig

	// Pan gesture snapshot.
	panning     bool
	panStart    V2 // Target at gesture start
	pointerFrom V2 // screen position at gesture start
	panPos      V2 // latest pointer position while panning

	// Post-release pan momentum, world units per second.
	momentum V2

	// Smooth approach used by reset and the zoom buttons.
	animating  bool
	goalZoom   float32
	goalTarget V2
	zoomVel    float32
	targetVel  V2
}

func NewViewport(cfg CameraConfig, screenW, screenH float32) *Viewport {
	return &Viewport{
		Camera2D: rl.Camera2D{
			Zoom:   1.0,
			Offset: V2{X: screenW / 2, Y: screenH / 2},
		},
		cfg: cfg,
	}
}

func (v *Viewport) WorldToScreen(world V2) V2 {
	return V2{
		X: (world.X-v.Target.X)*v.Zoom + v.Offset.X,
		Y: (world.Y-v.Target.Y)*v.Zoom + v.Offset.Y,
	}
}

func (v *Viewport) ScreenToWorld(screen V2) V2 {
	return V2{
		X: (screen.X-v.Offset.X)/v.Zoom + v.Target.X,
		Y: (screen.Y-v.Offset.Y)/v.Zoom + v.Target.Y,
	}
}

func (v *Viewport) setZoom(z float32) {
	v.Zoom = util.Clamp(z, v.cfg.MinScale, v.cfg.MaxScale)
}

// PanBegin snapshots the translation at gesture start. Starting a pan stops
// any running momentum and smooth approach.
func (v *Viewport) PanBegin(screenPos V2) {
	v.panning = true
	v.panStart = v.Target
	v.pointerFrom = screenPos
	v.panPos = screenPos
	v.momentum = V2{}
	v.animating = false
}

// PanUpdate applies the accumulated screen-space delta against the snapshot.
// Moving the pointer right moves the world right, so Target moves left.
func (v *Viewport) PanUpdate(screenPos V2) {
	if !v.panning {
		return
	}
	v.panPos = screenPos
	v.Target = V2{
		X: v.panStart.X - (screenPos.X-v.pointerFrom.X)/v.Zoom,
		Y: v.panStart.Y - (screenPos.Y-v.pointerFrom.Y)/v.Zoom,
	}
}

// PanEnd releases the gesture. velocity is the pointer's screen-space speed
// at release; it carries the translation via exponential decay. Free panning
// has no rest point, the decay just approaches zero displacement growth.
func (v *Viewport) PanEnd(velocity V2) {
	v.panning = false
	v.momentum = V2{
		X: -velocity.X / v.Zoom,
		Y: -velocity.Y / v.Zoom,
	}
}

// ZoomAt applies a multiplicative zoom factor keeping the world point under
// screenPos fixed. Used for wheel zoom and pinch updates.
func (v *Viewport) ZoomAt(screenPos V2, factor float32) {
	v.animating = false
	worldPos := v.ScreenToWorld(screenPos)
	v.setZoom(v.Zoom * factor)

	// Target = World - (Screen - Offset) / NewZoom keeps worldPos pinned.
	v.Target = V2{
		X: worldPos.X - (screenPos.X-v.Offset.X)/v.Zoom,
		Y: worldPos.Y - (screenPos.Y-v.Offset.Y)/v.Zoom,
	}
	v.rebasePan()
}

// rebasePan re-anchors an in-progress pan after a zoom moved the Target, so
// the two gestures compose instead of the next pan update undoing the zoom.
func (v *Viewport) rebasePan() {
	if !v.panning {
		return
	}
	v.panStart = V2{
		X: v.Target.X + (v.panPos.X-v.pointerFrom.X)/v.Zoom,
		Y: v.Target.Y + (v.panPos.Y-v.pointerFrom.Y)/v.Zoom,
	}
}

// PinchState tracks a pinch gesture: the scale snapshot is taken once at
// gesture start and every update applies a fresh factor against it, clamped.
type PinchState struct {
	active    bool
	zoomStart float32
}

func (v *Viewport) PinchBegin(p *PinchState) {
	p.active = true
	p.zoomStart = v.Zoom
	v.animating = false
}

func (v *Viewport) PinchUpdate(p *PinchState, factor float32, focus V2) {
	if !p.active {
		return
	}
	worldPos := v.ScreenToWorld(focus)
	v.setZoom(p.zoomStart * factor)
	v.Target = V2{
		X: worldPos.X - (focus.X-v.Offset.X)/v.Zoom,
		Y: worldPos.Y - (focus.Y-v.Offset.Y)/v.Zoom,
	}
	v.rebasePan()
}

func (v *Viewport) PinchEnd(p *PinchState) {
	p.active = false
}

// ZoomIn and ZoomOut apply one fixed multiplicative button step, smoothly.
func (v *Viewport) ZoomIn()  { v.zoomStepTo(v.Zoom * v.cfg.ZoomStep) }
func (v *Viewport) ZoomOut() { v.zoomStepTo(v.Zoom / v.cfg.ZoomStep) }

func (v *Viewport) zoomStepTo(z float32) {
	v.animating = true
	v.goalZoom = util.Clamp(z, v.cfg.MinScale, v.cfg.MaxScale)
	v.goalTarget = v.Target
	v.momentum = V2{}
}

// Reset animates back to zoom 1.0 and translation (0,0). Not an instant jump.
func (v *Viewport) Reset() {
	v.animating = true
	v.goalZoom = 1.0
	v.goalTarget = V2{}
	v.momentum = V2{}
}

// Animating reports whether a smooth approach is still running.
func (v *Viewport) Animating() bool { return v.animating }

// Step advances pan momentum and the smooth approach by dt seconds.
func (v *Viewport) Step(dt float32) {
	if dt <= 0 {
		return
	}

	if !v.panning && (v.momentum.X != 0 || v.momentum.Y != 0) {
		v.Target.X += v.momentum.X * dt
		v.Target.Y += v.momentum.Y * dt
		decay := float32(math.Exp(float64(-v.cfg.PanDecay * dt)))
		v.momentum.X *= decay
		v.momentum.Y *= decay
		if abs32(v.momentum.X) < 0.5 && abs32(v.momentum.Y) < 0.5 {
			v.momentum = V2{}
		}
	}

	if v.animating {
		omega := v.cfg.SpringOmega
		v.zoomVel = springStep(&v.Zoom, v.goalZoom, v.zoomVel, omega, dt)
		v.targetVel.X = springStep(&v.Target.X, v.goalTarget.X, v.targetVel.X, omega, dt)
		v.targetVel.Y = springStep(&v.Target.Y, v.goalTarget.Y, v.targetVel.Y, omega, dt)
		v.setZoom(v.Zoom)

		settled := abs32(v.Zoom-v.goalZoom) < 0.001 &&
			abs32(v.Target.X-v.goalTarget.X) < 0.1 &&
			abs32(v.Target.Y-v.goalTarget.Y) < 0.1 &&
			abs32(v.zoomVel) < 0.001 &&
			abs32(v.targetVel.X) < 0.1 && abs32(v.targetVel.Y) < 0.1
		if settled {
			v.Zoom = v.goalZoom
			v.Target = v.goalTarget
			v.zoomVel = 0
			v.targetVel = V2{}
			v.animating = false
		}
	}
}

// springStep advances one critically damped spring axis in place and returns
// the new velocity.
func springStep(x *float32, goal, vel, omega, dt float32) float32 {
	accel := -omega*omega*(*x-goal) - 2*omega*vel
	vel += accel * dt
	*x += vel * dt
	return vel
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
