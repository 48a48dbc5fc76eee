package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/input"
)

// PollInput reads this frame's keyboard and mouse state.
// The pointer is absent while the cursor is outside the window.
func PollInput() input.Snapshot {
	s := input.Snapshot{
		Forward:            rl.IsKeyDown(rl.KeyW),
		Backward:           rl.IsKeyDown(rl.KeyS),
		StrafeLeft:         rl.IsKeyDown(rl.KeyA),
		StrafeRight:        rl.IsKeyDown(rl.KeyD),
		StrafeLeftPressed:  rl.IsKeyPressed(rl.KeyA),
		StrafeRightPressed: rl.IsKeyPressed(rl.KeyD),
		Fire:               rl.IsMouseButtonDown(rl.MouseButtonLeft),
	}
	if rl.IsCursorOnScreen() {
		mouse := rl.GetMousePosition()
		s = s.WithPointer(float64(mouse.X), float64(mouse.Y))
	}
	return s
}

// HandleResize checks for window resize and propagates new dimensions.
func (g *Game) HandleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float64(rl.GetScreenWidth())
	h := float64(rl.GetScreenHeight())
	if w == g.camera.ViewportW && h == g.camera.ViewportH {
		return
	}
	g.Resize(w, h)
}
